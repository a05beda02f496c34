package handler

import (
	"errors"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/middleware"
	"trekheaven/internal/models"
	"trekheaven/internal/service"
	"trekheaven/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for trek bookings.
type RegistrationHandler struct {
	service service.RegistrationServicer
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(service service.RegistrationServicer) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Create godoc
// @Summary      Book a trek
// @Description  Register a team onto a trek. Total amount is the trek price times team size.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateRegistrationRequest  true  "Booking details"
// @Success      201      {object}  response.Response{data=models.TrekRegistration}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /trek-registrations [post]
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req models.CreateRegistrationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)

	registration, err := h.service.CreateRegistration(c.Request.Context(), user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTrekNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamTooLarge):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, registration)
}

// ListMine godoc
// @Summary      List my registrations
// @Description  Return the caller's bookings, newest first
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.TrekRegistration}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /trek-registrations/user [get]
func (h *RegistrationHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)

	registrations, err := h.service.ListUserRegistrations(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, registrations)
}

// Get godoc
// @Summary      Get a registration
// @Description  Return one booking. Only its owner may read it.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Registration ID"
// @Success      200  {object}  response.Response{data=models.TrekRegistration}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /trek-registrations/{id} [get]
func (h *RegistrationHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	registration, err := h.service.GetRegistration(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRegistrationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotRegistrationOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, registration)
}

// Cancel godoc
// @Summary      Cancel a registration
// @Description  Mark a booking cancelled. Cancelling twice is a no-op.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Registration ID"
// @Success      200  {object}  response.Response{data=models.TrekRegistration}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /trek-registrations/{id}/cancel [put]
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	registration, err := h.service.CancelRegistration(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRegistrationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotRegistrationOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, registration)
}

// ListAll godoc
// @Summary      List all registrations
// @Description  Return every booking with trek and user details (admin only)
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.TrekRegistration}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/allregistrations [get]
func (h *RegistrationHandler) ListAll(c *gin.Context) {
	registrations, err := h.service.ListAllRegistrations(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, registrations)
}
