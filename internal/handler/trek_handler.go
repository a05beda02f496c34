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

// TrekHandler handles HTTP requests for trek catalog operations.
type TrekHandler struct {
	service service.TrekServicer
}

// NewTrekHandler creates a new TrekHandler.
func NewTrekHandler(service service.TrekServicer) *TrekHandler {
	return &TrekHandler{service: service}
}

// List godoc
// @Summary      List treks
// @Description  Return the full trek catalog
// @Tags         treks
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Trek}
// @Failure      500  {object}  response.Response
// @Router       /treks [get]
func (h *TrekHandler) List(c *gin.Context) {
	treks, err := h.service.ListTreks(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, treks)
}

// Get godoc
// @Summary      Get a trek
// @Tags         treks
// @Produce      json
// @Param        id   path      string  true  "Trek ID"
// @Success      200  {object}  response.Response{data=models.Trek}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /treks/{id} [get]
func (h *TrekHandler) Get(c *gin.Context) {
	trek, err := h.service.GetTrek(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTrekNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trek)
}

// Create godoc
// @Summary      Create a trek
// @Description  Add a new trek to the catalog (admin only)
// @Tags         treks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateTrekRequest  true  "Trek details"
// @Success      201      {object}  response.Response{data=models.Trek}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /treks [post]
func (h *TrekHandler) Create(c *gin.Context) {
	var req models.CreateTrekRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trek, err := h.service.CreateTrek(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, trek)
}

// Replace godoc
// @Summary      Replace a trek
// @Description  Overwrite every mutable field of a trek (admin only)
// @Tags         treks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Trek ID"
// @Param        request  body      models.CreateTrekRequest  true  "Full trek details"
// @Success      200      {object}  response.Response{data=models.Trek}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /treks/{id} [put]
func (h *TrekHandler) Replace(c *gin.Context) {
	var req models.CreateTrekRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trek, err := h.service.UpdateTrek(c.Request.Context(), c.Param("id"), req.Update())
	if err != nil {
		if errors.Is(err, apperrors.ErrTrekNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trek)
}

// Update godoc
// @Summary      Partially update a trek
// @Description  Change only the supplied trek fields (admin only)
// @Tags         treks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Trek ID"
// @Param        request  body      models.UpdateTrekRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=models.Trek}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /treks/{id} [patch]
func (h *TrekHandler) Update(c *gin.Context) {
	var req models.UpdateTrekRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trek, err := h.service.UpdateTrek(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTrekNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trek)
}

// Delete godoc
// @Summary      Delete a trek
// @Description  Remove a trek from the catalog (admin only). Existing registrations keep their booked details.
// @Tags         treks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trek ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /treks/{id} [delete]
func (h *TrekHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteTrek(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrTrekNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "Trek removed"})
}

// AddReview godoc
// @Summary      Review a trek
// @Description  Add a review to a trek. Each user may review a trek at most once.
// @Tags         treks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Trek ID"
// @Param        request  body      models.CreateReviewRequest true  "Rating and comment"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /treks/{id}/reviews [post]
func (h *TrekHandler) AddReview(c *gin.Context) {
	var req models.CreateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)

	if err := h.service.AddReview(c.Request.Context(), c.Param("id"), user.ID, &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTrekNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrAlreadyReviewed):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"message": "Review added"})
}
