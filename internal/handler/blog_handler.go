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

// BlogHandler handles HTTP requests for blog content.
type BlogHandler struct {
	service service.BlogServicer
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service service.BlogServicer) *BlogHandler {
	return &BlogHandler{service: service}
}

// List godoc
// @Summary      List blogs
// @Description  Return all blogs, newest first
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Blog}
// @Failure      500  {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.service.ListBlogs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, blogs)
}

// GetBySlug godoc
// @Summary      Get a blog by slug
// @Description  Return one blog with related articles. Each fetch counts a view.
// @Tags         blogs
// @Produce      json
// @Param        slug  path      string  true  "Blog slug"
// @Success      200   {object}  response.Response{data=models.BlogDetailResponse}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	detail, err := h.service.GetBlogBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBlogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, detail)
}

// GetByID godoc
// @Summary      Get a blog by ID
// @Description  Return one blog without counting a view (admin only)
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response{data=models.Blog}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /blogs/id/{id} [get]
func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.service.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBlogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, blog)
}

// Create godoc
// @Summary      Create a blog
// @Description  Publish a blog authored by the caller (admin only)
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateBlogRequest  true  "Blog content"
// @Success      201      {object}  response.Response{data=models.Blog}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req models.CreateBlogRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)

	blog, err := h.service.CreateBlog(c.Request.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBlogTitleTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, blog)
}

// Update godoc
// @Summary      Update a blog
// @Description  Change the supplied blog fields (admin only). A title change re-derives the slug.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Blog ID"
// @Param        request  body      models.UpdateBlogRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=models.Blog}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var req models.UpdateBlogRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	blog, err := h.service.UpdateBlog(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBlogNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrBlogTitleTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, blog)
}

// Delete godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrBlogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "Blog removed"})
}
