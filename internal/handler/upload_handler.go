package handler

import (
	"fmt"
	"time"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/storage"
	"trekheaven/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const presignExpiry = 15 * time.Minute

// UploadRequest carries externally hosted image URLs.
type UploadRequest struct {
	URLs []string `json:"urls" binding:"required,min=1,dive,url"`
}

// UploadResponse echoes back the accepted image URLs.
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// PresignRequest asks for a direct-to-bucket upload URL.
type PresignRequest struct {
	FileName    string `json:"fileName" binding:"required" example:"summit.jpg"`
	ContentType string `json:"contentType" binding:"required" example:"image/jpeg"`
}

// PresignResponse carries a presigned PUT URL and the key it writes to.
type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

// UploadHandler handles image URL submission and presigned uploads.
// storage may be nil when no object store is configured; presigning is then
// unavailable while the URL echo keeps working.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(storage storage.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload godoc
// @Summary      Submit image URLs
// @Description  Accept a list of externally hosted image URLs and return them unchanged
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        request  body      UploadRequest  true  "Image URLs"
// @Success      200      {object}  response.Response{data=UploadResponse}
// @Failure      400      {object}  response.Response
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	var req UploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, apperrors.ErrNoUploadURLs.Error())
		return
	}

	response.Success(c, UploadResponse{URLs: req.URLs})
}

// Presign godoc
// @Summary      Presign an image upload
// @Description  Return a presigned PUT URL for uploading an image directly to object storage
// @Tags         upload
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PresignRequest  true  "File name and content type"
// @Success      200      {object}  response.Response{data=PresignResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /upload/presign [post]
func (h *UploadHandler) Presign(c *gin.Context) {
	var req PresignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.storage == nil {
		response.ServiceUnavailable(c, apperrors.ErrStorageNotConfigured.Error())
		return
	}

	// Random prefix keeps concurrent uploads of the same file name apart.
	key := fmt.Sprintf("images/%s-%s", primitive.NewObjectID().Hex(), req.FileName)

	uploadURL, err := h.storage.GetPresignedPutURL(c.Request.Context(), key, req.ContentType, presignExpiry)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, PresignResponse{UploadURL: uploadURL, Key: key})
}
