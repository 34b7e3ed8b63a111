package v1

import (
	"net/http"

	"github.com/kagailawrence/modarflor/internal/domain/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler defines the interface for the upload library
type MediaHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Serve(ctx *gin.Context)
}

type mediaHandler struct {
	mediaService media.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService media.MediaService) MediaHandler {
	return &mediaHandler{mediaService: mediaService}
}

// Upload stores the images of the multipart "files" field
func (handler *mediaHandler) Upload(ctx *gin.Context) {
	claims, ok := currentClaims(ctx)
	if !ok {
		respondMessage(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondMessage(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	stored, err := handler.mediaService.Upload(ctx.Request.Context(), form, claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	responses := make([]MediaResponse, 0, len(stored))
	for _, m := range stored {
		responses = append(responses, newMediaResponse(m))
	}

	ctx.JSON(http.StatusCreated, responses)
}

// List returns one page of uploads, newest first
func (handler *mediaHandler) List(ctx *gin.Context) {
	page, err := handler.mediaService.List(ctx.Request.Context(), pageParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(page, newMediaResponse))
}

func (handler *mediaHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	m, err := handler.mediaService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMediaResponse(m))
}

// DeleteByID removes the stored object and its metadata
func (handler *mediaHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.mediaService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Serve streams a stored image by its storage name
func (handler *mediaHandler) Serve(ctx *gin.Context) {
	fileName := ctx.Param("file")

	data, m, err := handler.mediaService.Download(ctx.Request.Context(), fileName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Data(http.StatusOK, m.ContentType, data)
}
