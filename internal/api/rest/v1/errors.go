package v1

import (
	"errors"
	"net/http"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// statusFor maps an application error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body and aborts the chain. Internal errors are attached
// to the context for the access log and answered with a generic message.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = internalErrorMessage
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// respondMessage writes a fixed message with the given status and aborts the chain
func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// respondNoContent writes an empty 204 and flushes the header so it is sent without a body
func respondNoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
	ctx.Writer.WriteHeaderNow()
}
