package v1

import (
	"net/http"
	"strconv"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// validatable is implemented by every request DTO
type validatable interface {
	Validate() error
}

// bindJSON decodes the body into req and validates it, answering 400 on failure.
func bindJSON(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondMessage(ctx, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, err)
		return false
	}
	return true
}

// idParam parses the :id path parameter, answering 400 when it is not a positive integer.
func idParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(ctx, apperr.Invalid("id %q must be a positive integer", raw))
		return 0, false
	}
	return uint(id), true
}

// pageParams reads the page and limit query parameters
func pageParams(ctx *gin.Context) pagination.Params {
	return pagination.Parse(ctx.Query("page"), ctx.Query("limit"))
}
