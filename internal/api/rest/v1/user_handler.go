package v1

import (
	"net/http"

	"github.com/kagailawrence/modarflor/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for managing back-office accounts
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// Create adds an account
func (handler *userHandler) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := handler.userService.Create(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// List returns one page of accounts
func (handler *userHandler) List(ctx *gin.Context) {
	page, err := handler.userService.List(ctx.Request.Context(), pageParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(page, newUserResponse))
}

// GetByID returns one account
func (handler *userHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	user, err := handler.userService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Update replaces the editable fields of an account
func (handler *userHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := handler.userService.Update(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID removes an account other than the caller's own
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	claims, ok := currentClaims(ctx)
	if !ok {
		respondMessage(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := handler.userService.Delete(ctx.Request.Context(), claims.UserID, id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}
