package v1

import (
	"net/http"

	"github.com/kagailawrence/modarflor/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for login and account self-service
type AuthHandler interface {
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	userService users.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, userService users.UserService) AuthHandler {
	return &authHandler{
		authService: authService,
		userService: userService,
	}
}

// Login exchanges credentials for a bearer token
func (handler *authHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, user, err := handler.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: newUserResponse(user)})
}

// Me returns the account behind the bearer token
func (handler *authHandler) Me(ctx *gin.Context) {
	claims, ok := currentClaims(ctx)
	if !ok {
		respondMessage(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := handler.userService.GetByID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// ChangePassword replaces the caller's password
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	claims, ok := currentClaims(ctx)
	if !ok {
		respondMessage(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.ChangePassword(ctx.Request.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}
