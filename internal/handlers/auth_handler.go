package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/services"
)

// AuthHandler handles the identity mirror and device sessions.
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignInRequest carries the identity provider's session to mirror.
type SignInRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse represents a JSON error payload.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn mirrors an external sign-in and issues a local session token.
// @Summary     Sign in
// @Description Store the identity provider's session and issue a device-session JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignInRequest true "External session"
// @Success     200 {object} services.Session "Device session"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	session, err := h.authService.SignIn(req.UserID, req.Email, req.AccessToken, req.RefreshToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SignOut clears the mirrored session.
// @Summary     Sign out
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Signed out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authService.SignOut(); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAuthState returns the mirrored session state.
// @Summary     Get auth state
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AuthState "Auth state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/state [get]
func (h *AuthHandler) GetAuthState(c *gin.Context) {
	state, err := h.authService.GetAuthState()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth": state})
}
