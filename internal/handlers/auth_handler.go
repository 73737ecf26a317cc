package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/middleware"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// AuthHandler issues access tokens to the owner.
type AuthHandler struct {
	authService services.AuthServicer
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

// TokenRequest represents the login request payload
type TokenRequest struct {
	Passphrase string `json:"passphrase" binding:"required,max=256"`
}

// TokenResponse represents the authentication response with token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IssueToken handles owner login
// @Summary     Get an access token
// @Description Exchange the owner passphrase for a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Owner passphrase"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid passphrase"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if err := h.authService.VerifyPassphrase(req.Passphrase); err != nil {
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateAccessToken(h.tokenTTL)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
