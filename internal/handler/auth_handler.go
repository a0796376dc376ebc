package handler

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/response"
)

type authService interface {
	TokenLogin(ctx context.Context, req dto.TokenLoginRequest) (*dto.TokenLoginResponse, error)
	StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (*dto.StudentLoginResponse, error)
	Logout(ctx context.Context, identity *models.Identity) error
	Profile(identity *models.Identity) (*dto.ProfileResponse, error)
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// TokenLogin godoc
// @Summary Issue an API token
// @Description Exchange API client credentials for a bearer token. Also served at /login.
// @Tags Authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body dto.TokenLoginRequest true "Client credentials"
// @Success 200 {object} response.Envelope{data=dto.TokenLoginResponse}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Failure 429 {object} response.ErrorEnvelope
// @Router /token/login [post]
func (h *AuthHandler) TokenLogin(c *gin.Context) {
	var req dto.TokenLoginRequest
	if err := bindLogin(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.TokenLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Login successful", res, nil)
}

// StudentLogin godoc
// @Summary Verify student credentials
// @Tags Authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body dto.StudentLoginRequest true "NIM and password"
// @Success 200 {object} response.Envelope{data=dto.StudentLoginResponse}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /auth/login [post]
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := bindLogin(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.StudentLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Login successful", res, nil)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), identityFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged out successfully", nil, nil)
}

// Profile godoc
// @Summary Describe the current API client
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.ProfileResponse}
// @Failure 401 {object} response.ErrorEnvelope
// @Router /profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	res, err := h.service.Profile(identityFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", res, nil)
}

// bindLogin reads a JSON or form body. An empty body is left to field validation.
func bindLogin(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBind(dest); err != nil && !errors.Is(err, io.EOF) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request payload")
	}
	return nil
}
