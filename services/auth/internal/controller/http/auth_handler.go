package http

import (
	"errors"
	"net/http"

	"hi-platform/pkg/logger"
	"hi-platform/services/auth/internal/entity"
	"hi-platform/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	HiIdentityName string `json:"hiIdentityName"`
	Password       string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrInvalidRefreshToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrIdentityTaken),
		errors.Is(err, entity.ErrFullNameRequired),
		errors.Is(err, entity.ErrFullNameTooLong),
		errors.Is(err, entity.ErrInvalidEmail),
		errors.Is(err, entity.ErrInvalidIdentityName),
		errors.Is(err, entity.ErrPasswordTooShort),
		errors.Is(err, entity.ErrPasswordNeedsDigit),
		errors.Is(err, entity.ErrPasswordNeedsLetter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Auth request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pair, err := h.authUseCase.Register(usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		HiIdentityName: req.HiIdentityName,
		Password:       req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"token":        pair.Token,
		"refreshToken": pair.RefreshToken,
		"user":         pair.User,
	})
}

// Login godoc
// @Summary      Authenticate and get tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "Login payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pair, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"token":        pair.Token,
		"refreshToken": pair.RefreshToken,
		"user":         pair.User,
	})
}

// Verify godoc
// @Summary      Verify the current access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user, err := h.authUseCase.Verify(c.GetString("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token valid",
		"user":    user,
	})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body RefreshRequest true "Refresh payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	pair, err := h.authUseCase.Refresh(req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Token refreshed",
		"token":        pair.Token,
		"refreshToken": pair.RefreshToken,
		"user":         pair.User,
	})
}

// Logout godoc
// @Summary      Invalidate the stored refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUseCase.Logout(c.GetString("user_id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
