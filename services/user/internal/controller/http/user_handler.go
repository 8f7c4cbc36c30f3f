package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"hi-platform/pkg/logger"
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type UpdateProfileRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	HiIdentityName  string `json:"hiIdentityName"`
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrCurrentPasswordWrong):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrIdentityTaken),
		errors.Is(err, entity.ErrCurrentPasswordRequired),
		errors.Is(err, entity.ErrFullNameTooLong),
		errors.Is(err, entity.ErrInvalidEmail),
		errors.Is(err, entity.ErrInvalidIdentityName),
		errors.Is(err, entity.ErrPasswordTooShort),
		errors.Is(err, entity.ErrPasswordNeedsDigit),
		errors.Is(err, entity.ErrPasswordNeedsLetter),
		errors.Is(err, entity.ErrUnsupportedImageType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("User request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	return limit, skip
}

func paginated(total int64, limit, skip int) gin.H {
	return gin.H{
		"total":   total,
		"limit":   limit,
		"skip":    skip,
		"hasMore": total > int64(skip+limit),
	}
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUseCase.GetProfile(c.GetString("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"data":    gin.H{"user": user},
	})
}

// GetByIdentity godoc
// @Summary      Get a user's public profile by identity name
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        hiIdentityName path string true "H.I. Identity Name"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{hiIdentityName} [get]
func (h *UserHandler) GetByIdentity(c *gin.Context) {
	profile, err := h.userUseCase.GetByIdentity(c.Param("hiIdentityName"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"data":    gin.H{"user": profile},
	})
}

// UpdateProfile godoc
// @Summary      Update the current user's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body UpdateProfileRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.GetString("user_id"), usecase.UpdateProfileInput{
		FullName:        req.FullName,
		Email:           req.Email,
		HiIdentityName:  req.HiIdentityName,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    gin.H{"user": user},
	})
}

// GetOwnPosts godoc
// @Summary      Get the current user's posts
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Post type filter"
// @Param        sort query string false "Sort key: newest, oldest, popular" default(newest)
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /users/posts [get]
func (h *UserHandler) GetOwnPosts(c *gin.Context) {
	limit, skip := paginationParams(c)
	sort := c.DefaultQuery("sort", "newest")

	posts, total, err := h.userUseCase.GetOwnPosts(c.GetString("user_id"), c.Query("type"), sort, limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User posts retrieved successfully",
		"data": gin.H{
			"posts":      posts,
			"pagination": paginated(total, limit, skip),
		},
	})
}

// GetPostsByIdentity godoc
// @Summary      Get posts by identity name
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        hiIdentityName path string true "H.I. Identity Name"
// @Param        type query string false "Post type filter"
// @Param        sort query string false "Sort key: newest, oldest, popular" default(newest)
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{hiIdentityName}/posts [get]
func (h *UserHandler) GetPostsByIdentity(c *gin.Context) {
	limit, skip := paginationParams(c)
	sort := c.DefaultQuery("sort", "newest")

	posts, total, err := h.userUseCase.GetPostsByIdentity(c.Param("hiIdentityName"), c.Query("type"), sort, limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User posts retrieved successfully",
		"data": gin.H{
			"posts":      posts,
			"pagination": paginated(total, limit, skip),
		},
	})
}

// GetInteractions godoc
// @Summary      Get the current user's content engagements
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Engagement type filter"
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /users/interactions [get]
func (h *UserHandler) GetInteractions(c *gin.Context) {
	limit, skip := paginationParams(c)

	interactions, total, err := h.userUseCase.GetInteractions(c.GetString("user_id"), c.Query("type"), limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User interactions retrieved successfully",
		"data": gin.H{
			"interactions": interactions,
			"pagination":   paginated(total, limit, skip),
		},
	})
}

// GetEndorsements godoc
// @Summary      Get posts the current user endorsed
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Post type filter"
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /users/endorsements [get]
func (h *UserHandler) GetEndorsements(c *gin.Context) {
	limit, skip := paginationParams(c)

	posts, total, err := h.userUseCase.GetEndorsements(c.GetString("user_id"), c.Query("type"), limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User endorsements retrieved successfully",
		"data": gin.H{
			"posts":      posts,
			"pagination": paginated(total, limit, skip),
		},
	})
}

// UploadAvatar godoc
// @Summary      Upload an avatar image for the current user
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image file"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /users/profile/avatar [put]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		h.respondError(c, entity.ErrUnsupportedImageType)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	user, err := h.userUseCase.UploadAvatar(userID, src, fileKey, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar updated successfully",
		"data":    gin.H{"user": user},
	})
}
