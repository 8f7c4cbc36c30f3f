package http

import (
	"errors"
	"net/http"
	"strconv"

	"hi-platform/pkg/logger"
	"hi-platform/services/post/internal/entity"
	"hi-platform/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Type        string `json:"type"`
	ThoughtType string `json:"thoughtType"`
	Content     string `json:"content"`
	Industry    string `json:"industry"`
}

type TypedPostRequest struct {
	ThoughtType string `json:"thoughtType"`
	Content     string `json:"content"`
	Industry    string `json:"industry"`
}

func (h *PostHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidPostType),
		errors.Is(err, entity.ErrInvalidThoughtType),
		errors.Is(err, entity.ErrContentRequired),
		errors.Is(err, entity.ErrContentTooLong),
		errors.Is(err, entity.ErrIndustryRequired),
		errors.Is(err, entity.ErrIndustryTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Post request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *PostHandler) createPost(c *gin.Context, message string, input usecase.CreatePostInput) {
	userID := c.GetString("user_id")

	post, err := h.postUseCase.CreatePost(userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    gin.H{"post": post},
	})
}

// CreatePost godoc
// @Summary      Create a new post
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body CreatePostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.createPost(c, "Post created successfully", usecase.CreatePostInput{
		Type:        req.Type,
		ThoughtType: req.ThoughtType,
		Content:     req.Content,
		Industry:    req.Industry,
	})
}

func (h *PostHandler) createTypedPost(c *gin.Context, postType entity.PostType, message string) {
	var req TypedPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.createPost(c, message, usecase.CreatePostInput{
		Type:        string(postType),
		ThoughtType: req.ThoughtType,
		Content:     req.Content,
		Industry:    req.Industry,
	})
}

// CreateIdeaSnap godoc
// @Summary      Create an Idea Snap post
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body TypedPostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Router       /posts/ideaSnap [post]
func (h *PostHandler) CreateIdeaSnap(c *gin.Context) {
	h.createTypedPost(c, entity.PostTypeIdeaSnap, "Idea Snap created successfully")
}

// CreateMarketGap godoc
// @Summary      Create a Market Gap post
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body TypedPostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Router       /posts/marketGap [post]
func (h *PostHandler) CreateMarketGap(c *gin.Context) {
	h.createTypedPost(c, entity.PostTypeMarketGap, "Market Gap created successfully")
}

// CreateThought godoc
// @Summary      Create a Thought post (What If/Why Not)
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body TypedPostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Router       /posts/thought [post]
func (h *PostHandler) CreateThought(c *gin.Context) {
	h.createTypedPost(c, entity.PostTypeThought, "Thought created successfully")
}

// CreateObservation godoc
// @Summary      Create an Observation post
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body TypedPostRequest true "Post payload"
// @Success      201  {object}  map[string]interface{}
// @Router       /posts/observation [post]
func (h *PostHandler) CreateObservation(c *gin.Context) {
	h.createTypedPost(c, entity.PostTypeObservation, "Observation created successfully")
}

func paginationParams(c *gin.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	return limit, skip
}

// GetPosts godoc
// @Summary      Get posts with optional filtering and sorting
// @Tags         post
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Post type filter"
// @Param        thoughtType query string false "Thought type filter (with type=thought)"
// @Param        industry query string false "Industry filter"
// @Param        author query string false "Author ID filter"
// @Param        sort query string false "Sort key: newest, oldest, popular, trending" default(newest)
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	filter := entity.ListFilter{
		Type:        entity.PostType(c.Query("type")),
		ThoughtType: entity.ThoughtType(c.Query("thoughtType")),
		Industry:    c.Query("industry"),
		AuthorID:    c.Query("author"),
	}
	sort := c.DefaultQuery("sort", "newest")
	limit, skip := paginationParams(c, 20)

	posts, total, err := h.postUseCase.GetPosts(filter, sort, limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posts retrieved successfully",
		"data": gin.H{
			"posts": posts,
			"pagination": gin.H{
				"total":   total,
				"limit":   limit,
				"skip":    skip,
				"hasMore": total > int64(skip+limit),
			},
		},
	})
}

// GetTrendingPosts godoc
// @Summary      Get trending posts from the last 7 days
// @Tags         post
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Post type filter"
// @Param        industry query string false "Industry filter"
// @Param        limit query int false "Page size" default(10)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/trending [get]
func (h *PostHandler) GetTrendingPosts(c *gin.Context) {
	filter := entity.ListFilter{
		Type:     entity.PostType(c.Query("type")),
		Industry: c.Query("industry"),
	}
	limit, skip := paginationParams(c, 10)

	posts, err := h.postUseCase.GetTrendingPosts(filter, limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trending posts retrieved successfully",
		"data": gin.H{
			"posts": posts,
			"pagination": gin.H{
				"limit": limit,
				"skip":  skip,
			},
		},
	})
}

// GetPostByID godoc
// @Summary      Get a post by ID
// @Tags         post
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPostByID(c *gin.Context) {
	post, err := h.postUseCase.GetPostByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post retrieved successfully",
		"data":    gin.H{"post": post},
	})
}

// DeletePost godoc
// @Summary      Delete a post (author only)
// @Tags         post
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.postUseCase.DeletePost(userID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
