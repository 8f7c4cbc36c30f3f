package http

import (
	"errors"
	"net/http"
	"strconv"

	"hi-platform/pkg/logger"
	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewEngagementHandler(engagementUseCase usecase.EngagementUseCase, logger *logger.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

type ContentRequest struct {
	Content string `json:"content"`
}

// respondError translates business errors into their HTTP status; anything
// unrecognized becomes an opaque 500.
func (h *EngagementHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound), errors.Is(err, entity.ErrEngagementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrContentRequired),
		errors.Is(err, entity.ErrContentTooLong),
		errors.Is(err, entity.ErrInvalidType),
		errors.Is(err, entity.ErrNotMarketGap),
		errors.Is(err, entity.ErrNotWhatIf),
		errors.Is(err, entity.ErrNotWhyNot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrDuplicateToggle):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Engagement request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *EngagementHandler) addEngagement(
	c *gin.Context,
	message string,
	add func(userID, postID, content string) (*entity.Engagement, error),
) {
	userID := c.GetString("user_id")
	postID := c.Param("postId")

	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	engagement, err := add(userID, postID, req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    gin.H{"engagement": engagement},
	})
}

// AddPOV godoc
// @Summary      Add a Point of View to a post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        body body ContentRequest true "POV content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/pov/{postId} [post]
func (h *EngagementHandler) AddPOV(c *gin.Context) {
	h.addEngagement(c, "Point of View added successfully", h.engagementUseCase.AddPOV)
}

// AddSolution godoc
// @Summary      Add a Solution to a Market Gap post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        body body ContentRequest true "Solution content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/solution/{postId} [post]
func (h *EngagementHandler) AddSolution(c *gin.Context) {
	h.addEngagement(c, "Solution added successfully", h.engagementUseCase.AddSolution)
}

// JoinDiscussion godoc
// @Summary      Join discussion on a What If thought
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        body body ContentRequest true "Discussion content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/discussion/{postId} [post]
func (h *EngagementHandler) JoinDiscussion(c *gin.Context) {
	h.addEngagement(c, "Joined discussion successfully", h.engagementUseCase.JoinDiscussion)
}

// JoinDebate godoc
// @Summary      Join debate on a Why Not thought
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        body body ContentRequest true "Debate content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/debate/{postId} [post]
func (h *EngagementHandler) JoinDebate(c *gin.Context) {
	h.addEngagement(c, "Joined debate successfully", h.engagementUseCase.JoinDebate)
}

func (h *EngagementHandler) toggle(
	c *gin.Context,
	name string,
	engType entity.EngagementType,
	toggle func(userID, postID string) (*usecase.ToggleResult, error),
) {
	userID := c.GetString("user_id")
	postID := c.Param("postId")

	result, err := toggle(userID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": name + " " + result.Action + " successfully",
		"data": gin.H{
			"action":                result.Action,
			engType.CounterField(): result.Count,
		},
	})
}

// ToggleExpression godoc
// @Summary      Toggle like/expression on a post
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /engagement/expression/{postId} [post]
func (h *EngagementHandler) ToggleExpression(c *gin.Context) {
	h.toggle(c, "Expression", entity.EngagementTypeExpression, h.engagementUseCase.ToggleExpression)
}

// ToggleEndorsement godoc
// @Summary      Toggle endorsement on a post
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /engagement/endorse/{postId} [post]
func (h *EngagementHandler) ToggleEndorsement(c *gin.Context) {
	h.toggle(c, "Endorsement", entity.EngagementTypeEndorsement, h.engagementUseCase.ToggleEndorsement)
}

// DeleteEngagement godoc
// @Summary      Delete an engagement (own engagement only)
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        engagementId path string true "Engagement ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/{engagementId} [delete]
func (h *EngagementHandler) DeleteEngagement(c *gin.Context) {
	userID := c.GetString("user_id")
	engagementID := c.Param("engagementId")

	if err := h.engagementUseCase.DeleteEngagement(userID, engagementID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Engagement deleted successfully"})
}

// GetPostEngagements godoc
// @Summary      Get all engagements for a post
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        type query string false "Engagement type filter"
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /engagement/post/{postId} [get]
func (h *EngagementHandler) GetPostEngagements(c *gin.Context) {
	postID := c.Param("postId")
	engType := c.Query("type")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	engagements, total, err := h.engagementUseCase.ListEngagements(postID, engType, limit, skip)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post engagements retrieved successfully",
		"data": gin.H{
			"engagements": engagements,
			"pagination": gin.H{
				"total":   total,
				"limit":   limit,
				"skip":    skip,
				"hasMore": total > int64(skip+limit),
			},
		},
	})
}
