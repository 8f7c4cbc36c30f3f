package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hi-platform/pkg/logger"
	"hi-platform/services/post/internal/entity"
	"hi-platform/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(userID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPosts(filter entity.ListFilter, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	args := m.Called(filter, sort, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostUseCase) GetTrendingPosts(filter entity.ListFilter, limit, skip int) ([]*entity.Post, error) {
	args := m.Called(filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPostByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateMarketGap_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/marketGap", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateMarketGap(c)
	})

	mockPost := &entity.Post{
		ID:       "post-1",
		Type:     entity.PostTypeMarketGap,
		Content:  "nobody delivers here",
		Industry: "Logistics",
		AuthorID: "user-123",
	}
	mockUseCase.On("CreatePost", "user-123", usecase.CreatePostInput{
		Type:     "marketGap",
		Content:  "nobody delivers here",
		Industry: "Logistics",
	}).Return(mockPost, nil)

	body := `{"content":"nobody delivers here","industry":"Logistics"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/marketGap", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Market Gap created successfully", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateThought_MissingThoughtType(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/thought", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateThought(c)
	})

	mockUseCase.On("CreatePost", "user-123", usecase.CreatePostInput{
		Type:     "thought",
		Content:  "what if",
		Industry: "Tech",
	}).Return(nil, entity.ErrInvalidThoughtType)

	body := `{"content":"what if","industry":"Tech"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/thought", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPosts_PaginationAndFilters(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.GetPosts)

	rows := []*entity.Post{
		{ID: "post-1", Type: entity.PostTypeThought, ThoughtType: entity.ThoughtTypeWhatIf},
	}
	expectedFilter := entity.ListFilter{
		Type:        entity.PostTypeThought,
		ThoughtType: entity.ThoughtTypeWhatIf,
		Industry:    "Tech",
	}
	mockUseCase.On("GetPosts", expectedFilter, "popular", 5, 10).Return(rows, int64(16), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?type=thought&thoughtType=whatIf&industry=Tech&sort=popular&limit=5&skip=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(16), pagination["total"])
	assert.Equal(t, true, pagination["hasMore"])

	mockUseCase.AssertExpectations(t)
}

func TestGetTrendingPosts_DefaultLimit(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/trending", handler.GetTrendingPosts)

	mockUseCase.On("GetTrendingPosts", entity.ListFilter{}, 10, 0).Return([]*entity.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/trending", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPostByID_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPostByID)

	mockUseCase.On("GetPostByID", "missing").Return(nil, entity.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeletePost(c)
	})

	mockUseCase.On("DeletePost", "user-123", "post-1").Return(entity.ErrNotAuthor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeletePost(c)
	})

	mockUseCase.On("DeletePost", "user-123", "post-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post deleted successfully", response["message"])

	mockUseCase.AssertExpectations(t)
}
