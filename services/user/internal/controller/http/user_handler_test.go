package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hi-platform/pkg/logger"
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetProfile(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetByIdentity(identityName string) (*entity.PublicProfile, error) {
	args := m.Called(identityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicProfile), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(userID string, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetOwnPosts(userID, postType, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	args := m.Called(userID, postType, sort, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserUseCase) GetPostsByIdentity(identityName, postType, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	args := m.Called(identityName, postType, sort, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserUseCase) GetInteractions(userID, engType string, limit, skip int) ([]*entity.Interaction, int64, error) {
	args := m.Called(userID, engType, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Interaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserUseCase) GetEndorsements(userID, postType string, limit, skip int) ([]*entity.Post, int64, error) {
	args := m.Called(userID, postType, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetProfile_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/profile", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetProfile(c)
	})

	mockUseCase.On("GetProfile", "user-1").Return(&entity.User{
		ID:             "user-1",
		FullName:       "Ada Lovelace",
		Email:          "ada@example.com",
		HiIdentityName: "ada123",
		Password:       "a-hash",
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/profile", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotContains(t, user, "password")

	mockUseCase.AssertExpectations(t)
}

func TestGetByIdentity_NotFound(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:hiIdentityName", handler.GetByIdentity)

	mockUseCase.On("GetByIdentity", "ghost").Return(nil, entity.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetByIdentity_PublicFields(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:hiIdentityName", handler.GetByIdentity)

	mockUseCase.On("GetByIdentity", "ada123").Return(&entity.PublicProfile{HiIdentityName: "ada123"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ada123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "ada123", user["hiIdentityName"])
	// Public view never exposes the email
	assert.NotContains(t, user, "email")

	mockUseCase.AssertExpectations(t)
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/profile", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.UpdateProfile(c)
	})

	mockUseCase.On("UpdateProfile", "user-1", usecase.UpdateProfileInput{
		Password:        "newsecret123",
		CurrentPassword: "wrong",
	}).Return(nil, entity.ErrCurrentPasswordWrong)

	body := `{"password":"newsecret123","currentPassword":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetOwnPosts_Pagination(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/posts", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetOwnPosts(c)
	})

	rows := []*entity.Post{{ID: "post-1", Type: "ideaSnap", AuthorID: "user-1"}}
	mockUseCase.On("GetOwnPosts", "user-1", "ideaSnap", "oldest", 5, 0).Return(rows, int64(3), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/posts?type=ideaSnap&sort=oldest&limit=5", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, false, pagination["hasMore"])

	mockUseCase.AssertExpectations(t)
}

func TestGetInteractions_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/interactions", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetInteractions(c)
	})

	rows := []*entity.Interaction{{ID: "engagement-1", Type: "solution", PostID: "post-1"}}
	mockUseCase.On("GetInteractions", "user-1", "", 20, 0).Return(rows, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/interactions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetEndorsements_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/endorsements", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetEndorsements(c)
	})

	rows := []*entity.Post{{ID: "post-1", Type: "marketGap"}}
	mockUseCase.On("GetEndorsements", "user-1", "", 20, 0).Return(rows, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/endorsements", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUploadAvatar_MissingFile(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/users/profile/avatar", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.UploadAvatar(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/profile/avatar", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
