package usecase

import (
	"strings"
	"testing"

	"hi-platform/pkg/logger"
	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEngagementRepository is a mock implementation of EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) Create(engagement *entity.Engagement) error {
	args := m.Called(engagement)
	if args.Error(0) == nil && engagement.ID == "" {
		engagement.ID = "engagement-generated"
	}
	return args.Error(0)
}

func (m *MockEngagementRepository) GetByID(id string) (*entity.Engagement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEngagementRepository) FindToggle(postID, authorID string, engType entity.EngagementType) (*entity.Engagement, error) {
	args := m.Called(postID, authorID, engType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Engagement), args.Error(1)
}

func (m *MockEngagementRepository) ListByPost(postID string, engType entity.EngagementType, limit, skip int) ([]*entity.Engagement, int64, error) {
	args := m.Called(postID, engType, limit, skip)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Engagement), args.Get(1).(int64), args.Error(2)
}

var _ persistent.EngagementRepository = (*MockEngagementRepository)(nil)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ApplyCounterDelta(postID string, engType entity.EngagementType, delta int) error {
	args := m.Called(postID, engType, delta)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

func newTestUseCase(engagementRepo *MockEngagementRepository, postRepo *MockPostRepository) EngagementUseCase {
	return NewEngagementUseCase(engagementRepo, postRepo, nil, logger.New())
}

func marketGapPost() *entity.Post {
	return &entity.Post{ID: "post-123", Type: entity.PostTypeMarketGap, AuthorID: "author-1"}
}

func TestAddPOV_Success(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "post-123").Return(marketGapPost(), nil)
	engagementRepo.On("Create", mock.MatchedBy(func(e *entity.Engagement) bool {
		return e.Type == entity.EngagementTypePOV && e.PostID == "post-123" && e.AuthorID == "user-1"
	})).Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypePOV, 1).Return(nil)

	engagement, err := uc.AddPOV("user-1", "post-123", "a point of view")

	assert.NoError(t, err)
	assert.NotNil(t, engagement)
	assert.Equal(t, entity.EngagementTypePOV, engagement.Type)
	engagementRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestAddPOV_PostNotFound(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "missing").Return(nil, entity.ErrPostNotFound)

	_, err := uc.AddPOV("user-1", "missing", "a point of view")

	assert.ErrorIs(t, err, entity.ErrPostNotFound)
	engagementRepo.AssertNotCalled(t, "Create", mock.Anything)
	postRepo.AssertNotCalled(t, "ApplyCounterDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddPOV_EmptyContent(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	_, err := uc.AddPOV("user-1", "post-123", "   ")

	assert.ErrorIs(t, err, entity.ErrContentRequired)
	postRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAddPOV_ContentTooLong(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	_, err := uc.AddPOV("user-1", "post-123", strings.Repeat("a", 501))

	assert.ErrorIs(t, err, entity.ErrContentTooLong)
}

func TestAddSolution_WrongPostType(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	post := &entity.Post{ID: "post-123", Type: entity.PostTypeIdeaSnap}
	postRepo.On("GetByID", "post-123").Return(post, nil)

	_, err := uc.AddSolution("user-1", "post-123", "a solution")

	assert.ErrorIs(t, err, entity.ErrNotMarketGap)
	// Counters must stay untouched on business-rule failure
	engagementRepo.AssertNotCalled(t, "Create", mock.Anything)
	postRepo.AssertNotCalled(t, "ApplyCounterDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddSolution_Success(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "post-123").Return(marketGapPost(), nil)
	engagementRepo.On("Create", mock.Anything).Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypeSolution, 1).Return(nil)

	engagement, err := uc.AddSolution("user-1", "post-123", "a solution")

	assert.NoError(t, err)
	assert.Equal(t, entity.EngagementTypeSolution, engagement.Type)
	postRepo.AssertExpectations(t)
}

func TestJoinDiscussion_WhatIfThought(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	post := &entity.Post{ID: "post-123", Type: entity.PostTypeThought, ThoughtType: entity.ThoughtTypeWhatIf}
	postRepo.On("GetByID", "post-123").Return(post, nil)
	engagementRepo.On("Create", mock.Anything).Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypeDiscussion, 1).Return(nil)

	engagement, err := uc.JoinDiscussion("user-1", "post-123", "joining in")

	assert.NoError(t, err)
	assert.Equal(t, entity.EngagementTypeDiscussion, engagement.Type)
}

func TestJoinDebate_WhatIfThoughtRejected(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	post := &entity.Post{ID: "post-123", Type: entity.PostTypeThought, ThoughtType: entity.ThoughtTypeWhatIf}
	postRepo.On("GetByID", "post-123").Return(post, nil)

	_, err := uc.JoinDebate("user-1", "post-123", "a rebuttal")

	assert.ErrorIs(t, err, entity.ErrNotWhyNot)
	engagementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestToggleExpression_Add(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	before := &entity.Post{ID: "post-123", Type: entity.PostTypeIdeaSnap}
	after := &entity.Post{ID: "post-123", Type: entity.PostTypeIdeaSnap, ExpressionCount: 1}

	postRepo.On("GetByID", "post-123").Return(before, nil).Once()
	engagementRepo.On("FindToggle", "post-123", "user-1", entity.EngagementTypeExpression).Return(nil, nil)
	engagementRepo.On("Create", mock.Anything).Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypeExpression, 1).Return(nil)
	postRepo.On("GetByID", "post-123").Return(after, nil).Once()

	result, err := uc.ToggleExpression("user-1", "post-123")

	assert.NoError(t, err)
	assert.Equal(t, "added", result.Action)
	assert.Equal(t, 1, result.Count)
	engagementRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestToggleExpression_Remove(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	before := &entity.Post{ID: "post-123", Type: entity.PostTypeIdeaSnap, ExpressionCount: 1}
	after := &entity.Post{ID: "post-123", Type: entity.PostTypeIdeaSnap, ExpressionCount: 0}
	existing := &entity.Engagement{ID: "engagement-1", Type: entity.EngagementTypeExpression, PostID: "post-123", AuthorID: "user-1"}

	postRepo.On("GetByID", "post-123").Return(before, nil).Once()
	engagementRepo.On("FindToggle", "post-123", "user-1", entity.EngagementTypeExpression).Return(existing, nil)
	engagementRepo.On("Delete", "engagement-1").Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypeExpression, -1).Return(nil)
	postRepo.On("GetByID", "post-123").Return(after, nil).Once()

	result, err := uc.ToggleExpression("user-1", "post-123")

	assert.NoError(t, err)
	assert.Equal(t, "removed", result.Action)
	assert.Equal(t, 0, result.Count)
	engagementRepo.AssertExpectations(t)
}

func TestToggleEndorsement_RacingDuplicate(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "post-123").Return(marketGapPost(), nil)
	engagementRepo.On("FindToggle", "post-123", "user-1", entity.EngagementTypeEndorsement).Return(nil, nil)
	// The unique index rejects the second racing insert
	engagementRepo.On("Create", mock.Anything).Return(entity.ErrDuplicateToggle)

	_, err := uc.ToggleEndorsement("user-1", "post-123")

	assert.ErrorIs(t, err, entity.ErrDuplicateToggle)
	postRepo.AssertNotCalled(t, "ApplyCounterDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteEngagement_NotAuthor(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	engagement := &entity.Engagement{ID: "engagement-1", Type: entity.EngagementTypePOV, PostID: "post-123", AuthorID: "someone-else"}
	engagementRepo.On("GetByID", "engagement-1").Return(engagement, nil)

	err := uc.DeleteEngagement("user-1", "engagement-1")

	assert.ErrorIs(t, err, entity.ErrNotAuthor)
	engagementRepo.AssertNotCalled(t, "Delete", mock.Anything)
	postRepo.AssertNotCalled(t, "ApplyCounterDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteEngagement_RoutesCounterByRowType(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	engagement := &entity.Engagement{ID: "engagement-1", Type: entity.EngagementTypeEndorsement, PostID: "post-123", AuthorID: "user-1"}
	engagementRepo.On("GetByID", "engagement-1").Return(engagement, nil)
	engagementRepo.On("Delete", "engagement-1").Return(nil)
	postRepo.On("ApplyCounterDelta", "post-123", entity.EngagementTypeEndorsement, -1).Return(nil)

	err := uc.DeleteEngagement("user-1", "engagement-1")

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}

func TestDeleteEngagement_NotFound(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	engagementRepo.On("GetByID", "missing").Return(nil, entity.ErrEngagementNotFound)

	err := uc.DeleteEngagement("user-1", "missing")

	assert.ErrorIs(t, err, entity.ErrEngagementNotFound)
}

func TestListEngagements_InvalidType(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "post-123").Return(marketGapPost(), nil)

	_, _, err := uc.ListEngagements("post-123", "applause", 20, 0)

	assert.ErrorIs(t, err, entity.ErrInvalidType)
	engagementRepo.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListEngagements_FilteredByType(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	postRepo := new(MockPostRepository)
	uc := newTestUseCase(engagementRepo, postRepo)

	postRepo.On("GetByID", "post-123").Return(marketGapPost(), nil)
	rows := []*entity.Engagement{
		{ID: "engagement-1", Type: entity.EngagementTypeSolution, PostID: "post-123"},
	}
	engagementRepo.On("ListByPost", "post-123", entity.EngagementTypeSolution, 20, 0).Return(rows, int64(1), nil)

	engagements, total, err := uc.ListEngagements("post-123", "solution", 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, engagements, 1)
}
