package usecase

import (
	"strings"
	"unicode/utf8"

	"hi-platform/pkg/logger"
	"hi-platform/pkg/queue"
	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/repo/persistent"
)

const maxContentLength = 500

type ToggleResult struct {
	Action string `json:"action"` // added or removed
	Count  int    `json:"count"`
}

type EngagementUseCase interface {
	AddPOV(userID, postID, content string) (*entity.Engagement, error)
	AddSolution(userID, postID, content string) (*entity.Engagement, error)
	JoinDiscussion(userID, postID, content string) (*entity.Engagement, error)
	JoinDebate(userID, postID, content string) (*entity.Engagement, error)
	ToggleExpression(userID, postID string) (*ToggleResult, error)
	ToggleEndorsement(userID, postID string) (*ToggleResult, error)
	DeleteEngagement(userID, engagementID string) error
	ListEngagements(postID, engType string, limit, skip int) ([]*entity.Engagement, int64, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	postRepo       persistent.PostRepository
	queueClient    *queue.Client
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		queueClient:    queueClient,
		logger:         logger,
	}
}

func (uc *engagementUseCase) AddPOV(userID, postID, content string) (*entity.Engagement, error) {
	return uc.addContentEngagement(userID, postID, content, entity.EngagementTypePOV, nil)
}

func (uc *engagementUseCase) AddSolution(userID, postID, content string) (*entity.Engagement, error) {
	return uc.addContentEngagement(userID, postID, content, entity.EngagementTypeSolution, func(post *entity.Post) error {
		if post.Type != entity.PostTypeMarketGap {
			return entity.ErrNotMarketGap
		}
		return nil
	})
}

func (uc *engagementUseCase) JoinDiscussion(userID, postID, content string) (*entity.Engagement, error) {
	return uc.addContentEngagement(userID, postID, content, entity.EngagementTypeDiscussion, func(post *entity.Post) error {
		if post.Type != entity.PostTypeThought || post.ThoughtType != entity.ThoughtTypeWhatIf {
			return entity.ErrNotWhatIf
		}
		return nil
	})
}

func (uc *engagementUseCase) JoinDebate(userID, postID, content string) (*entity.Engagement, error) {
	return uc.addContentEngagement(userID, postID, content, entity.EngagementTypeDebate, func(post *entity.Post) error {
		if post.Type != entity.PostTypeThought || post.ThoughtType != entity.ThoughtTypeWhyNot {
			return entity.ErrNotWhyNot
		}
		return nil
	})
}

// addContentEngagement is the shared flow for the four content-bearing types:
// verify the post, verify the business rule, insert the row, then shift the
// post counters by +1.
func (uc *engagementUseCase) addContentEngagement(
	userID, postID, content string,
	engType entity.EngagementType,
	checkPost func(*entity.Post) error,
) (*entity.Engagement, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrContentRequired
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, entity.ErrContentTooLong
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if checkPost != nil {
		if err := checkPost(post); err != nil {
			return nil, err
		}
	}

	engagement := &entity.Engagement{
		Type:     engType,
		Content:  content,
		PostID:   postID,
		AuthorID: userID,
	}
	if err := uc.engagementRepo.Create(engagement); err != nil {
		uc.logger.Error("Failed to create %s engagement: %v", engType, err)
		return nil, err
	}

	if err := uc.postRepo.ApplyCounterDelta(postID, engType, 1); err != nil {
		uc.logger.Error("Failed to increment counters for post %s: %v", postID, err)
		return nil, err
	}

	uc.publishEvent("created", engagement)
	return engagement, nil
}

func (uc *engagementUseCase) ToggleExpression(userID, postID string) (*ToggleResult, error) {
	return uc.toggle(userID, postID, entity.EngagementTypeExpression)
}

func (uc *engagementUseCase) ToggleEndorsement(userID, postID string) (*ToggleResult, error) {
	return uc.toggle(userID, postID, entity.EngagementTypeEndorsement)
}

// toggle flips the (post, author) row for expression/endorsement. The find
// and the insert are not atomic together; the unique index on
// (post_id, author_id, type) is what keeps concurrent duplicate toggles from
// producing two live rows.
func (uc *engagementUseCase) toggle(userID, postID string, engType entity.EngagementType) (*ToggleResult, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	existing, err := uc.engagementRepo.FindToggle(postID, userID, engType)
	if err != nil {
		return nil, err
	}

	var action string
	if existing != nil {
		if err := uc.engagementRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
		if err := uc.postRepo.ApplyCounterDelta(postID, engType, -1); err != nil {
			return nil, err
		}
		action = "removed"
		uc.publishEvent("removed", existing)
	} else {
		engagement := &entity.Engagement{
			Type:     engType,
			PostID:   postID,
			AuthorID: userID,
		}
		if err := uc.engagementRepo.Create(engagement); err != nil {
			return nil, err
		}
		if err := uc.postRepo.ApplyCounterDelta(postID, engType, 1); err != nil {
			return nil, err
		}
		action = "added"
		uc.publishEvent("created", engagement)
	}

	// Re-read the post so the returned count reflects the applied delta
	// rather than a stale pre-toggle value.
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{Action: action, Count: post.Counter(engType)}, nil
}

func (uc *engagementUseCase) DeleteEngagement(userID, engagementID string) error {
	engagement, err := uc.engagementRepo.GetByID(engagementID)
	if err != nil {
		return err
	}

	if engagement.AuthorID != userID {
		return entity.ErrNotAuthor
	}

	if err := uc.engagementRepo.Delete(engagementID); err != nil {
		return err
	}

	// Decrement is routed by the row's own type so expression/endorsement
	// deletions hit their dedicated counters, never engagement_count.
	if err := uc.postRepo.ApplyCounterDelta(engagement.PostID, engagement.Type, -1); err != nil {
		uc.logger.Error("Failed to decrement counters for post %s: %v", engagement.PostID, err)
		return err
	}

	uc.publishEvent("removed", engagement)
	return nil
}

func (uc *engagementUseCase) ListEngagements(postID, engType string, limit, skip int) ([]*entity.Engagement, int64, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, 0, err
	}

	filterType := entity.EngagementType(engType)
	if engType != "" && !filterType.IsValid() {
		return nil, 0, entity.ErrInvalidType
	}

	return uc.engagementRepo.ListByPost(postID, filterType, limit, skip)
}

func (uc *engagementUseCase) publishEvent(action string, engagement *entity.Engagement) {
	if uc.queueClient == nil {
		return
	}

	event := queue.EngagementEvent{
		Action:   action,
		Type:     string(engagement.Type),
		PostID:   engagement.PostID,
		AuthorID: engagement.AuthorID,
	}

	go func() {
		if err := uc.queueClient.PublishEngagementEvent(event); err != nil {
			uc.logger.Error("Failed to publish engagement event: %v", err)
		}
	}()
}
