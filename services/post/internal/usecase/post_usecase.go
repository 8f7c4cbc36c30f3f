package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hi-platform/pkg/logger"
	"hi-platform/pkg/queue"
	"hi-platform/services/post/internal/entity"
	"hi-platform/services/post/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	maxContentLength  = 500
	maxIndustryLength = 50
	trendingCacheTTL  = time.Minute
)

type CreatePostInput struct {
	Type        string
	ThoughtType string
	Content     string
	Industry    string
}

type PostUseCase interface {
	CreatePost(userID string, input CreatePostInput) (*entity.Post, error)
	GetPosts(filter entity.ListFilter, sort string, limit, skip int) ([]*entity.Post, int64, error)
	GetTrendingPosts(filter entity.ListFilter, limit, skip int) ([]*entity.Post, error)
	GetPostByID(id string) (*entity.Post, error)
	DeletePost(userID, postID string) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(userID string, input CreatePostInput) (*entity.Post, error) {
	postType := entity.PostType(input.Type)
	if !postType.IsValid() {
		return nil, entity.ErrInvalidPostType
	}

	thoughtType := entity.ThoughtType(input.ThoughtType)
	if postType == entity.PostTypeThought {
		if !thoughtType.IsValid() {
			return nil, entity.ErrInvalidThoughtType
		}
	} else {
		thoughtType = ""
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, entity.ErrContentRequired
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, entity.ErrContentTooLong
	}

	industry := strings.TrimSpace(input.Industry)
	if industry == "" && postType != entity.PostTypeObservation {
		return nil, entity.ErrIndustryRequired
	}
	if utf8.RuneCountInString(industry) > maxIndustryLength {
		return nil, entity.ErrIndustryTooLong
	}

	post := &entity.Post{
		Type:        postType,
		ThoughtType: thoughtType,
		Content:     content,
		Industry:    industry,
		AuthorID:    userID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, err
	}

	uc.publishEvent("created", post)
	return post, nil
}

func (uc *postUseCase) GetPosts(filter entity.ListFilter, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		filter.Type = ""
		filter.ThoughtType = ""
	}
	if filter.ThoughtType != "" && !filter.ThoughtType.IsValid() {
		filter.ThoughtType = ""
	}
	return uc.postRepo.List(filter, sort, limit, skip)
}

func (uc *postUseCase) GetTrendingPosts(filter entity.ListFilter, limit, skip int) ([]*entity.Post, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		filter.Type = ""
	}

	cacheKey := fmt.Sprintf("trending:%s:%s:%d:%d", filter.Type, filter.Industry, limit, skip)
	if posts, ok := uc.cachedTrending(cacheKey); ok {
		return posts, nil
	}

	posts, err := uc.postRepo.ListTrending(filter, limit, skip)
	if err != nil {
		return nil, err
	}

	uc.cacheTrending(cacheKey, posts)
	return posts, nil
}

func (uc *postUseCase) GetPostByID(id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) DeletePost(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return entity.ErrNotAuthor
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return err
	}

	uc.publishEvent("deleted", post)
	return nil
}

func (uc *postUseCase) cachedTrending(key string) ([]*entity.Post, bool) {
	if uc.redisClient == nil {
		return nil, false
	}

	data, err := uc.redisClient.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}

	var posts []*entity.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

func (uc *postUseCase) cacheTrending(key string, posts []*entity.Post) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	uc.redisClient.Set(context.Background(), key, data, trendingCacheTTL)
}

func (uc *postUseCase) publishEvent(action string, post *entity.Post) {
	if uc.queueClient == nil {
		return
	}

	event := queue.PostEvent{
		Action:   action,
		Type:     string(post.Type),
		PostID:   post.ID,
		AuthorID: post.AuthorID,
	}

	go func() {
		if err := uc.queueClient.PublishPostEvent(event); err != nil {
			uc.logger.Warn("Failed to publish post event: %v", err)
		}
	}()
}
