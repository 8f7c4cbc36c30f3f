package persistent

import (
	"errors"
	"time"

	"hi-platform/services/post/internal/entity"
	"hi-platform/services/post/internal/model"

	"gorm.io/gorm"
)

const trendingWindow = 7 * 24 * time.Hour

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(filter entity.ListFilter, sort string, limit, skip int) ([]*entity.Post, int64, error)
	ListTrending(filter entity.ListFilter, limit, skip int) ([]*entity.Post, error)
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	// Re-read with the author attached so the response carries identity info.
	var created model.PostModel
	if err := r.db.Preload("Author").First(&created, "id = ?", postModel.ID).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(&created)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Author").First(&postModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// applyFilter narrows the query; a thoughtType filter only makes sense
// together with type=thought and is ignored otherwise.
func applyFilter(db *gorm.DB, filter entity.ListFilter) *gorm.DB {
	if filter.Type != "" {
		db = db.Where("type = ?", string(filter.Type))
		if filter.Type == entity.PostTypeThought && filter.ThoughtType != "" {
			db = db.Where("thought_type = ?", string(filter.ThoughtType))
		}
	}
	if filter.Industry != "" {
		db = db.Where("industry = ?", filter.Industry)
	}
	if filter.AuthorID != "" {
		db = db.Where("author_id = ?", filter.AuthorID)
	}
	return db
}

func sortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "popular":
		return "expression_count DESC"
	case "trending":
		return "expression_count DESC, created_at DESC"
	default: // newest
		return "created_at DESC"
	}
}

func (r *postRepository) List(filter entity.ListFilter, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	var total int64
	if err := applyFilter(r.db.Model(&model.PostModel{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PostModel
	err := applyFilter(r.db.Model(&model.PostModel{}), filter).
		Preload("Author").
		Order(sortClause(sort)).
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, ToPostEntity(&rows[i]))
	}
	return posts, total, nil
}

func (r *postRepository) ListTrending(filter entity.ListFilter, limit, skip int) ([]*entity.Post, error) {
	since := time.Now().Add(-trendingWindow)

	var rows []model.PostModel
	err := applyFilter(r.db.Model(&model.PostModel{}), filter).
		Where("created_at >= ?", since).
		Preload("Author").
		Order("expression_count DESC, engagement_count DESC, created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, ToPostEntity(&rows[i]))
	}
	return posts, nil
}

// Delete removes the post and every engagement attached to it in one
// transaction, so counters and rows never diverge.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.EngagementModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.PostModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrPostNotFound
		}
		return nil
	})
}
