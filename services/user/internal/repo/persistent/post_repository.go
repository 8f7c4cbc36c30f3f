package persistent

import (
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	ListByAuthor(authorID, postType, sort string, limit, skip int) ([]*entity.Post, int64, error)
	ListEndorsed(userID, postType string, limit, skip int) ([]*entity.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func sortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "popular":
		return "expression_count DESC"
	default: // newest
		return "created_at DESC"
	}
}

func (r *postRepository) ListByAuthor(authorID, postType, sort string, limit, skip int) ([]*entity.Post, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("author_id = ?", authorID)
		if postType != "" {
			db = db.Where("type = ?", postType)
		}
		return db
	}

	var total int64
	if err := filter(r.db.Model(&model.PostModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PostModel
	err := filter(r.db.Model(&model.PostModel{})).
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
		posts = append(posts, toPostEntity(&rows[i]))
	}
	return posts, total, nil
}

func (r *postRepository) ListEndorsed(userID, postType string, limit, skip int) ([]*entity.Post, int64, error) {
	endorsed := r.db.Model(&model.EngagementModel{}).
		Select("post_id").
		Where("author_id = ? AND type = ?", userID, "endorsement")

	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("id IN (?)", endorsed)
		if postType != "" {
			db = db.Where("type = ?", postType)
		}
		return db
	}

	var total int64
	if err := filter(r.db.Model(&model.PostModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PostModel
	err := filter(r.db.Model(&model.PostModel{})).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, toPostEntity(&rows[i]))
	}
	return posts, total, nil
}
