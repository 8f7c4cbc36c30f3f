package persistent

import (
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/model"

	"gorm.io/gorm"
)

// contentTypes are the engagement kinds that carry text; toggles are not
// interactions.
var contentTypes = []string{"pov", "solution", "discussion", "debate"}

type EngagementRepository interface {
	ListInteractions(authorID, engType string, limit, skip int) ([]*entity.Interaction, int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) ListInteractions(authorID, engType string, limit, skip int) ([]*entity.Interaction, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("author_id = ?", authorID)
		if engType != "" {
			db = db.Where("type = ?", engType)
		} else {
			db = db.Where("type IN ?", contentTypes)
		}
		return db
	}

	var total int64
	if err := filter(r.db.Model(&model.EngagementModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.EngagementModel
	err := filter(r.db.Model(&model.EngagementModel{})).
		Preload("Post").
		Preload("Post.Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	interactions := make([]*entity.Interaction, 0, len(rows))
	for i := range rows {
		interactions = append(interactions, toInteractionEntity(&rows[i]))
	}
	return interactions, total, nil
}
