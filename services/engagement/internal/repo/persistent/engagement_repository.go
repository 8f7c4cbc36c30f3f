package persistent

import (
	"errors"

	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementRepository interface {
	Create(engagement *entity.Engagement) error
	GetByID(id string) (*entity.Engagement, error)
	Delete(id string) error
	FindToggle(postID, authorID string, engType entity.EngagementType) (*entity.Engagement, error)
	ListByPost(postID string, engType entity.EngagementType, limit, skip int) ([]*entity.Engagement, int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) Create(engagement *entity.Engagement) error {
	engagementModel := ToEngagementModel(engagement)
	if engagementModel.ID == "" {
		engagementModel.ID = uuid.New().String()
	}

	if err := r.db.Create(engagementModel).Error; err != nil {
		// The partial unique index on (post_id, author_id, type) rejects a
		// racing duplicate toggle; surface it distinctly instead of letting
		// two live rows appear.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrDuplicateToggle
		}
		return err
	}

	if err := r.db.Preload("Author").First(engagementModel, "id = ?", engagementModel.ID).Error; err != nil {
		return err
	}

	*engagement = *ToEngagementEntity(engagementModel)
	return nil
}

func (r *engagementRepository) GetByID(id string) (*entity.Engagement, error) {
	var engagementModel model.EngagementModel
	if err := r.db.Where("id = ?", id).First(&engagementModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrEngagementNotFound
		}
		return nil, err
	}
	return ToEngagementEntity(&engagementModel), nil
}

func (r *engagementRepository) Delete(id string) error {
	result := r.db.Unscoped().Where("id = ?", id).Delete(&model.EngagementModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrEngagementNotFound
	}
	return nil
}

func (r *engagementRepository) FindToggle(postID, authorID string, engType entity.EngagementType) (*entity.Engagement, error) {
	var engagementModel model.EngagementModel
	err := r.db.Where("post_id = ? AND author_id = ? AND type = ?", postID, authorID, string(engType)).
		First(&engagementModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToEngagementEntity(&engagementModel), nil
}

func (r *engagementRepository) ListByPost(postID string, engType entity.EngagementType, limit, skip int) ([]*entity.Engagement, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("post_id = ?", postID)
		if engType != "" {
			db = db.Where("type = ?", string(engType))
		}
		return db
	}

	var total int64
	if err := filter(r.db.Model(&model.EngagementModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var engagementModels []model.EngagementModel
	err := filter(r.db).Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&engagementModels).Error
	if err != nil {
		return nil, 0, err
	}

	engagements := make([]*entity.Engagement, len(engagementModels))
	for i := range engagementModels {
		engagements[i] = ToEngagementEntity(&engagementModels[i])
	}
	return engagements, total, nil
}
