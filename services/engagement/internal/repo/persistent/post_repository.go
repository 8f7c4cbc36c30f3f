package persistent

import (
	"errors"
	"fmt"

	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	GetByID(id string) (*entity.Post, error)
	ApplyCounterDelta(postID string, engType entity.EngagementType, delta int) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// counterColumns maps an engagement type to the post columns it maintains.
// Only the four content-bearing types count toward engagement_count.
func counterColumns(engType entity.EngagementType) []string {
	switch engType {
	case entity.EngagementTypePOV:
		return []string{"pov_count", "engagement_count"}
	case entity.EngagementTypeSolution:
		return []string{"solution_count", "engagement_count"}
	case entity.EngagementTypeDiscussion:
		return []string{"discussion_count", "engagement_count"}
	case entity.EngagementTypeDebate:
		return []string{"debate_count", "engagement_count"}
	case entity.EngagementTypeExpression:
		return []string{"expression_count"}
	case entity.EngagementTypeEndorsement:
		return []string{"endorsement_count"}
	}
	return nil
}

// ApplyCounterDelta shifts the counters owned by engType by delta in a single
// atomic UPDATE. Decrements are clamped at zero so replayed or reordered
// deletes can never drive a counter negative.
func (r *postRepository) ApplyCounterDelta(postID string, engType entity.EngagementType, delta int) error {
	columns := counterColumns(engType)
	if len(columns) == 0 {
		return entity.ErrInvalidType
	}

	updates := make(map[string]interface{}, len(columns))
	for _, column := range columns {
		if delta >= 0 {
			updates[column] = clause.Expr{SQL: fmt.Sprintf("%s + ?", column), Vars: []interface{}{delta}}
		} else {
			updates[column] = clause.Expr{SQL: fmt.Sprintf("GREATEST(%s - ?, 0)", column), Vars: []interface{}{-delta}}
		}
	}

	return r.db.Model(&model.PostModel{}).Where("id = ?", postID).UpdateColumns(updates).Error
}
