package persistent

import (
	"hi-platform/services/engagement/internal/entity"
	"hi-platform/services/engagement/internal/model"
)

func ToEngagementEntity(m *model.EngagementModel) *entity.Engagement {
	if m == nil {
		return nil
	}

	e := &entity.Engagement{
		ID:        m.ID,
		Type:      entity.EngagementType(m.Type),
		Content:   m.Content,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Author.ID != "" {
		e.Author = &entity.Author{
			ID:             m.Author.ID,
			HiIdentityName: m.Author.HiIdentityName,
		}
	}

	return e
}

func ToEngagementModel(e *entity.Engagement) *model.EngagementModel {
	if e == nil {
		return nil
	}

	return &model.EngagementModel{
		ID:        e.ID,
		Type:      string(e.Type),
		Content:   e.Content,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:               m.ID,
		Type:             entity.PostType(m.Type),
		ThoughtType:      entity.ThoughtType(m.ThoughtType),
		AuthorID:         m.AuthorID,
		Content:          m.Content,
		Industry:         m.Industry,
		ExpressionCount:  m.ExpressionCount,
		POVCount:         m.POVCount,
		SolutionCount:    m.SolutionCount,
		DiscussionCount:  m.DiscussionCount,
		DebateCount:      m.DebateCount,
		EndorsementCount: m.EndorsementCount,
		EngagementCount:  m.EngagementCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
