package persistent

import (
	"hi-platform/services/post/internal/entity"
	"hi-platform/services/post/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	post := &entity.Post{
		ID:               m.ID,
		Type:             entity.PostType(m.Type),
		ThoughtType:      entity.ThoughtType(m.ThoughtType),
		Content:          m.Content,
		Industry:         m.Industry,
		AuthorID:         m.AuthorID,
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
	if m.Author.ID != "" {
		post.Author = &entity.Author{
			ID:             m.Author.ID,
			HiIdentityName: m.Author.HiIdentityName,
		}
	}
	return post
}

func ToPostModel(p *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:               p.ID,
		Type:             string(p.Type),
		ThoughtType:      string(p.ThoughtType),
		Content:          p.Content,
		Industry:         p.Industry,
		AuthorID:         p.AuthorID,
		ExpressionCount:  p.ExpressionCount,
		POVCount:         p.POVCount,
		SolutionCount:    p.SolutionCount,
		DiscussionCount:  p.DiscussionCount,
		DebateCount:      p.DebateCount,
		EndorsementCount: p.EndorsementCount,
		EngagementCount:  p.EngagementCount,
	}
}
