package persistent

import (
	"hi-platform/services/user/internal/entity"
	"hi-platform/services/user/internal/model"
)

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             m.ID,
		FullName:       m.FullName,
		Email:          m.Email,
		HiIdentityName: m.HiIdentityName,
		Password:       m.Password,
		AvatarURL:      m.AvatarURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toPostEntity(m *model.PostModel) *entity.Post {
	post := &entity.Post{
		ID:               m.ID,
		Type:             m.Type,
		ThoughtType:      m.ThoughtType,
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

func toInteractionEntity(m *model.EngagementModel) *entity.Interaction {
	interaction := &entity.Interaction{
		ID:        m.ID,
		Type:      m.Type,
		Content:   m.Content,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
	if m.Post.ID != "" {
		summary := &entity.PostSummary{
			ID:          m.Post.ID,
			Type:        m.Post.Type,
			ThoughtType: m.Post.ThoughtType,
			Content:     m.Post.Content,
		}
		if m.Post.Author.ID != "" {
			summary.Author = &entity.Author{
				ID:             m.Post.Author.ID,
				HiIdentityName: m.Post.Author.HiIdentityName,
			}
		}
		interaction.Post = summary
	}
	return interaction
}
