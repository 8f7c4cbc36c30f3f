package entity

import "time"

type EngagementType string

const (
	EngagementTypePOV         EngagementType = "pov"
	EngagementTypeSolution    EngagementType = "solution"
	EngagementTypeDiscussion  EngagementType = "discussion"
	EngagementTypeDebate      EngagementType = "debate"
	EngagementTypeExpression  EngagementType = "expression"
	EngagementTypeEndorsement EngagementType = "endorsement"
)

// IsValid reports whether t is one of the six engagement types.
func (t EngagementType) IsValid() bool {
	switch t {
	case EngagementTypePOV, EngagementTypeSolution, EngagementTypeDiscussion,
		EngagementTypeDebate, EngagementTypeExpression, EngagementTypeEndorsement:
		return true
	}
	return false
}

// IsToggle reports whether t flips per (post, author) instead of accumulating.
func (t EngagementType) IsToggle() bool {
	return t == EngagementTypeExpression || t == EngagementTypeEndorsement
}

// RequiresContent reports whether t carries a text body.
func (t EngagementType) RequiresContent() bool {
	return !t.IsToggle()
}

// CounterField is the JSON name of the post counter dedicated to t.
func (t EngagementType) CounterField() string {
	switch t {
	case EngagementTypePOV:
		return "povCount"
	case EngagementTypeSolution:
		return "solutionCount"
	case EngagementTypeDiscussion:
		return "discussionCount"
	case EngagementTypeDebate:
		return "debateCount"
	case EngagementTypeExpression:
		return "expressionCount"
	case EngagementTypeEndorsement:
		return "endorsementCount"
	}
	return ""
}

type Engagement struct {
	ID        string         `json:"id"`
	Type      EngagementType `json:"type"`
	Content   string         `json:"content,omitempty"`
	PostID    string         `json:"postId"`
	AuthorID  string         `json:"authorId"`
	Author    *Author        `json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Author is the public slice of a user attached to engagement responses.
type Author struct {
	ID             string `json:"id"`
	HiIdentityName string `json:"hiIdentityName"`
}
