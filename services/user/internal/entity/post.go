package entity

import "time"

type Post struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	ThoughtType string  `json:"thoughtType,omitempty"`
	Content     string  `json:"content"`
	Industry    string  `json:"industry,omitempty"`
	AuthorID    string  `json:"authorId"`
	Author      *Author `json:"author,omitempty"`

	ExpressionCount  int `json:"expressionCount"`
	POVCount         int `json:"povCount"`
	SolutionCount    int `json:"solutionCount"`
	DiscussionCount  int `json:"discussionCount"`
	DebateCount      int `json:"debateCount"`
	EndorsementCount int `json:"endorsementCount"`
	EngagementCount  int `json:"engagementCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Author struct {
	ID             string `json:"id"`
	HiIdentityName string `json:"hiIdentityName"`
}
