package entity

import "time"

type PostType string

const (
	PostTypeIdeaSnap    PostType = "ideaSnap"
	PostTypeMarketGap   PostType = "marketGap"
	PostTypeThought     PostType = "thought"
	PostTypeObservation PostType = "observation"
)

// IsValid reports whether t is one of the four post types.
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeIdeaSnap, PostTypeMarketGap, PostTypeThought, PostTypeObservation:
		return true
	}
	return false
}

type ThoughtType string

const (
	ThoughtTypeWhatIf ThoughtType = "whatIf"
	ThoughtTypeWhyNot ThoughtType = "whyNot"
)

func (t ThoughtType) IsValid() bool {
	return t == ThoughtTypeWhatIf || t == ThoughtTypeWhyNot
}

type Post struct {
	ID          string      `json:"id"`
	Type        PostType    `json:"type"`
	ThoughtType ThoughtType `json:"thoughtType,omitempty"`
	Content     string      `json:"content"`
	Industry    string      `json:"industry,omitempty"`
	AuthorID    string      `json:"authorId"`
	Author      *Author     `json:"author,omitempty"`

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

// Author is the public slice of a user attached to post responses.
type Author struct {
	ID             string `json:"id"`
	HiIdentityName string `json:"hiIdentityName"`
}

// ListFilter narrows post queries; zero values mean "no constraint".
type ListFilter struct {
	Type        PostType
	ThoughtType ThoughtType
	Industry    string
	AuthorID    string
}
