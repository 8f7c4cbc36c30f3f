package entity

import "time"

type PostType string

const (
	PostTypeIdeaSnap    PostType = "ideaSnap"
	PostTypeMarketGap   PostType = "marketGap"
	PostTypeThought     PostType = "thought"
	PostTypeObservation PostType = "observation"
)

type ThoughtType string

const (
	ThoughtTypeWhatIf ThoughtType = "whatIf"
	ThoughtTypeWhyNot ThoughtType = "whyNot"
)

type Post struct {
	ID               string      `json:"id"`
	Type             PostType    `json:"type"`
	ThoughtType      ThoughtType `json:"thoughtType,omitempty"`
	AuthorID         string      `json:"authorId"`
	Content          string      `json:"content"`
	Industry         string      `json:"industry,omitempty"`
	ExpressionCount  int         `json:"expressionCount"`
	POVCount         int         `json:"povCount"`
	SolutionCount    int         `json:"solutionCount"`
	DiscussionCount  int         `json:"discussionCount"`
	DebateCount      int         `json:"debateCount"`
	EndorsementCount int         `json:"endorsementCount"`
	EngagementCount  int         `json:"engagementCount"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// Counter returns the stored counter value dedicated to the given engagement type.
func (p *Post) Counter(t EngagementType) int {
	switch t {
	case EngagementTypePOV:
		return p.POVCount
	case EngagementTypeSolution:
		return p.SolutionCount
	case EngagementTypeDiscussion:
		return p.DiscussionCount
	case EngagementTypeDebate:
		return p.DebateCount
	case EngagementTypeExpression:
		return p.ExpressionCount
	case EngagementTypeEndorsement:
		return p.EndorsementCount
	}
	return 0
}
