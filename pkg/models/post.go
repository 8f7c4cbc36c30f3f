package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

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
	ID               string         `gorm:"type:uuid;primary_key" json:"id"`
	Type             PostType       `gorm:"type:varchar(20);not null;index:idx_posts_type_created" json:"type"`
	ThoughtType      ThoughtType    `gorm:"type:varchar(10)" json:"thoughtType,omitempty"`
	AuthorID         string         `gorm:"type:uuid;not null;index:idx_posts_author_created" json:"authorId"`
	Content          string         `gorm:"type:varchar(500);not null" json:"content"`
	Industry         string         `gorm:"type:varchar(50);index" json:"industry,omitempty"`
	ExpressionCount  int            `gorm:"default:0;index" json:"expressionCount"`
	POVCount         int            `gorm:"column:pov_count;default:0" json:"povCount"`
	SolutionCount    int            `gorm:"default:0" json:"solutionCount"`
	DiscussionCount  int            `gorm:"default:0" json:"discussionCount"`
	DebateCount      int            `gorm:"default:0" json:"debateCount"`
	EndorsementCount int            `gorm:"default:0" json:"endorsementCount"`
	EngagementCount  int            `gorm:"default:0" json:"engagementCount"`
	CreatedAt        time.Time      `gorm:"index:idx_posts_type_created;index:idx_posts_author_created" json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
