package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID               string    `gorm:"type:uuid;primary_key"`
	Type             string    `gorm:"type:varchar(20);not null;index"`
	ThoughtType      string    `gorm:"type:varchar(10)"`
	AuthorID         string    `gorm:"type:uuid;not null;index"`
	Author           UserModel `gorm:"foreignKey:AuthorID"`
	Content          string    `gorm:"type:varchar(500);not null"`
	Industry         string    `gorm:"type:varchar(50)"`
	ExpressionCount  int       `gorm:"default:0"`
	POVCount         int       `gorm:"column:pov_count;default:0"`
	SolutionCount    int       `gorm:"default:0"`
	DiscussionCount  int       `gorm:"default:0"`
	DebateCount      int       `gorm:"default:0"`
	EndorsementCount int       `gorm:"default:0"`
	EngagementCount  int       `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// UserModel is a read-only projection of the users table for author lookups.
type UserModel struct {
	ID             string `gorm:"type:uuid;primary_key"`
	HiIdentityName string
}

func (UserModel) TableName() string {
	return "users"
}

// EngagementModel is the slice of the engagements table the post service
// touches when cascading a post delete.
type EngagementModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	PostID string `gorm:"type:uuid;not null;index"`
}

func (EngagementModel) TableName() string {
	return "engagements"
}
