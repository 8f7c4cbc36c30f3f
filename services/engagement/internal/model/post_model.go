package model

import (
	"time"

	"gorm.io/gorm"
)

type PostModel struct {
	ID               string `gorm:"type:uuid;primary_key"`
	Type             string `gorm:"type:varchar(20);not null"`
	ThoughtType      string `gorm:"type:varchar(10)"`
	AuthorID         string `gorm:"type:uuid;not null"`
	Content          string `gorm:"type:varchar(500);not null"`
	Industry         string `gorm:"type:varchar(50)"`
	ExpressionCount  int    `gorm:"default:0"`
	POVCount         int    `gorm:"column:pov_count;default:0"`
	SolutionCount    int    `gorm:"default:0"`
	DiscussionCount  int    `gorm:"default:0"`
	DebateCount      int    `gorm:"default:0"`
	EndorsementCount int    `gorm:"default:0"`
	EngagementCount  int    `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}
