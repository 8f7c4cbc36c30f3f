package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementType string

const (
	EngagementTypePOV         EngagementType = "pov"
	EngagementTypeSolution    EngagementType = "solution"
	EngagementTypeDiscussion  EngagementType = "discussion"
	EngagementTypeDebate      EngagementType = "debate"
	EngagementTypeExpression  EngagementType = "expression"
	EngagementTypeEndorsement EngagementType = "endorsement"
)

type Engagement struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Type      EngagementType `gorm:"type:varchar(20);not null;index:idx_engagements_post_type" json:"type"`
	Content   string         `gorm:"type:varchar(500)" json:"content,omitempty"`
	PostID    string         `gorm:"type:uuid;not null;index:idx_engagements_post_type" json:"postId"`
	AuthorID  string         `gorm:"type:uuid;not null;index" json:"authorId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Engagement) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
