package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementModel struct {
	ID        string         `gorm:"type:uuid;primary_key"`
	Type      string         `gorm:"type:varchar(20);not null;index"`
	Content   string         `gorm:"type:varchar(500)"`
	PostID    string         `gorm:"type:uuid;not null;index"`
	AuthorID  string         `gorm:"type:uuid;not null;index"`
	Author    UserModel      `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (EngagementModel) TableName() string {
	return "engagements"
}

func (e *EngagementModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
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
