package model

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	ID             string `gorm:"type:uuid;primary_key"`
	FullName       string `gorm:"type:varchar(100);not null"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"`
	HiIdentityName string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Password       string `gorm:"type:varchar(100);not null"`
	AvatarURL      string `gorm:"type:varchar(500)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

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

type EngagementModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	Type      string    `gorm:"type:varchar(20);not null;index"`
	Content   string    `gorm:"type:varchar(500)"`
	PostID    string    `gorm:"type:uuid;not null;index"`
	Post      PostModel `gorm:"foreignKey:PostID"`
	AuthorID  string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (EngagementModel) TableName() string {
	return "engagements"
}
