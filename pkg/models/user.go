package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	FullName       string         `gorm:"type:varchar(50);not null" json:"fullName"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	HiIdentityName string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"hiIdentityName"`
	Password       string         `gorm:"not null" json:"-"`
	RefreshToken   string         `json:"-"`
	AvatarURL      string         `gorm:"type:varchar(500)" json:"avatarUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
