package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID             string `gorm:"type:uuid;primary_key"`
	FullName       string `gorm:"type:varchar(100);not null"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"`
	HiIdentityName string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Password       string `gorm:"type:varchar(100);not null"`
	RefreshToken   string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
