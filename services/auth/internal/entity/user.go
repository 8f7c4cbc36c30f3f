package entity

import "time"

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	HiIdentityName string    `json:"hiIdentityName"`
	Password       string    `json:"-"`
	RefreshToken   string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
