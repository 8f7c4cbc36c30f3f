package entity

import "time"

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	HiIdentityName string    `json:"hiIdentityName"`
	Password       string    `json:"-"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublicProfile is what other users get to see about an account.
type PublicProfile struct {
	HiIdentityName string    `json:"hiIdentityName"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u *User) PublicProfile() *PublicProfile {
	return &PublicProfile{
		HiIdentityName: u.HiIdentityName,
		AvatarURL:      u.AvatarURL,
		CreatedAt:      u.CreatedAt,
	}
}
