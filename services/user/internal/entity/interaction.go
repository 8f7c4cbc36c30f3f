package entity

import "time"

// Interaction is a content engagement the user authored, carried together
// with a summary of the post it targets.
type Interaction struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Content   string       `json:"content"`
	PostID    string       `json:"postId"`
	Post      *PostSummary `json:"post,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type PostSummary struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	ThoughtType string  `json:"thoughtType,omitempty"`
	Content     string  `json:"content"`
	Author      *Author `json:"author,omitempty"`
}
