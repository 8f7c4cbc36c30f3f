package entity

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrNotAuthor          = errors.New("not authorized to delete this post")
	ErrInvalidPostType    = errors.New("invalid post type")
	ErrInvalidThoughtType = errors.New("invalid thought type")
	ErrContentRequired    = errors.New("content is required")
	ErrContentTooLong     = errors.New("content cannot exceed 500 characters")
	ErrIndustryRequired   = errors.New("industry is required")
	ErrIndustryTooLong    = errors.New("industry cannot exceed 50 characters")
)
