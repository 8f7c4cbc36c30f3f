package entity

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrEngagementNotFound = errors.New("engagement not found")
	ErrNotAuthor          = errors.New("not authorized to delete this engagement")
	ErrContentRequired    = errors.New("content is required")
	ErrContentTooLong     = errors.New("content cannot exceed 500 characters")
	ErrInvalidType        = errors.New("invalid engagement type")

	// Business-rule mismatches between engagement type and target post.
	ErrNotMarketGap = errors.New("solutions can only be added to Market Gap posts")
	ErrNotWhatIf    = errors.New("discussions can only be added to What If thoughts")
	ErrNotWhyNot    = errors.New("debates can only be added to Why Not thoughts")

	// A racing duplicate toggle insert hit the unique index.
	ErrDuplicateToggle = errors.New("engagement already exists for this post and author")
)
