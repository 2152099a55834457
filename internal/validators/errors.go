package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUsername = errors.New("username must be 3-50 characters")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrWeakPassword    = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrInvalidName     = errors.New("name must be at most 100 characters")
	ErrEmptyTitle      = errors.New("article title is required")
	ErrEmptyContent    = errors.New("article content is required")
	ErrInvalidAuthor   = errors.New("author must be at most 100 characters")
)
