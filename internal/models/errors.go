package models

import "errors"

var (
	// Gallery errors
	ErrPhotoNotFound = errors.New("photo not found")
	ErrMissingFields = errors.New("title and image are required")
	ErrInvalidImage  = errors.New("image payload is not a supported image")

	// Admin errors
	ErrUnauthorized       = errors.New("invalid admin credentials")
	ErrAdminNotConfigured = errors.New("admin password not configured")

	// Content errors
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrAnswerRequired     = errors.New("answer is required")
	ErrPollAnswerRequired = errors.New("poll answer is required")
	ErrUnknownPollOption  = errors.New("unknown poll option")
	ErrCommentTooLong     = errors.New("comment is too long")
)
