package model

import "errors"

var (
	// Auth related errors
	ErrMissingField       = errors.New("missing required field")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Store related errors
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("token not found")
	ErrMalformedID   = errors.New("malformed identifier")
)
