package services

import (
	"errors"

	"github.com/cosmiclearn/learning-service/internal/validator"
)

var (
	ErrValidationFailed      = validator.ErrValidationFailed
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("username already exists")
	ErrCompletionUnavailable = errors.New("completion service is not configured")
)
