package usecase

import (
	"errors"

	"cinema-users/internal/data/repository"
)

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrPasswordMismatch = errors.New("password doesn't match")
	ErrInvalidID        = repository.ErrInvalidID
)
