package services

import (
	"fmt"

	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

// ErrUserNotFound is returned when an operation references an unknown user id.
var ErrUserNotFound = fmt.Errorf("user %w", repo.ErrNotFound)
