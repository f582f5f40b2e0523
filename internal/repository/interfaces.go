package repository

import (
	"errors"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

var ErrNotFound = errors.New("not found")

// Users is the user store. Returned users are copies; mutating them does not
// touch stored state.
type Users interface {
	// GetOrCreate returns the user with that username, creating it with a
	// fresh id if none exists. created reports which happened.
	GetOrCreate(username string) (u models.User, created bool, err error)
	GetByID(id string) (models.User, error)
	List() ([]models.User, error)
	AppendExercise(userID string, e models.Exercise) (models.User, error)
}
