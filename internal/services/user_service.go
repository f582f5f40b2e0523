package services

import (
	"log/slog"

	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/validate"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

// Create returns the user named username, creating it if needed.
func (s *UserService) Create(username string) (models.User, error) {
	var errs validate.Errs
	errs.Add(validate.Required("username", username))
	if err := errs.Err(); err != nil {
		return models.User{}, err
	}

	u, created, err := s.r.GetOrCreate(username)
	if err != nil {
		return models.User{}, err
	}
	if created {
		metrics.UsersCreated.Inc()
		slog.Info("user created", "user_id", u.ID, "username", u.Username)
	}
	return u, nil
}

func (s *UserService) List() ([]models.User, error) { return s.r.List() }
