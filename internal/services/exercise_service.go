package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/validate"
)

// ExerciseInput is the raw AddExercise request. Date is optional.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// LogQuery is the raw GetLogs request. All fields are optional.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type LogResult struct {
	User models.User
	Log  []models.Exercise
}

type ExerciseService struct {
	r   repo.Users
	now func() time.Time
}

func NewExerciseService(r repo.Users) *ExerciseService {
	return &ExerciseService{r: r, now: time.Now}
}

// WithClock replaces the clock used to date exercises logged without a date.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

// Add appends an exercise to the user's log. Missing fields are reported
// before an unknown user, and an unknown user before malformed values.
func (s *ExerciseService) Add(userID string, in ExerciseInput) (models.User, models.Exercise, error) {
	var errs validate.Errs
	errs.Add(validate.Required("description", in.Description))
	errs.Add(validate.Required("duration", in.Duration))
	if err := errs.Err(); err != nil {
		return models.User{}, models.Exercise{}, err
	}

	if _, err := s.user(userID); err != nil {
		return models.User{}, models.Exercise{}, err
	}

	ex := models.Exercise{Description: in.Description}
	n, ef := validate.Int("duration", in.Duration)
	if ef == nil {
		ef = validate.MinInt("duration", int64(n), 0)
	}
	errs.Add(ef)
	ex.Duration = n
	if strings.TrimSpace(in.Date) != "" {
		d, ef := validate.Date("date", in.Date)
		errs.Add(ef)
		ex.Date = d
	} else {
		ex.Date = models.DateOf(s.now())
	}
	if err := errs.Err(); err != nil {
		return models.User{}, models.Exercise{}, err
	}

	u, err := s.r.AppendExercise(userID, ex)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, models.Exercise{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, models.Exercise{}, err
	}
	metrics.ExercisesLogged.Inc()
	slog.Info("exercise logged", "user_id", u.ID, "duration", ex.Duration, "date", models.FormatDate(ex.Date))
	return u, ex, nil
}

// Logs returns the user's log filtered to [from, to] and cut to limit entries,
// in insertion order. An unknown user is reported before malformed filters.
func (s *ExerciseService) Logs(userID string, q LogQuery) (LogResult, error) {
	u, err := s.user(userID)
	if err != nil {
		return LogResult{}, err
	}

	var (
		errs           validate.Errs
		from, to       time.Time
		hasFrom, hasTo bool
		limit          int
		hasLimit       bool
	)
	if strings.TrimSpace(q.From) != "" {
		var ef *validate.ErrField
		from, ef = validate.Date("from", q.From)
		errs.Add(ef)
		hasFrom = true
	}
	if strings.TrimSpace(q.To) != "" {
		var ef *validate.ErrField
		to, ef = validate.Date("to", q.To)
		errs.Add(ef)
		hasTo = true
	}
	if strings.TrimSpace(q.Limit) != "" {
		n, ef := validate.Int("limit", q.Limit)
		if ef == nil {
			ef = validate.MinInt("limit", int64(n), 0)
		}
		errs.Add(ef)
		limit, hasLimit = n, true
	}
	if err := errs.Err(); err != nil {
		return LogResult{}, err
	}
	metrics.LogQueries.Inc()

	out := make([]models.Exercise, 0, len(u.Log))
	for _, e := range u.Log {
		if hasFrom && e.Date.Before(from) {
			continue
		}
		if hasTo && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	if hasLimit && limit < len(out) {
		out = out[:limit]
	}
	return LogResult{User: u, Log: out}, nil
}

func (s *ExerciseService) user(id string) (models.User, error) {
	u, err := s.r.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}
