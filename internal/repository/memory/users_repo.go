package memory

import (
	"sync"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/google/uuid"
)

type usersRepo struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byUsername map[string]string
	order      []string
	newID      func() string
}

func NewUsers() repository.Users {
	return &usersRepo{
		byID:       make(map[string]*models.User),
		byUsername: make(map[string]string),
		newID:      uuid.NewString,
	}
}

func (r *usersRepo) GetOrCreate(username string) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byUsername[username]; ok {
		return r.byID[id].Clone(), false, nil
	}

	id := r.newID()
	for r.byID[id] != nil {
		id = r.newID()
	}
	u := &models.User{ID: id, Username: username, Log: []models.Exercise{}, CreatedAt: time.Now()}
	r.byID[id] = u
	r.byUsername[username] = id
	r.order = append(r.order, id)
	return u.Clone(), true, nil
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u.Clone(), nil
}

func (r *usersRepo) List() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		u := *r.byID[id]
		u.Log = nil
		out = append(out, u)
	}
	return out, nil
}

func (r *usersRepo) AppendExercise(userID string, e models.Exercise) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.Log = append(u.Log, e)
	return u.Clone(), nil
}
