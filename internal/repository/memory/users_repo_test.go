package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepo_GetOrCreate_IsIdempotentByUsername(t *testing.T) {
	r := NewUsers()

	a, created, err := r.GetOrCreate("ann")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, a.ID)

	again, created, err := r.GetOrCreate("ann")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, a.ID, again.ID)

	b, _, err := r.GetOrCreate("bob")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	users, err := r.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ann", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUsersRepo_RegeneratesCollidingIDs(t *testing.T) {
	ids := []string{"same", "same", "other"}
	r := &usersRepo{
		byID:       map[string]*models.User{},
		byUsername: map[string]string{},
		newID: func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		},
	}

	a, _, err := r.GetOrCreate("ann")
	require.NoError(t, err)
	b, _, err := r.GetOrCreate("bob")
	require.NoError(t, err)

	assert.Equal(t, "same", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestUsersRepo_AppendExercise(t *testing.T) {
	r := NewUsers()
	u, _, err := r.GetOrCreate("ann")
	require.NoError(t, err)

	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = r.AppendExercise(u.ID, models.Exercise{Description: "run", Duration: 30, Date: d})
	require.NoError(t, err)
	got, err := r.AppendExercise(u.ID, models.Exercise{Description: "swim", Duration: 20, Date: d})
	require.NoError(t, err)

	require.Len(t, got.Log, 2)
	assert.Equal(t, "run", got.Log[0].Description)
	assert.Equal(t, "swim", got.Log[1].Description)

	_, err = r.AppendExercise("missing", models.Exercise{Description: "run", Duration: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersRepo_ReturnsCopies(t *testing.T) {
	r := NewUsers()
	u, _, _ := r.GetOrCreate("ann")
	_, err := r.AppendExercise(u.ID, models.Exercise{Description: "run", Duration: 30})
	require.NoError(t, err)

	got, err := r.GetByID(u.ID)
	require.NoError(t, err)
	got.Log[0].Description = "changed"
	got.Log = append(got.Log, models.Exercise{Description: "extra"})

	again, err := r.GetByID(u.ID)
	require.NoError(t, err)
	require.Len(t, again.Log, 1)
	assert.Equal(t, "run", again.Log[0].Description)
}

func TestUsersRepo_GetByID_NotFound(t *testing.T) {
	_, err := NewUsers().GetByID("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersRepo_ConcurrentCreatesKeepUsernamesUnique(t *testing.T) {
	r := NewUsers()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, _, err := r.GetOrCreate(fmt.Sprintf("user-%d", i%5))
			if err == nil {
				_, _ = r.AppendExercise(u.ID, models.Exercise{Description: "x", Duration: 1})
			}
		}(i)
	}
	wg.Wait()

	users, err := r.List()
	require.NoError(t, err)
	assert.Len(t, users, 5)

	total := 0
	for _, u := range users {
		full, err := r.GetByID(u.ID)
		require.NoError(t, err)
		total += len(full.Log)
	}
	assert.Equal(t, 50, total)
}
