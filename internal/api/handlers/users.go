package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/middleware"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/services"
	"github.com/baharkarakas/exercise-tracker/internal/validate"
)

type UsersHandler struct {
	Users     *services.UserService
	Exercises *services.ExerciseService
}

func NewUsersHandler(us *services.UserService, es *services.ExerciseService) *UsersHandler {
	return &UsersHandler{Users: us, Exercises: es}
}

type userResp struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type exerciseResp struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logsResp struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []logEntry `json:"log"`
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, err := httpx.ReadFields(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	u, err := h.Users.Create(f.Get("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResp{Username: u.Username, ID: u.ID})
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, userResp{Username: u.Username, ID: u.ID})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UsersHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	f, err := httpx.ReadFields(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	u, ex, err := h.Exercises.Add(chi.URLParam(r, "id"), services.ExerciseInput{
		Description: f.Get("description"),
		Duration:    f.Get("duration"),
		Date:        f.Get("date"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exerciseResp{
		ID:          u.ID,
		Username:    u.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        models.FormatDate(ex.Date),
	})
}

func (h *UsersHandler) Logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Exercises.Logs(chi.URLParam(r, "id"), services.LogQuery{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Limit: q.Get("limit"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	entries := make([]logEntry, 0, len(res.Log))
	for _, e := range res.Log {
		entries = append(entries, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        models.FormatDate(e.Date),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, logsResp{
		ID:       res.User.ID,
		Username: res.User.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, verrs.Error(), verrs)
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user not found", nil)
	default:
		slog.Error("request failed", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "internal error", nil)
	}
}
