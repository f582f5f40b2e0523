package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends ef when it is non-nil.
func (e *Errs) Add(ef *ErrField) {
	if ef != nil {
		*e = append(*e, *ef)
	}
}

// Err returns nil for an empty list so callers can `return errs.Err()`.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

// Int parses value as a base-10 integer.
func Int(field, value string) (int, *ErrField) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ErrField{Field: field, Msg: "must be an integer"}
	}
	return n, nil
}

// Date parses value as a calendar date (yyyy-mm-dd).
func Date(field, value string) (time.Time, *ErrField) {
	d, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}, &ErrField{Field: field, Msg: "invalid date, want yyyy-mm-dd"}
	}
	return d, nil
}
