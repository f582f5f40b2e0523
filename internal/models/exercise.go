package models

import (
	"errors"
	"strings"
	"time"
)

// DateLayout renders a calendar date the way the API returns it, e.g. "Mon Jan 02 2006".
const DateLayout = "Mon Jan 02 2006"

const isoDate = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

type Exercise struct {
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"-"`
}

// ParseDate accepts yyyy-mm-dd or an RFC3339 timestamp and keeps only the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

// DateOf returns midnight UTC of t's calendar day in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }
