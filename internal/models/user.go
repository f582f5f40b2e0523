package models

import "time"

type User struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Log       []Exercise `json:"-"`
	CreatedAt time.Time  `json:"-"`
}

// Clone copies the user so callers can't reach the stored log.
func (u User) Clone() User {
	if u.Log != nil {
		u.Log = append([]Exercise(nil), u.Log...)
	}
	return u
}
