package model

import "time"

// Timetable is the persisted raw schedule text of one user. The server never
// re-interprets stored text on its own; it is handed back to the client as
// the initial editor contents and re-parsed on every save.
type Timetable struct {
	UserID    int       `db:"user_id" json:"user_id"`
	RawText   string    `db:"raw_text" json:"raw_text"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TimetableShare grants read-only access to a user's rendered week view via
// an opaque token.
type TimetableShare struct {
	Token     string    `db:"token" json:"token"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
