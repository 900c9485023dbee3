package packets

import "time"

type TimetableResponse struct {
	RawText   string    `json:"raw_text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveResponse reports what the parser kept. Dropped lines are a designed
// filter, not an error, so the save succeeds regardless.
type SaveResponse struct {
	Courses      int `json:"courses"`
	DroppedLines int `json:"dropped_lines"`
}

type ShareResponse struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
