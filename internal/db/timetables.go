package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/iceghosttth/bkalendar/internal/model"
)

// SaveTimetable upserts the user's raw schedule text. The text is stored
// verbatim; parsing happens in memory on every save, never against the
// stored copy.
func (s *pgStore) SaveTimetable(userID int, rawText string) error {
	const q = `
	INSERT INTO timetables (user_id, raw_text, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (user_id)
	DO UPDATE SET raw_text = EXCLUDED.raw_text, updated_at = now();`
	if _, err := s.db.Exec(q, userID, rawText); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("SaveTimetable failed")
		return err
	}
	return nil
}

// GetTimetable returns the saved timetable, or nil when the user has never
// saved one.
func (s *pgStore) GetTimetable(userID int) (*model.Timetable, error) {
	var t model.Timetable
	const q = `
	SELECT user_id, raw_text, updated_at
	  FROM timetables
	 WHERE user_id = $1;`
	if err := s.db.Get(&t, q, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error().Err(err).Int("user_id", userID).Msg("GetTimetable failed")
		return nil, err
	}
	return &t, nil
}

func (s *pgStore) DeleteTimetable(userID int) error {
	if _, err := s.db.Exec(`DELETE FROM timetables WHERE user_id = $1;`, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("DeleteTimetable failed")
		return err
	}
	return nil
}
