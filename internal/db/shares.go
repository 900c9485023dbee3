package db

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/iceghosttth/bkalendar/internal/model"
)

func (s *pgStore) CreateShare(userID int) (model.TimetableShare, error) {
	var sh model.TimetableShare
	const q = `
	INSERT INTO timetable_shares (token, user_id, created_at)
	VALUES ($1, $2, now())
	RETURNING token, user_id, created_at;`
	if err := s.db.Get(&sh, q, uuid.NewString(), userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("CreateShare failed")
		return model.TimetableShare{}, err
	}
	return sh, nil
}

func (s *pgStore) GetShareByToken(token string) (*model.TimetableShare, error) {
	var sh model.TimetableShare
	const q = `
	SELECT token, user_id, created_at
	  FROM timetable_shares
	 WHERE token = $1;`
	if err := s.db.Get(&sh, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error().Err(err).Msg("GetShareByToken failed")
		return nil, err
	}
	return &sh, nil
}

func (s *pgStore) ListShares(userID int) ([]model.TimetableShare, error) {
	var out []model.TimetableShare
	const q = `
	SELECT token, user_id, created_at
	  FROM timetable_shares
	 WHERE user_id = $1
	 ORDER BY created_at;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("ListShares failed")
		return nil, err
	}
	return out, nil
}

// DeleteShare removes a token, constrained to its owner so one user cannot
// revoke another's link.
func (s *pgStore) DeleteShare(userID int, token string) error {
	const q = `DELETE FROM timetable_shares WHERE token = $1 AND user_id = $2;`
	if _, err := s.db.Exec(q, token, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("DeleteShare failed")
		return err
	}
	return nil
}
