package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/iceghosttth/bkalendar/internal/model"
)

// Store is the persistence surface handed to the API modules: accounts, the
// saved raw timetable text per user, and share tokens.
type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// timetable functions
	SaveTimetable(userID int, rawText string) error
	GetTimetable(userID int) (*model.Timetable, error)
	DeleteTimetable(userID int) error

	// share functions
	CreateShare(userID int) (model.TimetableShare, error)
	GetShareByToken(token string) (*model.TimetableShare, error)
	ListShares(userID int) ([]model.TimetableShare, error)
	DeleteShare(userID int, token string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	return &pgStore{db: database}
}
