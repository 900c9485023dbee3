package db

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iceghosttth/bkalendar/internal/model"
)

// memStore is an in-memory Store used by handler tests, replacing the live
// test database the deployment uses.
type memStore struct {
	mu         sync.Mutex
	nextUserID int
	users      map[int]*model.User
	timetables map[int]*model.Timetable
	shares     map[string]*model.TimetableShare
}

var _ Store = (*memStore)(nil)

var errNotFound = errors.New("not found")

func NewMemStore() Store {
	return &memStore{
		nextUserID: 1,
		users:      make(map[int]*model.User),
		timetables: make(map[int]*model.Timetable),
		shares:     make(map[string]*model.TimetableShare),
	}
}

func (m *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return 0, errors.New("email already registered")
		}
	}
	id := m.nextUserID
	m.nextUserID++
	now := time.Now()
	m.users[id] = &model.User{
		ID: id, Email: email, HashedPassword: hashedPassword, Name: name,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *memStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (m *memStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) UpdateUserProfile(id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return errNotFound
	}
	u.Email = email
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

func (m *memStore) SaveTimetable(userID int, rawText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timetables[userID] = &model.Timetable{
		UserID: userID, RawText: rawText, UpdatedAt: time.Now(),
	}
	return nil
}

func (m *memStore) GetTimetable(userID int) (*model.Timetable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.timetables[userID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (m *memStore) DeleteTimetable(userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.timetables, userID)
	return nil
}

func (m *memStore) CreateShare(userID int) (model.TimetableShare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh := model.TimetableShare{Token: uuid.NewString(), UserID: userID, CreatedAt: time.Now()}
	m.shares[sh.Token] = &sh
	return sh, nil
}

func (m *memStore) GetShareByToken(token string) (*model.TimetableShare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sh, ok := m.shares[token]
	if !ok {
		return nil, nil
	}
	copied := *sh
	return &copied, nil
}

func (m *memStore) ListShares(userID int) ([]model.TimetableShare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.TimetableShare
	for _, sh := range m.shares {
		if sh.UserID == userID {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (m *memStore) DeleteShare(userID int, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sh, ok := m.shares[token]; ok && sh.UserID == userID {
		delete(m.shares, token)
	}
	return nil
}
