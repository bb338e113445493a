package services

import (
	"errors"

	"attendance-registry/internal/models"
	"attendance-registry/internal/repository"
)

// memUsers: in-memory замена репозитория пользователей.
type memUsers struct {
	users   []models.User
	failErr error
}

func (m *memUsers) Count() (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return int64(len(m.users)), nil
}

func (m *memUsers) Create(u *models.User) error {
	if m.failErr != nil {
		return m.failErr
	}
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	u.ID = uint(len(m.users) + 1)
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) FindByUsername(username string) (*models.User, bool, error) {
	if m.failErr != nil {
		return nil, false, m.failErr
	}
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (m *memUsers) List() ([]models.User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	out := make([]models.User, len(m.users))
	for i, u := range m.users {
		out[i] = models.User{ID: u.ID, Username: u.Username}
	}
	return out, nil
}

// memRecords: in-memory замена репозитория записей.
type memRecords struct {
	records []models.Record
	failErr error
}

func (m *memRecords) Create(r *models.Record) error {
	if m.failErr != nil {
		return m.failErr
	}
	r.ID = uint(len(m.records) + 1)
	m.records = append(m.records, *r)
	return nil
}

func (m *memRecords) List() ([]models.Record, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return append([]models.Record(nil), m.records...), nil
}

func (m *memRecords) Get(id uint) (*models.Record, bool, error) {
	if m.failErr != nil {
		return nil, false, m.failErr
	}
	for _, r := range m.records {
		if r.ID == id {
			r := r
			return &r, true, nil
		}
	}
	return nil, false, nil
}

func (m *memRecords) Update(r *models.Record) error {
	if m.failErr != nil {
		return m.failErr
	}
	for i := range m.records {
		if m.records[i].ID == r.ID {
			m.records[i] = *r
			return nil
		}
	}
	return repository.ErrNotFound
}

var errStore = errors.New("disk I/O error")
