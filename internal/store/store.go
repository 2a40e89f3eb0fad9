// Package store holds the in-memory complaint and user records for the
// lifetime of the process.
package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/civiclink/backend/internal/models"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrUserNotFound      = errors.New("user not found")
)

type Option func(*Store)

// WithClock replaces time.Now as the source of mutation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is safe for concurrent use. Readers get deep copies; writers go
// through Update, which commits all changes and the new updatedAt at once.
type Store struct {
	mu         sync.RWMutex
	complaints []models.Complaint
	index      map[int]int
	users      []models.User

	now           func() time.Time
	lastCommentID atomic.Int64
}

func New(opts ...Option) *Store {
	s := &Store{
		index: make(map[int]int),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded builds a store holding the given seed, keeping its order.
func NewSeeded(seed Seed, opts ...Option) (*Store, error) {
	if err := seed.normalize(); err != nil {
		return nil, err
	}

	s := New(opts...)
	var maxCommentID int64
	for _, c := range seed.Complaints {
		s.index[c.ID] = len(s.complaints)
		s.complaints = append(s.complaints, c.Clone())
		for _, cm := range c.Comments {
			if cm.ID > maxCommentID {
				maxCommentID = cm.ID
			}
		}
	}
	s.users = append([]models.User{}, seed.Users...)
	s.lastCommentID.Store(maxCommentID)
	return s, nil
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.complaints)
}

// Complaints returns every complaint in seed order.
func (s *Store) Complaints() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, len(s.complaints))
	for i, c := range s.complaints {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Complaint(id int) (models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrComplaintNotFound)
	}
	return s.complaints[i].Clone(), nil
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User{}, s.users...)
}

func (s *Store) User(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}

// Update runs fn against a copy of the complaint and commits the copy if fn
// succeeds. at is the timestamp that becomes the complaint's updatedAt.
// The id and createdAt cannot be changed by fn.
func (s *Store) Update(id int, fn func(c *models.Complaint, at time.Time) error) (models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrComplaintNotFound)
	}

	current := s.complaints[i]
	working := current.Clone()
	at := s.stamp(current)
	if err := fn(&working, at); err != nil {
		return models.Complaint{}, err
	}

	working.ID = current.ID
	working.CreatedAt = current.CreatedAt
	working.UpdatedAt = at
	s.complaints[i] = working
	return working.Clone(), nil
}

// stamp returns a mutation time strictly after the complaint's last update.
func (s *Store) stamp(c models.Complaint) time.Time {
	at := s.now()
	if !at.After(c.UpdatedAt) {
		at = c.UpdatedAt.Add(time.Nanosecond)
	}
	return at
}

// NextCommentID returns a unique, strictly increasing comment id derived
// from the current time in milliseconds.
func (s *Store) NextCommentID() int64 {
	for {
		last := s.lastCommentID.Load()
		next := s.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if s.lastCommentID.CompareAndSwap(last, next) {
			return next
		}
	}
}
