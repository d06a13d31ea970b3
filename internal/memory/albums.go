package memory

import (
	"context"
	"sync"
	"time"

	cl "record-shop/pkg/catelog"

	"github.com/twitsprout/tools/clock"
)

// Store keeps albums in process memory. It is safe for concurrent use.
type Store struct {
	clock clock.Clock

	mu     sync.RWMutex
	lastID int64
	ids    []int64
	m      map[int64]cl.Album
}

// New returns an empty Store. A nil clock uses the system time.
func New(c clock.Clock) *Store {
	if c == nil {
		c = &clock.Default{}
	}
	return &Store{
		clock: c,
		m:     make(map[int64]cl.Album),
	}
}

func (s *Store) FindAll(_ context.Context) ([]cl.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	albums := make([]cl.Album, 0, len(s.ids))
	for _, id := range s.ids {
		albums = append(albums, s.m[id])
	}
	return albums, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (cl.Album, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.m[id]
	return a, ok, nil
}

func (s *Store) Save(_ context.Context, a cl.Album) (cl.Album, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == 0 {
		s.lastID++
		a.ID = s.lastID
		a.CreatedAt = now
		a.UpdatedAt = now
		s.ids = append(s.ids, a.ID)
		s.m[a.ID] = a
		return a, nil
	}

	prev, ok := s.m[a.ID]
	if !ok {
		return cl.Album{}, &cl.NotFoundError{ID: a.ID}
	}
	a.CreatedAt = prev.CreatedAt
	a.UpdatedAt = now
	s.m[a.ID] = a
	return a, nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return nil
	}
	delete(s.m, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

var _ cl.Repository = (*Store)(nil)
