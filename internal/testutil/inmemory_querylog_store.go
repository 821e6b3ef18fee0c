package testutil

import (
	"context"
	"sync"

	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
)

// InMemoryQueryLogStore is an in-memory implementation of the
// querylog.Repository interface
type InMemoryQueryLogStore struct {
	mu       sync.Mutex
	entries  []querylog.Entry
	failNext bool
}

func NewInMemoryQueryLogStore() *InMemoryQueryLogStore {
	return &InMemoryQueryLogStore{}
}

func (s *InMemoryQueryLogStore) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

func (s *InMemoryQueryLogStore) Insert(ctx context.Context, entry querylog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return ierr.NewError("query log store unavailable").
			Mark(ierr.ErrDatabase)
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *InMemoryQueryLogStore) Entries() []querylog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]querylog.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *InMemoryQueryLogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.failNext = false
}
