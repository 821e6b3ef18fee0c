package testutil

import (
	"context"
	"sync"

	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
)

// InMemoryCatalogStore is an in-memory implementation of the
// catalog.Repository interface. Set failNext to simulate a backing-store
// outage on the next call.
type InMemoryCatalogStore struct {
	mu       sync.Mutex
	items    []catalog.Item
	benefits []catalog.Benefit
	failNext bool
}

func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{}
}

func (s *InMemoryCatalogStore) SetItems(items []catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *InMemoryCatalogStore) SetBenefits(benefits []catalog.Benefit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.benefits = benefits
}

func (s *InMemoryCatalogStore) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

func (s *InMemoryCatalogStore) ListItems(ctx context.Context) ([]catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return nil, ierr.NewError("catalog store unavailable").
			Mark(ierr.ErrDatabase)
	}

	items := make([]catalog.Item, len(s.items))
	copy(items, s.items)
	return items, nil
}

func (s *InMemoryCatalogStore) ListBenefits(ctx context.Context) ([]catalog.Benefit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	benefits := make([]catalog.Benefit, len(s.benefits))
	copy(benefits, s.benefits)
	return benefits, nil
}

func (s *InMemoryCatalogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.benefits = nil
	s.failNext = false
}
