package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/oxygenfit/salesconsole/internal/domain/rule"
)

// InMemoryRuleStore is an in-memory implementation of the rule.Repository
// interface. ListRules mirrors the production contract: active rules only,
// ascending priority, ties by insertion order.
type InMemoryRuleStore struct {
	mu    sync.Mutex
	rules []rule.Rule
}

func NewInMemoryRuleStore() *InMemoryRuleStore {
	return &InMemoryRuleStore{}
}

func (s *InMemoryRuleStore) SetRules(rules []rule.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules
}

func (s *InMemoryRuleStore) ListRules(ctx context.Context) ([]rule.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]rule.Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Priority < active[j].Priority })
	return active, nil
}

func (s *InMemoryRuleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = nil
}
