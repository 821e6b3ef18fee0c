package rule

import (
	"context"
)

// Repository reads pricing rules from the backing store. Implementations
// return active rules only, sorted by ascending priority; rules with equal
// priority keep their fetch order.
type Repository interface {
	ListRules(ctx context.Context) ([]Rule, error)
}
