package catalog

import (
	"context"
)

// Repository reads the externally owned catalog tables. Implementations
// return active records only, in a stable sort order.
type Repository interface {
	ListItems(ctx context.Context) ([]Item, error)
	ListBenefits(ctx context.Context) ([]Benefit, error)
}
