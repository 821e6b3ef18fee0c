package querylog

import (
	"context"
)

// Repository appends query log entries to the backing store
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
}
