package supabase

import (
	"context"

	supa "github.com/nedpals/supabase-go"

	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
)

type queryLogRepository struct {
	client *supa.Client
	log    *logger.Logger
}

func NewQueryLogRepository(client *supa.Client, log *logger.Logger) querylog.Repository {
	return &queryLogRepository{client: client, log: log}
}

type queryLogRow struct {
	UserID     string         `json:"user_id"`
	QueryText  string         `json:"query_text"`
	Intent     string         `json:"intent"`
	InputJSON  map[string]any `json:"input_json"`
	OutputJSON map[string]any `json:"output_json"`
}

func (r *queryLogRepository) Insert(ctx context.Context, entry querylog.Entry) error {
	row := queryLogRow{
		UserID:     entry.UserID,
		QueryText:  entry.QueryText,
		Intent:     entry.Intent,
		InputJSON:  entry.Input,
		OutputJSON: entry.Output,
	}

	var inserted []map[string]any
	err := r.client.DB.From("pricing_query_logs").
		Insert(row).
		ExecuteWithContext(ctx, &inserted)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to write query log").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
