// Package local backs the console with the built-in catalog when no
// Supabase project is configured. Rules and benefits are empty, query
// logs go to the debug log only. The console stays fully interactive.
package local

import (
	"context"

	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/logger"
)

type catalogRepository struct{}

func NewCatalogRepository() catalog.Repository {
	return catalogRepository{}
}

func (catalogRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	return catalog.DefaultItems(), nil
}

func (catalogRepository) ListBenefits(ctx context.Context) ([]catalog.Benefit, error) {
	return nil, nil
}

type ruleRepository struct{}

func NewRuleRepository() rule.Repository {
	return ruleRepository{}
}

func (ruleRepository) ListRules(ctx context.Context) ([]rule.Rule, error) {
	return nil, nil
}

type queryLogRepository struct {
	log *logger.Logger
}

func NewQueryLogRepository(log *logger.Logger) querylog.Repository {
	return &queryLogRepository{log: log}
}

func (r *queryLogRepository) Insert(ctx context.Context, entry querylog.Entry) error {
	r.log.Debugw("query log (local mode)",
		"user_id", entry.UserID,
		"intent", entry.Intent,
		"query_text", entry.QueryText,
	)
	return nil
}
