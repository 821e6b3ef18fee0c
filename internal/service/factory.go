package service

import (
	"context"
	"time"

	"github.com/oxygenfit/salesconsole/internal/auth"
	"github.com/oxygenfit/salesconsole/internal/cache"
	"github.com/oxygenfit/salesconsole/internal/config"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	CatalogRepo  catalog.Repository
	RuleRepo     rule.Repository
	QueryLogRepo querylog.Repository

	// Auth
	AuthProvider auth.Provider
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	catalogRepo catalog.Repository,
	ruleRepo rule.Repository,
	queryLogRepo querylog.Repository,
	authProvider auth.Provider,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Cache:        cache,
		CatalogRepo:  catalogRepo,
		RuleRepo:     ruleRepo,
		QueryLogRepo: queryLogRepo,
		AuthProvider: authProvider,
	}
}

const queryLogTimeout = 5 * time.Second

// logQueryAsync writes an audit entry fire-and-forget. Failures are
// swallowed: logging never affects the calling path.
func logQueryAsync(ctx context.Context, params ServiceParams, entry querylog.Entry) {
	entry.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUERY_LOG)
	entry.UserID = types.GetUserID(ctx)

	go func() {
		logCtx, cancel := context.WithTimeout(context.Background(), queryLogTimeout)
		defer cancel()
		if err := params.QueryLogRepo.Insert(logCtx, entry); err != nil {
			params.Logger.Debugw("query log insert failed", "error", err, "intent", entry.Intent)
		}
	}()
}
