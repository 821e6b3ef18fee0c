package repository

import (
	supa "github.com/nedpals/supabase-go"

	"github.com/oxygenfit/salesconsole/internal/config"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/repository/local"
	"github.com/oxygenfit/salesconsole/internal/repository/supabase"
)

// Repositories bundles the data-access surface of the backing store
type Repositories struct {
	Catalog  catalog.Repository
	Rule     rule.Repository
	QueryLog querylog.Repository
}

// New wires the repositories against the configured Supabase project, or
// against the built-in local catalog when none is configured.
func New(cfg *config.Configuration, log *logger.Logger) Repositories {
	if cfg.Supabase.Configured() {
		client := supa.CreateClient(cfg.Supabase.BaseURL, cfg.Supabase.AnonKey)
		return Repositories{
			Catalog:  supabase.NewCatalogRepository(client, log),
			Rule:     supabase.NewRuleRepository(client, log),
			QueryLog: supabase.NewQueryLogRepository(client, log),
		}
	}

	log.Infow("supabase not configured, serving the built-in catalog")
	return Repositories{
		Catalog:  local.NewCatalogRepository(),
		Rule:     local.NewRuleRepository(),
		QueryLog: local.NewQueryLogRepository(log),
	}
}
