package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/oxygenfit/salesconsole/internal/api"
	v1 "github.com/oxygenfit/salesconsole/internal/api/v1"
	"github.com/oxygenfit/salesconsole/internal/auth"
	"github.com/oxygenfit/salesconsole/internal/cache"
	"github.com/oxygenfit/salesconsole/internal/config"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/repository"
	"github.com/oxygenfit/salesconsole/internal/service"
	"github.com/oxygenfit/salesconsole/internal/types"
	"github.com/oxygenfit/salesconsole/internal/validator"
)

// @title OxygenFit Sales Console API
// @version 1.0
// @description Internal pricing and quotation service for the sales floor
// @BasePath /v1

func init() {
	// UTC everywhere, quote dates included
	time.Local = time.UTC
}

func main() {
	// .env is optional, real deployments use the environment directly
	_ = godotenv.Load()

	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			cache.Initialize,
			auth.NewProvider,
			repository.New,
			provideCatalogRepository,
			provideRuleRepository,
			provideQueryLogRepository,
		),
	)

	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewAuthService,
			service.NewCatalogService,
			service.NewRecommendationService,
			service.NewQAService,
			service.NewQuoteService,
			service.NewReportService,
		),
	)

	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideCatalogRepository(repos repository.Repositories) catalog.Repository {
	return repos.Catalog
}

func provideRuleRepository(repos repository.Repositories) rule.Repository {
	return repos.Rule
}

func provideQueryLogRepository(repos repository.Repositories) querylog.Repository {
	return repos.QueryLog
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	catalogService service.CatalogService,
	recommendationService service.RecommendationService,
	qaService service.QAService,
	quoteService service.QuoteService,
	reportService service.ReportService,
) api.Handlers {
	return api.Handlers{
		Health:         v1.NewHealthHandler(),
		Auth:           v1.NewAuthHandler(authService, logger),
		Pricing:        v1.NewPricingHandler(catalogService, logger),
		Recommendation: v1.NewRecommendationHandler(recommendationService, logger),
		Quote:          v1.NewQuoteHandler(quoteService, reportService, logger),
		QA:             v1.NewQAHandler(qaService, logger),
	}
}

func provideRouter(handlers api.Handlers, provider auth.Provider, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, provider, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
