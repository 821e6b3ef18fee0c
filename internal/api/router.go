package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/oxygenfit/salesconsole/internal/api/v1"
	"github.com/oxygenfit/salesconsole/internal/auth"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/rest/middleware"
)

type Handlers struct {
	Health         *v1.HealthHandler
	Auth           *v1.AuthHandler
	Pricing        *v1.PricingHandler
	Recommendation *v1.RecommendationHandler
	Quote          *v1.QuoteHandler
	QA             *v1.QAHandler
}

func NewRouter(handlers Handlers, provider auth.Provider, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, provider, logger)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, provider auth.Provider, logger *logger.Logger) {
	router.POST("/auth/login", handlers.Auth.Login)

	guarded := router.Group("")
	guarded.Use(middleware.AuthenticateMiddleware(provider, logger))

	authGroup := guarded.Group("/auth")
	{
		authGroup.GET("/me", handlers.Auth.Me)
		authGroup.POST("/logout", handlers.Auth.Logout)
	}

	pricing := guarded.Group("/pricing")
	{
		pricing.GET("/sections", handlers.Pricing.GetSections)
		pricing.POST("/refresh", handlers.Pricing.Refresh)
	}

	recommendations := guarded.Group("/recommendations")
	{
		recommendations.POST("/recharge", handlers.Recommendation.Recharge)
		recommendations.POST("/sessions", handlers.Recommendation.Sessions)
	}

	quotes := guarded.Group("/quotes")
	{
		quotes.POST("", handlers.Quote.Create)
		quotes.GET("/:id", handlers.Quote.Get)
		quotes.POST("/:id/preset", handlers.Quote.ApplyPreset)
		quotes.POST("/:id/lines", handlers.Quote.SetLine)
		quotes.POST("/:id/credit", handlers.Quote.SetCredit)
		quotes.POST("/:id/restore", handlers.Quote.RestoreBasePrices)
		quotes.POST("/:id/clear", handlers.Quote.ClearQuantities)
		quotes.GET("/:id/summary", handlers.Quote.Summary)
		quotes.GET("/:id/printable", handlers.Quote.Printable)
	}

	guarded.POST("/qa", handlers.QA.Ask)
}
