package cache

import (
	"github.com/oxygenfit/salesconsole/internal/config"
	"github.com/oxygenfit/salesconsole/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Info("Initializing cache system")
	return NewInMemoryCache(cfg)
}
