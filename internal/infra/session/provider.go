package session

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerMemory = "memory"
	providerRedis  = "redis"

	defaultTTL = 24 * time.Hour
)

// CartStoreParams holds dependencies for CartStore, injected by Fx
type CartStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCartStore creates a CartStore based on configuration
func NewCartStore(params CartStoreParams) (service.CartStore, error) {
	cfg := params.Config.Session
	logger := params.Logger

	ttl := defaultTTL
	provider := providerMemory
	if cfg != nil {
		if cfg.TTL > 0 {
			ttl = cfg.TTL
		}
		if cfg.Provider != "" {
			provider = cfg.Provider
		}
	}

	var store service.CartStore
	var err error

	switch provider {
	case providerMemory:
		logger.Info("Using in-memory session store")

		store = NewMemoryStore(ttl)

	case providerRedis:
		if params.Config.Redis == nil {
			return nil, errors.New("redis config is required for redis session provider")
		}
		logger.Info("Using Redis session store",
			slog.String("host", params.Config.Redis.Host),
			slog.Int("port", params.Config.Redis.Port),
		)

		store, err = NewRedisStore(params.Ctx, params.Config.Redis, ttl)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown session provider: %s", provider)
	}

	// Register lifecycle hook to close store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing CartStore")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartStore),
)
