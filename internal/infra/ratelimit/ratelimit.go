// Package ratelimit provides the request counters behind the HTTP rate limiter.
package ratelimit

import (
	"context"
	"log/slog"

	"shaka/config"
	"shaka/internal/domain/lifecycle"
	"shaka/internal/errors"

	"github.com/go-chi/httprate"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the counter store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCounter picks the counter store configured by RATE_LIMIT_STORE.
func NewCounter(params Params) (httprate.LimitCounter, error) {
	cfg := params.Config.RateLimit

	if cfg.Store != config.RateLimitStoreRedis {
		params.Logger.Info("Rate limiter uses in-process counters")

		return httprate.NewLocalLimitCounter(cfg.Window), nil
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse REDIS_URL")
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Rate limiter uses redis counters", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCounter(client), nil
}
