package main

import (
	"context"
	"log/slog"
	"os"

	"shaka/config"
	"shaka/internal/delivery"
	"shaka/internal/delivery/api"
	apimiddleware "shaka/internal/delivery/api/middleware"
	"shaka/internal/delivery/api/router/handler"
	logs "shaka/internal/infra/log"
	"shaka/internal/infra/metrics"
	"shaka/internal/infra/persistence/rdb"
	"shaka/internal/infra/ratelimit"
	"shaka/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rdb.New,
		metrics.New,
		ratelimit.NewCounter,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rdb.NewSurfSpotRepository,
			rdb.NewPhotoRepository,
			rdb.NewSurfBreakTypeRepository,
			rdb.NewInfluencerRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSurfSpotService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSurfSpotHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
