// Command seed resets the catalog tables and inserts the end-to-end fixture.
// It refuses to run unless NODE_ENV=test.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shaka/config"
	logs "shaka/internal/infra/log"
	"shaka/internal/infra/persistence/rdb"
	"shaka/internal/usecase/impl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Env.Env != config.EnvTest {
		return fmt.Errorf("refusing to seed with NODE_ENV=%q, set NODE_ENV=test", cfg.Env.Env)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := rdb.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := rdb.Migrate(ctx, db); err != nil {
		return err
	}

	id, err := impl.NewFixtureService(rdb.NewTransactionManager(db), logger).SeedPipeline(ctx)
	if err != nil {
		return err
	}

	logger.Info("Seed complete", slog.Int64("surf_spot_id", id))

	return nil
}
