package usecase

import "context"

// FixtureUsecase loads the deterministic dataset used by end-to-end tests.
type FixtureUsecase interface {
	// SeedPipeline clears the catalog and inserts the Pipeline fixture,
	// returning the new surf spot id.
	SeedPipeline(ctx context.Context) (int64, error)
}
