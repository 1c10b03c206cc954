package impl

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shaka/config"
	"shaka/internal/infra/persistence/rdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.URL = "sqlite:" + filepath.Join(t.TempDir(), "shaka.db")

	db, err := rdb.Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, rdb.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestFixtureService_SeedPipeline(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	fixtures := NewFixtureService(rdb.NewTransactionManager(db), newDiscardLogger())
	spots := NewSurfSpotService(
		rdb.NewSurfSpotRepository(db),
		rdb.NewPhotoRepository(db),
		rdb.NewSurfBreakTypeRepository(db),
		rdb.NewInfluencerRepository(db),
		newDiscardLogger(),
	)

	id, err := fixtures.SeedPipeline(ctx)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := spots.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Pipeline", got.Destination)
	assert.Equal(t, "Ehukai Beach Park, Pupukea, HI", got.Address)
	require.NotNil(t, got.DifficultyLevel)
	assert.Equal(t, 5, *got.DifficultyLevel)
	require.NotNil(t, got.PeakSeasonBegin)
	assert.Equal(t, "2025-11-01", got.PeakSeasonBegin.Format(time.DateOnly))
	assert.ElementsMatch(t, []string{"https://example.com/pipeline-1.jpg", "https://example.com/pipeline-2.jpg"}, got.PhotoURLs)
	assert.ElementsMatch(t, []string{"Point Break", "Reef Break"}, got.BreakTypes)
	assert.ElementsMatch(t, []string{"Gerry Lopez"}, got.Influencers)

	first, err := spots.FindAll(ctx)
	require.NoError(t, err)
	second, err := spots.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].SurfSpot, second[0].SurfSpot)
	assert.ElementsMatch(t, first[0].PhotoURLs, second[0].PhotoURLs)
	assert.ElementsMatch(t, first[0].BreakTypes, second[0].BreakTypes)
	assert.ElementsMatch(t, first[0].Influencers, second[0].Influencers)
}

func TestFixtureService_SeedPipelineTwiceResets(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	fixtures := NewFixtureService(rdb.NewTransactionManager(db), newDiscardLogger())

	_, err := fixtures.SeedPipeline(ctx)
	require.NoError(t, err)
	_, err = fixtures.SeedPipeline(ctx)
	require.NoError(t, err)

	all, err := rdb.NewSurfSpotRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
