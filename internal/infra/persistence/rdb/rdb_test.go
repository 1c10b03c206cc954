package rdb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"shaka/config"
	"shaka/internal/domain/entity"
	"shaka/internal/domain/repository"
	"shaka/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.URL = "sqlite:" + filepath.Join(t.TempDir(), "shaka.db")

	db, err := Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func ptr[T any](v T) *T {
	return &v
}

func date(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &v
}

func newPipeline() *entity.SurfSpot {
	return &entity.SurfSpot{
		Destination:      "Pipeline",
		Address:          "Ehukai Beach Park, Pupukea, HI",
		StateCountry:     ptr("Hawaii, USA"),
		DifficultyLevel:  ptr(5),
		PeakSeasonBegin:  date(2025, time.November, 1),
		PeakSeasonEnd:    date(2026, time.February, 28),
		MagicSeaweedLink: ptr("https://magicseaweed.com/Oahu-North-Shore-Surf-Report/3841/"),
		CreatedTime:      ptr(time.Date(2025, time.September, 7, 12, 0, 0, 0, time.UTC)),
		GeocodeRaw:       ptr(`{"lat":21.665,"lng":-158.051}`),
	}
}

func TestSurfSpotRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurfSpotRepository(db)
	ctx := context.Background()

	spot := newPipeline()
	require.NoError(t, repo.Create(ctx, spot))
	require.NotZero(t, spot.ID)

	found, err := repo.FindByID(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, spot.Destination, found.Destination)
	assert.Equal(t, spot.Address, found.Address)
	assert.Equal(t, *spot.StateCountry, *found.StateCountry)
	assert.Equal(t, 5, *found.DifficultyLevel)
	assert.True(t, spot.PeakSeasonBegin.Equal(*found.PeakSeasonBegin))
	assert.True(t, spot.PeakSeasonEnd.Equal(*found.PeakSeasonEnd))
	assert.True(t, spot.CreatedTime.Equal(*found.CreatedTime))
	assert.Equal(t, *spot.GeocodeRaw, *found.GeocodeRaw)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, spot.ID, all[0].ID)
}

func TestSurfSpotRepository_CreateKeepsNulls(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurfSpotRepository(db)
	ctx := context.Background()

	spot := &entity.SurfSpot{Destination: "J-Bay", Address: "Jeffreys Bay, Eastern Cape"}
	require.NoError(t, repo.Create(ctx, spot))

	found, err := repo.FindByID(ctx, spot.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DifficultyLevel)
	assert.Nil(t, found.PeakSeasonBegin)
	assert.Nil(t, found.StateCountry)
	assert.Nil(t, found.MagicSeaweedLink)
}

func TestSurfSpotRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurfSpotRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPipeline()))

	err := repo.Create(ctx, newPipeline())
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSurfSpotDuplicate))
}

func TestSurfSpotRepository_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurfSpotRepository(db)

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrSurfSpotNotFound)
}

func TestSurfSpotRepository_FindAllEmpty(t *testing.T) {
	db := newTestDB(t)

	spots, err := NewSurfSpotRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, spots)
}

func TestEnrichmentRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	spots := NewSurfSpotRepository(db)
	catalog := NewCatalogRepository(db)

	pipeline := newPipeline()
	require.NoError(t, spots.Create(ctx, pipeline))
	jbay := &entity.SurfSpot{Destination: "J-Bay", Address: "Jeffreys Bay, Eastern Cape"}
	require.NoError(t, spots.Create(ctx, jbay))

	require.NoError(t, catalog.CreatePhotos(ctx, []*entity.Photo{
		{SurfSpotID: pipeline.ID, URL: "https://example.com/pipeline-1.jpg"},
		{SurfSpotID: pipeline.ID, URL: "https://example.com/pipeline-2.jpg"},
		{SurfSpotID: jbay.ID, URL: "https://example.com/jbay.jpg"},
	}))

	breakTypes, err := catalog.UpsertBreakTypes(ctx, []string{"Point Break", "Reef Break"})
	require.NoError(t, err)
	require.Len(t, breakTypes, 2)
	ids := make([]int64, 0, len(breakTypes))
	for _, bt := range breakTypes {
		ids = append(ids, bt.ID)
	}
	require.NoError(t, catalog.LinkBreakTypes(ctx, pipeline.ID, ids))

	lopez := &entity.Influencer{Name: "Gerry Lopez"}
	require.NoError(t, catalog.CreateInfluencer(ctx, lopez))
	require.NoError(t, catalog.LinkInfluencers(ctx, pipeline.ID, []int64{lopez.ID}))

	photos, err := NewPhotoRepository(db).FindBySurfSpotIDs(ctx, []int64{pipeline.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.SpotValue{
		{SurfSpotID: pipeline.ID, Value: "https://example.com/pipeline-1.jpg"},
		{SurfSpotID: pipeline.ID, Value: "https://example.com/pipeline-2.jpg"},
	}, photos)

	allPhotos, err := NewPhotoRepository(db).FindBySurfSpotIDs(ctx, []int64{pipeline.ID, jbay.ID})
	require.NoError(t, err)
	assert.Len(t, allPhotos, 3)

	types, err := NewSurfBreakTypeRepository(db).FindBySurfSpotIDs(ctx, []int64{pipeline.ID, jbay.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.SpotValue{
		{SurfSpotID: pipeline.ID, Value: "Point Break"},
		{SurfSpotID: pipeline.ID, Value: "Reef Break"},
	}, types)

	influencers, err := NewInfluencerRepository(db).FindBySurfSpotIDs(ctx, []int64{pipeline.ID})
	require.NoError(t, err)
	assert.Equal(t, []entity.SpotValue{{SurfSpotID: pipeline.ID, Value: "Gerry Lopez"}}, influencers)

	none, err := NewInfluencerRepository(db).FindBySurfSpotIDs(ctx, []int64{jbay.ID})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_UpsertBreakTypesIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogRepository(db)
	ctx := context.Background()

	first, err := catalog.UpsertBreakTypes(ctx, []string{"Point Break"})
	require.NoError(t, err)

	second, err := catalog.UpsertBreakTypes(ctx, []string{"Point Break", "Beach Break"})
	require.NoError(t, err)
	require.Len(t, second, 2)

	for _, bt := range second {
		if bt.Name == "Point Break" {
			assert.Equal(t, first[0].ID, bt.ID)
		}
	}
}

func TestCatalogRepository_LinkTwiceFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	catalog := NewCatalogRepository(db)

	spot := newPipeline()
	require.NoError(t, NewSurfSpotRepository(db).Create(ctx, spot))
	lopez := &entity.Influencer{Name: "Gerry Lopez"}
	require.NoError(t, catalog.CreateInfluencer(ctx, lopez))

	require.NoError(t, catalog.LinkInfluencers(ctx, spot.ID, []int64{lopez.ID}))
	err := catalog.LinkInfluencers(ctx, spot.ID, []int64{lopez.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already linked")
}

func TestCatalogRepository_RejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	catalog := NewCatalogRepository(db)

	err := catalog.CreatePhotos(ctx, []*entity.Photo{{SurfSpotID: 4242, URL: "https://example.com/orphan.jpg"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	assert.Contains(t, err.Error(), "unknown surf spot")

	spot := newPipeline()
	require.NoError(t, NewSurfSpotRepository(db).Create(ctx, spot))

	err = catalog.LinkBreakTypes(ctx, spot.ID, []int64{9999})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	assert.Contains(t, err.Error(), "link to unknown break types")

	err = catalog.LinkInfluencers(ctx, 4242, []int64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link to unknown influencers")
}

func TestCatalogRepository_Reset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	spots := NewSurfSpotRepository(db)
	catalog := NewCatalogRepository(db)

	spot := newPipeline()
	require.NoError(t, spots.Create(ctx, spot))
	require.NoError(t, catalog.CreatePhotos(ctx, []*entity.Photo{{SurfSpotID: spot.ID, URL: "https://example.com/a.jpg"}}))

	require.NoError(t, catalog.Reset(ctx))

	all, err := spots.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	photos, err := NewPhotoRepository(db).FindBySurfSpotIDs(ctx, []int64{spot.ID})
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewSurfSpotRepository().Create(ctx, newPipeline()); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := NewSurfSpotRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewSurfSpotRepository().Create(ctx, newPipeline())
	})
	require.NoError(t, err)

	all, err := NewSurfSpotRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
