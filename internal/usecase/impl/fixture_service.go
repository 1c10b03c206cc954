package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shaka/internal/domain/entity"
	"shaka/internal/domain/repository"
	"shaka/internal/usecase"
)

type fixtureService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewFixtureService creates the service that seeds end-to-end test data
func NewFixtureService(txManager repository.TransactionManager, logger *slog.Logger) usecase.FixtureUsecase {
	return &fixtureService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *fixtureService) SeedPipeline(ctx context.Context) (int64, error) {
	var spotID int64

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		spots := f.NewSurfSpotRepository()
		catalog := f.NewCatalogRepository()

		if err := catalog.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset catalog: %w", err)
		}

		createdTime := s.now().UTC()
		spot := pipelineFixture(createdTime)
		if err := spots.Create(ctx, spot); err != nil {
			return fmt.Errorf("failed to create surf spot: %w", err)
		}

		breakTypes, err := catalog.UpsertBreakTypes(ctx, []string{"Point Break", "Reef Break"})
		if err != nil {
			return fmt.Errorf("failed to upsert break types: %w", err)
		}

		influencer := &entity.Influencer{Name: "Gerry Lopez"}
		if err := catalog.CreateInfluencer(ctx, influencer); err != nil {
			return fmt.Errorf("failed to create influencer: %w", err)
		}

		if err := catalog.CreatePhotos(ctx, []*entity.Photo{
			{SurfSpotID: spot.ID, URL: "https://example.com/pipeline-1.jpg"},
			{SurfSpotID: spot.ID, URL: "https://example.com/pipeline-2.jpg"},
		}); err != nil {
			return fmt.Errorf("failed to create photos: %w", err)
		}

		breakTypeIDs := make([]int64, 0, len(breakTypes))
		for _, bt := range breakTypes {
			breakTypeIDs = append(breakTypeIDs, bt.ID)
		}
		if err := catalog.LinkBreakTypes(ctx, spot.ID, breakTypeIDs); err != nil {
			return fmt.Errorf("failed to link break types: %w", err)
		}

		if err := catalog.LinkInfluencers(ctx, spot.ID, []int64{influencer.ID}); err != nil {
			return fmt.Errorf("failed to link influencer: %w", err)
		}

		spotID = spot.ID

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Seeded surf spot", slog.Int64("surf_spot_id", spotID))

	return spotID, nil
}

func pipelineFixture(createdTime time.Time) *entity.SurfSpot {
	stateCountry := "Hawaii, USA"
	difficulty := 5
	begin := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	link := "https://magicseaweed.com/Oahu-North-Shore-Surf-Report/3841/"
	geocode := `{"lat":21.665,"lng":-158.051}`

	return &entity.SurfSpot{
		Destination:      "Pipeline",
		Address:          "Ehukai Beach Park, Pupukea, HI",
		StateCountry:     &stateCountry,
		DifficultyLevel:  &difficulty,
		PeakSeasonBegin:  &begin,
		PeakSeasonEnd:    &end,
		MagicSeaweedLink: &link,
		CreatedTime:      &createdTime,
		GeocodeRaw:       &geocode,
	}
}
