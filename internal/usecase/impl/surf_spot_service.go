package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "shaka/internal/delivery/context"
	"shaka/internal/domain/entity"
	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/domain/repository"
	"shaka/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type surfSpotService struct {
	surfSpotRepo      repository.SurfSpotRepository
	photoRepo         repository.PhotoRepository
	surfBreakTypeRepo repository.SurfBreakTypeRepository
	influencerRepo    repository.InfluencerRepository
	logger            *slog.Logger
	now               func() time.Time
}

// NewSurfSpotService creates a new surf spot service instance
func NewSurfSpotService(
	surfSpotRepo repository.SurfSpotRepository,
	photoRepo repository.PhotoRepository,
	surfBreakTypeRepo repository.SurfBreakTypeRepository,
	influencerRepo repository.InfluencerRepository,
	logger *slog.Logger,
) usecase.SurfSpotUsecase {
	return &surfSpotService{
		surfSpotRepo:      surfSpotRepo,
		photoRepo:         photoRepo,
		surfBreakTypeRepo: surfBreakTypeRepo,
		influencerRepo:    influencerRepo,
		logger:            logger,
		now:               time.Now,
	}
}

// Create persists a new surf spot. A fresh spot has no related rows yet.
func (s *surfSpotService) Create(ctx context.Context, input *usecase.NewSurfSpotInput) (*entity.EnrichedSurfSpot, error) {
	spot := &entity.SurfSpot{
		Destination:      input.Destination,
		Address:          input.Address,
		StateCountry:     input.StateCountry,
		DifficultyLevel:  input.DifficultyLevel,
		PeakSeasonBegin:  input.PeakSeasonBegin,
		PeakSeasonEnd:    input.PeakSeasonEnd,
		MagicSeaweedLink: input.MagicSeaweedLink,
		CreatedTime:      input.CreatedTime,
		GeocodeRaw:       input.GeocodeRaw,
	}
	if spot.CreatedTime == nil {
		now := s.now().UTC()
		spot.CreatedTime = &now
	}

	if err := s.surfSpotRepo.Create(ctx, spot); err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("Failed to create surf spot",
			slog.String("destination", spot.Destination),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrSurfSpotDuplicate) {
			return nil, domainerrors.ErrSurfSpotAlreadyExists.WithCause(err)
		}

		return nil, domainerrors.ErrSurfSpotCreationFailed.WithCause(err)
	}

	return entity.NewEnrichedSurfSpot(spot), nil
}

// FindAll returns every surf spot with its related rows merged in.
func (s *surfSpotService) FindAll(ctx context.Context) ([]*entity.EnrichedSurfSpot, error) {
	spots, err := s.surfSpotRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find surf spots: %w", err)
	}

	if len(spots) == 0 {
		return []*entity.EnrichedSurfSpot{}, nil
	}

	return s.enrich(ctx, spots)
}

// FindByID returns one enriched surf spot.
func (s *surfSpotService) FindByID(ctx context.Context, id int64) (*entity.EnrichedSurfSpot, error) {
	spot, err := s.surfSpotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSurfSpotNotFound) {
			return nil, domainerrors.ErrSurfSpotNotFound
		}

		return nil, fmt.Errorf("failed to find surf spot by id: %w", err)
	}

	enriched, err := s.enrich(ctx, []*entity.SurfSpot{spot})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

// enrich issues the three related-row queries concurrently and joins their
// results onto spots by surf spot id. Any failed query fails the whole call.
func (s *surfSpotService) enrich(ctx context.Context, spots []*entity.SurfSpot) ([]*entity.EnrichedSurfSpot, error) {
	ids := make([]int64, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}

	var photos, breakTypes, influencers []entity.SpotValue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if photos, err = s.photoRepo.FindBySurfSpotIDs(gctx, ids); err != nil {
			return fmt.Errorf("failed to find photos: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if breakTypes, err = s.surfBreakTypeRepo.FindBySurfSpotIDs(gctx, ids); err != nil {
			return fmt.Errorf("failed to find break types: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if influencers, err = s.influencerRepo.FindBySurfSpotIDs(gctx, ids); err != nil {
			return fmt.Errorf("failed to find influencers: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	photosBySpot := groupBySurfSpot(photos)
	breakTypesBySpot := groupBySurfSpot(breakTypes)
	influencersBySpot := groupBySurfSpot(influencers)

	enriched := make([]*entity.EnrichedSurfSpot, 0, len(spots))
	for _, spot := range spots {
		e := entity.NewEnrichedSurfSpot(spot)
		if v, ok := photosBySpot[spot.ID]; ok {
			e.PhotoURLs = v
		}
		if v, ok := breakTypesBySpot[spot.ID]; ok {
			e.BreakTypes = v
		}
		if v, ok := influencersBySpot[spot.ID]; ok {
			e.Influencers = v
		}
		enriched = append(enriched, e)
	}

	return enriched, nil
}

// groupBySurfSpot buckets values by owning spot, keeping store order and
// dropping empty values.
func groupBySurfSpot(values []entity.SpotValue) map[int64][]string {
	grouped := make(map[int64][]string)
	for _, v := range values {
		if v.Value == "" {
			continue
		}
		grouped[v.SurfSpotID] = append(grouped[v.SurfSpotID], v.Value)
	}

	return grouped
}
