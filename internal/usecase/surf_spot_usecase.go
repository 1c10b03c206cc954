package usecase

import (
	"context"
	"time"

	"shaka/internal/domain/entity"
)

// NewSurfSpotInput carries the fields accepted when creating a surf spot.
// Nil pointers stay null in storage.
type NewSurfSpotInput struct {
	Destination      string
	Address          string
	StateCountry     *string
	DifficultyLevel  *int
	PeakSeasonBegin  *time.Time
	PeakSeasonEnd    *time.Time
	MagicSeaweedLink *string
	CreatedTime      *time.Time
	GeocodeRaw       *string
}

// SurfSpotUsecase defines the read and create operations of the catalog.
type SurfSpotUsecase interface {
	// Create stores a new spot and returns it with empty enrichment slices.
	Create(ctx context.Context, input *NewSurfSpotInput) (*entity.EnrichedSurfSpot, error)

	// FindAll returns every spot joined with its photos, break types and influencers.
	FindAll(ctx context.Context) ([]*entity.EnrichedSurfSpot, error)

	// FindByID returns domainerrors.ErrSurfSpotNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (*entity.EnrichedSurfSpot, error)
}
