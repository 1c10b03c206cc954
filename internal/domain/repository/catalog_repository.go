package repository

import (
	"context"

	"shaka/internal/domain/entity"
)

// CatalogRepository manages the reference rows that the public API only reads:
// photos, break types, influencers and the join rows linking them to spots.
type CatalogRepository interface {
	// Reset deletes every catalog and surf spot row, children first.
	Reset(ctx context.Context) error

	CreatePhotos(ctx context.Context, photos []*entity.Photo) error

	// UpsertBreakTypes creates missing names and returns the rows for all of them.
	UpsertBreakTypes(ctx context.Context, names []string) ([]*entity.SurfBreakType, error)

	CreateInfluencer(ctx context.Context, influencer *entity.Influencer) error

	LinkBreakTypes(ctx context.Context, surfSpotID int64, breakTypeIDs []int64) error

	LinkInfluencers(ctx context.Context, surfSpotID int64, influencerIDs []int64) error
}
