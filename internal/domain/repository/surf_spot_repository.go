// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shaka/internal/domain/entity"
	"shaka/internal/errors"
)

// Domain-specific errors for surf spot persistence.
var (
	// ErrSurfSpotNotFound is returned when no surf spot has the requested id.
	ErrSurfSpotNotFound = errors.New("surf spot not found")
	// ErrSurfSpotDuplicate is returned when a unique constraint rejects the insert.
	ErrSurfSpotDuplicate = errors.New("surf spot violates a unique constraint")
)

// SurfSpotRepository defines surf spot row access.
type SurfSpotRepository interface {
	// Create inserts spot and fills in its generated id.
	Create(ctx context.Context, spot *entity.SurfSpot) error

	// FindAll returns every surf spot in store order.
	FindAll(ctx context.Context) ([]*entity.SurfSpot, error)

	// FindByID returns ErrSurfSpotNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.SurfSpot, error)
}

// PhotoRepository reads photo urls of surf spots.
type PhotoRepository interface {
	FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error)
}

// SurfBreakTypeRepository reads break type names linked to surf spots.
type SurfBreakTypeRepository interface {
	FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error)
}

// InfluencerRepository reads influencer names linked to surf spots.
type InfluencerRepository interface {
	FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error)
}
