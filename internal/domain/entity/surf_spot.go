package entity

import "time"

// SurfSpot is the aggregate root of the catalog.
type SurfSpot struct {
	ID               int64
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

// EnrichedSurfSpot is a SurfSpot joined with the display values of its
// photos, break types and influencers. It is never persisted.
type EnrichedSurfSpot struct {
	SurfSpot

	PhotoURLs   []string
	BreakTypes  []string
	Influencers []string
}

// NewEnrichedSurfSpot wraps spot with empty, non-nil enrichment slices.
func NewEnrichedSurfSpot(spot *SurfSpot) *EnrichedSurfSpot {
	return &EnrichedSurfSpot{
		SurfSpot:    *spot,
		PhotoURLs:   []string{},
		BreakTypes:  []string{},
		Influencers: []string{},
	}
}

// SpotValue is a related row projected to the owning spot id and its display
// value (a photo url, a break type name or an influencer name).
type SpotValue struct {
	SurfSpotID int64
	Value      string
}
