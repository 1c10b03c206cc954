package handler

import (
	"time"

	"shaka/internal/delivery/api/validator"
	"shaka/internal/domain/entity"
	"shaka/internal/usecase"
)

const createdTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateSurfSpotRequest is the POST /surfspot body
type CreateSurfSpotRequest struct {
	Destination      string  `json:"destination" validate:"required" example:"J-Bay"`
	Address          string  `json:"address" validate:"required" example:"Jeffreys Bay, Eastern Cape"`
	StateCountry     *string `json:"stateCountry" example:"Eastern Cape, South Africa"`
	DifficultyLevel  *int    `json:"difficultyLevel" validate:"omitempty,min=1,max=5" example:"4"`
	PeakSeasonBegin  *string `json:"peakSeasonBegin" validate:"omitempty,isodate" example:"2025-06-01"`
	PeakSeasonEnd    *string `json:"peakSeasonEnd" validate:"omitempty,isodate" example:"2025-08-31"`
	MagicSeaweedLink *string `json:"magicSeaweedLink" validate:"omitempty,url" example:"https://magicseaweed.com/Jeffreys-Bay-Surf-Report/88/"`
	CreatedTime      *string `json:"createdTime" validate:"omitempty,isodate" example:"2025-09-07T12:00:00.000Z"`
	GeocodeRaw       *string `json:"geocodeRaw" example:"{\"lat\":-34.05,\"lng\":24.93}"`
}

// SurfSpotResponse is a surf spot with its related photos, break types and influencers
type SurfSpotResponse struct {
	SurfSpotID       int64    `json:"surfSpotId" example:"1"`
	Destination      string   `json:"destination" example:"Pipeline"`
	Address          string   `json:"address" example:"Ehukai Beach Park, Pupukea, HI"`
	StateCountry     *string  `json:"stateCountry" example:"Hawaii, USA"`
	DifficultyLevel  *int     `json:"difficultyLevel" example:"5"`
	PeakSeasonBegin  *string  `json:"peakSeasonBegin" example:"2025-11-01"`
	PeakSeasonEnd    *string  `json:"peakSeasonEnd" example:"2026-02-28"`
	MagicSeaweedLink *string  `json:"magicSeaweedLink"`
	CreatedTime      *string  `json:"createdTime" example:"2025-09-07T12:00:00.000Z"`
	GeocodeRaw       *string  `json:"geocodeRaw"`
	PhotoURLs        []string `json:"photoUrls"`
	BreakTypes       []string `json:"breakTypes"`
	Influencers      []string `json:"influencers"`
}

// toInput converts a validated request. Fields were checked by the isodate
// rule so parse failures cannot happen here.
func (r *CreateSurfSpotRequest) toInput() *usecase.NewSurfSpotInput {
	return &usecase.NewSurfSpotInput{
		Destination:      r.Destination,
		Address:          r.Address,
		StateCountry:     r.StateCountry,
		DifficultyLevel:  r.DifficultyLevel,
		PeakSeasonBegin:  parseDate(r.PeakSeasonBegin),
		PeakSeasonEnd:    parseDate(r.PeakSeasonEnd),
		MagicSeaweedLink: r.MagicSeaweedLink,
		CreatedTime:      parseTimestamp(r.CreatedTime),
		GeocodeRaw:       r.GeocodeRaw,
	}
}

func parseTimestamp(value *string) *time.Time {
	if value == nil {
		return nil
	}

	t, err := validator.ParseISODate(*value)
	if err != nil {
		return nil
	}
	t = t.UTC()

	return &t
}

// parseDate keeps only the calendar day.
func parseDate(value *string) *time.Time {
	t := parseTimestamp(value)
	if t == nil {
		return nil
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return &day
}

func toSurfSpotResponse(spot *entity.EnrichedSurfSpot) SurfSpotResponse {
	return SurfSpotResponse{
		SurfSpotID:       spot.ID,
		Destination:      spot.Destination,
		Address:          spot.Address,
		StateCountry:     spot.StateCountry,
		DifficultyLevel:  spot.DifficultyLevel,
		PeakSeasonBegin:  formatTime(spot.PeakSeasonBegin, time.DateOnly),
		PeakSeasonEnd:    formatTime(spot.PeakSeasonEnd, time.DateOnly),
		MagicSeaweedLink: spot.MagicSeaweedLink,
		CreatedTime:      formatTime(spot.CreatedTime, createdTimeLayout),
		GeocodeRaw:       spot.GeocodeRaw,
		PhotoURLs:        nonNil(spot.PhotoURLs),
		BreakTypes:       nonNil(spot.BreakTypes),
		Influencers:      nonNil(spot.Influencers),
	}
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}

	s := t.UTC().Format(layout)

	return &s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
