package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "shaka/internal/delivery/api/middleware"
	"shaka/internal/delivery/api/validator"
	"shaka/internal/domain/entity"
	domainerrors "shaka/internal/domain/errors"
	mockUsecase "shaka/internal/mocks/usecase"
	"shaka/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockSurfSpotUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockSurfSpotUsecase(t)
	h := NewSurfSpotHandler(SurfSpotHandlerParams{SurfSpotUC: uc, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/healthz", HealthCheck)
	e.POST("/surfspot", h.CreateSurfSpot)
	e.GET("/surfspot/all", h.ListSurfSpots)
	e.GET("/surfspot/:id", h.GetSurfSpot)

	return e, uc
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func pipeline() *entity.EnrichedSurfSpot {
	level := 5
	begin := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, time.September, 7, 12, 0, 0, 0, time.UTC)
	spot := entity.NewEnrichedSurfSpot(&entity.SurfSpot{
		ID:              1,
		Destination:     "Pipeline",
		Address:         "Ehukai Beach Park, Pupukea, HI",
		DifficultyLevel: &level,
		PeakSeasonBegin: &begin,
		CreatedTime:     &created,
	})
	spot.PhotoURLs = []string{"https://example.com/pipeline-1.jpg", "https://example.com/pipeline-2.jpg"}
	spot.BreakTypes = []string{"Point Break", "Reef Break"}
	spot.Influencers = []string{"Gerry Lopez"}

	return spot
}

func TestCreateSurfSpot_Created(t *testing.T) {
	e, uc := newTestEcho(t)

	uc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.NewSurfSpotInput) bool {
			return in.Destination == "J-Bay" &&
				in.DifficultyLevel != nil && *in.DifficultyLevel == 4 &&
				in.PeakSeasonBegin != nil && in.PeakSeasonBegin.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) &&
				in.PeakSeasonEnd == nil &&
				in.CreatedTime == nil
		})).
		RunAndReturn(func(_ context.Context, in *usecase.NewSurfSpotInput) (*entity.EnrichedSurfSpot, error) {
			created := time.Date(2025, 9, 7, 12, 0, 0, 0, time.UTC)

			return entity.NewEnrichedSurfSpot(&entity.SurfSpot{
				ID:              9,
				Destination:     in.Destination,
				Address:         in.Address,
				DifficultyLevel: in.DifficultyLevel,
				PeakSeasonBegin: in.PeakSeasonBegin,
				CreatedTime:     &created,
			}), nil
		})

	rec := doRequest(e, http.MethodPost, "/surfspot",
		`{"destination":"J-Bay","address":"Jeffreys Bay","difficultyLevel":"4","peakSeasonBegin":"2025-06-01"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"surfSpotId": 9,
		"destination": "J-Bay",
		"address": "Jeffreys Bay",
		"stateCountry": null,
		"difficultyLevel": 4,
		"peakSeasonBegin": "2025-06-01",
		"peakSeasonEnd": null,
		"magicSeaweedLink": null,
		"createdTime": "2025-09-07T12:00:00.000Z",
		"geocodeRaw": null,
		"photoUrls": [],
		"breakTypes": [],
		"influencers": []
	}`, rec.Body.String())
}

func TestCreateSurfSpot_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "difficulty above range", body: `{"destination":"X","address":"Y","difficultyLevel":6}`, fields: []string{"difficultyLevel"}},
		{name: "difficulty zero", body: `{"destination":"X","address":"Y","difficultyLevel":0}`, fields: []string{"difficultyLevel"}},
		{name: "missing required", body: `{}`, fields: []string{"destination", "address"}},
		{name: "bad date", body: `{"destination":"X","address":"Y","peakSeasonEnd":"soon"}`, fields: []string{"peakSeasonEnd"}},
		{name: "bad link", body: `{"destination":"X","address":"Y","magicSeaweedLink":"nope"}`, fields: []string{"magicSeaweedLink"}},
		{name: "unknown field", body: `{"destination":"X","address":"Y","rating":9}`, fields: []string{"rating"}},
		{name: "wrong type", body: `{"destination":"X","address":"Y","difficultyLevel":{"v":1}}`, fields: []string{"difficultyLevel"}},
		{name: "booleans", body: `{"destination":true,"address":false,"difficultyLevel":true}`, fields: []string{"destination", "address", "difficultyLevel"}},
		{name: "boolean date", body: `{"destination":"X","address":"Y","peakSeasonBegin":false}`, fields: []string{"peakSeasonBegin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(t)

			rec := doRequest(e, http.MethodPost, "/surfspot", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details struct {
						Fields []domainerrors.FieldViolation `json:"fields"`
					} `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

			got := make([]string, 0, len(body.Error.Details.Fields))
			for _, f := range body.Error.Details.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestCreateSurfSpot_MalformedJSON(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/surfspot", `{"destination":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCreateSurfSpot_TrailingData(t *testing.T) {
	e, _ := newTestEcho(t)

	for _, body := range []string{
		`{"destination":"a","address":"b"} {"x":1}`,
		`{"destination":"a","address":"b"}}`,
	} {
		rec := doRequest(e, http.MethodPost, "/surfspot", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	}
}

func TestCreateSurfSpot_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "conflict", err: domainerrors.ErrSurfSpotAlreadyExists.WithCause(errors.New("dup")), message: "Surf spot already exists"},
		{name: "invalid input", err: domainerrors.ErrSurfSpotCreationFailed.WithCause(errors.New("fk")), message: "Unable to create surf spot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newTestEcho(t)
			uc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(e, http.MethodPost, "/surfspot", `{"destination":"Pipeline","address":"Ehukai"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.NotContains(t, rec.Body.String(), "dup")
			assert.NotContains(t, rec.Body.String(), "fk")
		})
	}
}

func TestListSurfSpots(t *testing.T) {
	e, uc := newTestEcho(t)
	uc.EXPECT().FindAll(mock.Anything).Return([]*entity.EnrichedSurfSpot{pipeline()}, nil)

	rec := doRequest(e, http.MethodGet, "/surfspot/all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []SurfSpotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pipeline", got[0].Destination)
	require.NotNil(t, got[0].PeakSeasonBegin)
	assert.Equal(t, "2025-11-01", *got[0].PeakSeasonBegin)
	assert.Nil(t, got[0].PeakSeasonEnd)
	assert.ElementsMatch(t, []string{"Point Break", "Reef Break"}, got[0].BreakTypes)
}

func TestListSurfSpots_Empty(t *testing.T) {
	e, uc := newTestEcho(t)
	uc.EXPECT().FindAll(mock.Anything).Return([]*entity.EnrichedSurfSpot{}, nil)

	rec := doRequest(e, http.MethodGet, "/surfspot/all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListSurfSpots_InternalErrorHidden(t *testing.T) {
	e, uc := newTestEcho(t)
	uc.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.5:3306: refused"))

	rec := doRequest(e, http.MethodGet, "/surfspot/all", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestGetSurfSpot(t *testing.T) {
	e, uc := newTestEcho(t)
	uc.EXPECT().FindByID(mock.Anything, int64(1)).Return(pipeline(), nil)

	rec := doRequest(e, http.MethodGet, "/surfspot/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got SurfSpotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.SurfSpotID)
	require.NotNil(t, got.DifficultyLevel)
	assert.Equal(t, 5, *got.DifficultyLevel)
	assert.ElementsMatch(t, []string{"https://example.com/pipeline-1.jpg", "https://example.com/pipeline-2.jpg"}, got.PhotoURLs)
	assert.Equal(t, []string{"Gerry Lopez"}, got.Influencers)
}

func TestGetSurfSpot_NotFound(t *testing.T) {
	e, uc := newTestEcho(t)
	uc.EXPECT().FindByID(mock.Anything, int64(999)).Return(nil, domainerrors.ErrSurfSpotNotFound)

	rec := doRequest(e, http.MethodGet, "/surfspot/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SURF_SPOT_NOT_FOUND")
}

func TestGetSurfSpot_NonIntegerID(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/surfspot/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.OK)
	_, err := time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)
}
