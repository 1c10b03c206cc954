package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shaka/internal/delivery/api/response"
	deliverycontext "shaka/internal/delivery/context"
	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SurfSpotHandlerParams holds dependencies for SurfSpotHandler, injected by Fx.
type SurfSpotHandlerParams struct {
	fx.In

	SurfSpotUC usecase.SurfSpotUsecase
	Logger     *slog.Logger
}

// SurfSpotHandler serves the /surfspot resource
type SurfSpotHandler struct {
	surfSpotUC usecase.SurfSpotUsecase
	logger     *slog.Logger
}

// NewSurfSpotHandler is the constructor for SurfSpotHandler
func NewSurfSpotHandler(params SurfSpotHandlerParams) *SurfSpotHandler {
	return &SurfSpotHandler{
		surfSpotUC: params.SurfSpotUC,
		logger:     params.Logger,
	}
}

// CreateSurfSpot godoc
//
//	@Summary	Create a surf spot
//	@Tags		surfspot
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateSurfSpotRequest	true	"Surf spot"
//	@Success	201		{object}	SurfSpotResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/surfspot [post]
func (h *SurfSpotHandler) CreateSurfSpot(c echo.Context) error {
	var req CreateSurfSpotRequest
	if err := bindStrict(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	spot, err := h.surfSpotUC.Create(ctx, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.LoggerFrom(ctx, h.logger).Info("Surf spot created",
		slog.Int64("surf_spot_id", spot.ID),
		slog.String("destination", spot.Destination),
	)

	return response.Success(c, http.StatusCreated, toSurfSpotResponse(spot))
}

// ListSurfSpots godoc
//
//	@Summary	List every surf spot
//	@Tags		surfspot
//	@Produce	json
//	@Success	200	{array}	SurfSpotResponse
//	@Router		/surfspot/all [get]
func (h *SurfSpotHandler) ListSurfSpots(c echo.Context) error {
	spots, err := h.surfSpotUC.FindAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]SurfSpotResponse, 0, len(spots))
	for _, spot := range spots {
		out = append(out, toSurfSpotResponse(spot))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetSurfSpot godoc
//
//	@Summary	Get one surf spot
//	@Tags		surfspot
//	@Produce	json
//	@Param		id	path		int	true	"Surf spot id"
//	@Success	200	{object}	SurfSpotResponse
//	@Failure	400	{object}	response.ErrorResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/surfspot/{id} [get]
func (h *SurfSpotHandler) GetSurfSpot(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidID)
	}

	spot, err := h.surfSpotUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSurfSpotResponse(spot))
}
