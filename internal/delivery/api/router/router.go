// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shaka/config"
	"shaka/docs"
	"shaka/internal/delivery/api/router/handler"
	"shaka/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Cfg             *config.Config
	SurfSpotHandler *handler.SurfSpotHandler
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	serviceName     string
	surfSpotHandler *handler.SurfSpotHandler
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		serviceName:     params.Cfg.Env.ServiceName,
		surfSpotHandler: params.SurfSpotHandler,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.HealthCheck)

	surfSpotGroup := e.Group("/surfspot")
	{
		surfSpotGroup.POST("", r.surfSpotHandler.CreateSurfSpot)
		surfSpotGroup.GET("/all", r.surfSpotHandler.ListSurfSpots)
		surfSpotGroup.GET("/:id", r.surfSpotHandler.GetSurfSpot)
	}

	docs.SwaggerInfo.Title = r.serviceName
	e.GET("/docs/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
}
