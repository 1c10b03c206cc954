package middleware

import (
	"log/slog"
	"net/http"

	"shaka/config"
	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewCORS allows browsers only from the configured origins. Requests without an
// Origin header pass; a foreign Origin is rejected with 403.
func NewCORS(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			if _, ok := allowed[origin]; ok {
				return true, nil
			}
			m.CORSRejections.Inc()
			logger.Debug("Rejected cross-origin request", slog.String("origin", origin))

			return false, domainerrors.ErrOriginNotAllowed
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowCredentials: true,
	})
}
