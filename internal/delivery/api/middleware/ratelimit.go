package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"shaka/config"
	"shaka/internal/delivery/api/response"
	deliverycontext "shaka/internal/delivery/context"
	"shaka/internal/infra/metrics"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
)

// unlimitedPaths bypass the limiter.
var unlimitedPaths = []string{"/healthz", "/docs", "/metrics"}

type counterErrKey struct{}

// RateLimitMiddleware limits each client IP to RATE_LIMIT_MAX requests per window.
type RateLimitMiddleware struct {
	limiter *httprate.RateLimiter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRateLimitMiddleware builds the limiter over the configured counter store
func NewRateLimitMiddleware(
	cfg *config.Config,
	counter httprate.LimitCounter,
	m *metrics.Metrics,
	logger *slog.Logger,
) *RateLimitMiddleware {
	limiter := httprate.NewRateLimiter(
		cfg.RateLimit.Max,
		cfg.RateLimit.Window,
		httprate.WithLimitCounter(counter),
		httprate.WithResponseHeaders(httprate.ResponseHeaders{
			Limit:      "RateLimit-Limit",
			Remaining:  "RateLimit-Remaining",
			Reset:      "RateLimit-Reset",
			RetryAfter: "Retry-After",
		}),
		httprate.WithErrorHandler(func(_ http.ResponseWriter, r *http.Request, err error) {
			if slot, ok := r.Context().Value(counterErrKey{}).(*error); ok {
				*slot = err
			}
		}),
	)

	return &RateLimitMiddleware{
		limiter: limiter,
		metrics: m,
		logger:  logger,
	}
}

// Handle rejects over-limit clients with 429. A failing counter store lets the
// request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if isUnlimitedPath(req.URL.Path) {
			return next(c)
		}

		var counterErr error
		tracked := req.WithContext(context.WithValue(req.Context(), counterErrKey{}, &counterErr))

		if !m.limiter.OnLimit(c.Response(), tracked, c.RealIP()) {
			return next(c)
		}

		if counterErr != nil {
			deliverycontext.LoggerFrom(req.Context(), m.logger).
				Warn("Rate limit store unavailable, allowing request", slog.Any("error", counterErr))

			return next(c)
		}

		m.metrics.RateLimitRejections.Inc()

		return response.TooManyRequests(c)
	}
}

func isUnlimitedPath(path string) bool {
	for _, p := range unlimitedPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}
