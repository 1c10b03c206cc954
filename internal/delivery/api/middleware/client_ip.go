package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides which address c.RealIP reports. Without trusted
// proxies the peer address is used and forwarding headers are ignored. With
// them, X-Forwarded-For is walked from the nearest hop and the first address
// outside the trusted ranges wins.
func NewIPExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		// Ranges were checked when the config was validated.
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			options = append(options, echo.TrustIPRange(ipNet))
		}
	}

	return echo.ExtractIPFromXFFHeader(options...)
}
