package client

import (
	"net/http"
	"time"
)

// Config holds configuration for the extraction client.
type Config struct {
	// HTTPClient is the client used for all outbound requests.
	// If nil, a default client is built (honoring ProxyURL).
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// APIKey overrides the pinned InnerTube API key. The key is brittle
	// coupling to an undocumented API; rotate it here, not in code.
	APIKey string

	// ClientVersion overrides the pinned WEB client version string.
	ClientVersion string

	// RequestTimeout bounds a whole ExtractVideoInfo call when the
	// caller's context carries no deadline. Zero means no bound.
	RequestTimeout time.Duration

	// EmbedTimeout bounds the embed-page fallback fetch.
	// Zero means the 10-second default.
	EmbedTimeout time.Duration

	// RequestsPerMinute throttles outbound platform requests.
	// Zero or negative disables throttling.
	RequestsPerMinute int

	// Logger receives non-fatal diagnostics. Nil means silent.
	Logger Logger
}
