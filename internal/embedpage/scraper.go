package embedpage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/vidfetch/ytex/internal/innertube"
)

const (
	embedURLPrefix = "https://www.youtube.com/embed/"
	embedURLSuffix = "?enablejsapi=1"

	// DefaultTimeout bounds the embed page load, mirroring the player's
	// own load deadline.
	DefaultTimeout = 10 * time.Second

	// Embed pages are a few hundred KB; anything past this is not the
	// page we are looking for.
	pageBodyLimit = 4 << 20

	playerResponseMarker = "ytInitialPlayerResponse"
)

// Scraper recovers a player response from the embeddable-player page.
// It is the fallback strategy: every internal failure, including the
// timeout, degrades to a soft no-result rather than an error.
type Scraper struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

func NewScraper(httpClient *http.Client, timeout time.Duration) *Scraper {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{
		httpClient: httpClient,
		timeout:    timeout,
		userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

func (s *Scraper) Name() string { return "embed" }

// Extract fetches the embed page and pulls the inline player-response
// initializer out of it. The returned error is always nil; the response
// is nil whenever anything along the way does not pan out.
func (s *Scraper) Extract(ctx context.Context, videoID string) (*innertube.PlayerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, embedURLPrefix+videoID+embedURLSuffix, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, pageBodyLimit))
	if err != nil {
		return nil, nil
	}

	blob := extractInitializerObject(string(body))
	if blob == "" {
		return nil, nil
	}

	pr := parsePlayerResponse(blob)
	if pr == nil || pr.VideoDetails == nil {
		return nil, nil
	}
	return pr, nil
}

// parsePlayerResponse tries strict JSON first. Embed pages have shipped
// the initializer both as JSON and as a looser JS object literal; the
// latter is evaluated in a JS runtime and re-serialized.
func parsePlayerResponse(blob string) *innertube.PlayerResponse {
	var pr innertube.PlayerResponse
	if err := json.Unmarshal([]byte(blob), &pr); err == nil {
		return &pr
	}

	vm := goja.New()
	value, err := vm.RunString("JSON.stringify((" + blob + "))")
	if err != nil {
		return nil
	}
	serialized, ok := value.Export().(string)
	if !ok {
		return nil
	}
	pr = innertube.PlayerResponse{}
	if err := json.Unmarshal([]byte(serialized), &pr); err != nil {
		return nil
	}
	return &pr
}

// extractInitializerObject locates the player-response assignment inside
// the page and returns the object literal that follows it, using a
// string-aware brace walk bounded by the page itself.
func extractInitializerObject(page string) string {
	idx := strings.Index(page, playerResponseMarker)
	if idx == -1 {
		return ""
	}
	rest := page[idx+len(playerResponseMarker):]

	eq := strings.Index(rest, "=")
	if eq == -1 {
		return ""
	}
	rest = strings.TrimLeft(rest[eq+1:], " \t\r\n")
	if rest == "" || rest[0] != '{' {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return rest[:i+1]
			}
		}
	}
	return ""
}
