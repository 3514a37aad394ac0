package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newStrategyWithResponse(t *testing.T, status int, body string, inspect func(*http.Request)) *Strategy {
	t.Helper()
	httpClient := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if inspect != nil {
				inspect(r)
			}
			return &http.Response{
				StatusCode: status,
				Header:     make(http.Header),
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		}),
	}
	return NewStrategy(httpClient, "", "")
}

func TestExtractSendsBrowserShapedRequest(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte

	s := newStrategyWithResponse(t, http.StatusOK, `{
		"videoDetails":{"videoId":"jNQXAC9IVRw","title":"Me at the zoo","lengthSeconds":"19","author":"jawed"}
	}`, func(r *http.Request) {
		captured = r
		capturedBody, _ = io.ReadAll(r.Body)
	})

	resp, err := s.Extract(context.Background(), "jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if resp == nil || resp.VideoDetails == nil || resp.VideoDetails.VideoID != "jNQXAC9IVRw" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if captured.Method != http.MethodPost {
		t.Fatalf("method = %s, want POST", captured.Method)
	}
	if !strings.HasSuffix(captured.URL.Path, "/youtubei/v1/player") {
		t.Fatalf("path = %s", captured.URL.Path)
	}
	if captured.URL.Query().Get("key") != DefaultAPIKey {
		t.Fatalf("key = %q", captured.URL.Query().Get("key"))
	}
	if got := captured.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type = %q", got)
	}
	if got := captured.Header.Get("Origin"); got != "https://www.youtube.com" {
		t.Fatalf("origin = %q", got)
	}
	if got := captured.Header.Get("Referer"); got != "https://www.youtube.com/" {
		t.Fatalf("referer = %q", got)
	}
	if ua := captured.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla/5.0") {
		t.Fatalf("user-agent = %q", ua)
	}

	var payload PlayerRequest
	if err := json.Unmarshal(capturedBody, &payload); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if payload.VideoID != "jNQXAC9IVRw" {
		t.Fatalf("videoId = %q", payload.VideoID)
	}
	if payload.Context.Client.ClientName != "WEB" {
		t.Fatalf("clientName = %q", payload.Context.Client.ClientName)
	}
	if payload.Context.Client.ClientVersion != DefaultClientVersion {
		t.Fatalf("clientVersion = %q", payload.Context.Client.ClientVersion)
	}
	if payload.Context.Client.HL != "en" || payload.Context.Client.GL != "US" {
		t.Fatalf("locale = %q/%q", payload.Context.Client.HL, payload.Context.Client.GL)
	}
	if !payload.Context.Request.UseSsl {
		t.Fatal("useSsl not set")
	}
	if payload.PlaybackContext.ContentPlaybackContext.Html5Preference != "HTML5_PREF_WANTS" {
		t.Fatalf("html5Preference = %q", payload.PlaybackContext.ContentPlaybackContext.Html5Preference)
	}

	// lockedSafetyMode must serialize even when false.
	if !bytes.Contains(capturedBody, []byte(`"lockedSafetyMode":false`)) {
		t.Fatalf("lockedSafetyMode missing from payload: %s", capturedBody)
	}
}

func TestExtractOverridesAPIKeyAndVersion(t *testing.T) {
	var captured *http.Request
	httpClient := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			captured = r
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     make(http.Header),
				Body:       io.NopCloser(strings.NewReader(`{"videoDetails":{"videoId":"x"}}`)),
			}, nil
		}),
	}
	s := NewStrategy(httpClient, "rotated-key", "2.30000000.00.00")

	if _, err := s.Extract(context.Background(), "x"); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if captured.URL.Query().Get("key") != "rotated-key" {
		t.Fatalf("key = %q", captured.URL.Query().Get("key"))
	}
}

func TestExtractHTTPErrorCarriesStatusAndBody(t *testing.T) {
	s := newStrategyWithResponse(t, http.StatusForbidden, `{"error":{"code":403}}`, nil)

	_, err := s.Extract(context.Background(), "jNQXAC9IVRw")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "403") {
		t.Fatalf("body snippet = %q", statusErr.Body)
	}
	if !strings.Contains(statusErr.Error(), "API request failed") {
		t.Fatalf("message = %q", statusErr.Error())
	}
}

func TestExtractMissingVideoDetailsIsSoftNoResult(t *testing.T) {
	s := newStrategyWithResponse(t, http.StatusOK, `{"playabilityStatus":{"status":"ERROR"}}`, nil)

	resp, err := s.Extract(context.Background(), "jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}
	if resp != nil {
		t.Fatalf("resp = %+v, want nil", resp)
	}
}

func TestExtractMalformedJSONIsError(t *testing.T) {
	s := newStrategyWithResponse(t, http.StatusOK, `{"videoDetails":`, nil)

	_, err := s.Extract(context.Background(), "jNQXAC9IVRw")
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestStreamsToleratesMissingAndMalformedPayload(t *testing.T) {
	var resp PlayerResponse
	if sd := resp.Streams(); len(sd.Formats) != 0 || len(sd.AdaptiveFormats) != 0 {
		t.Fatalf("expected empty streams, got %+v", sd)
	}

	resp.StreamingData = json.RawMessage(`"not an object"`)
	if sd := resp.Streams(); len(sd.Formats) != 0 || len(sd.AdaptiveFormats) != 0 {
		t.Fatalf("expected empty streams for malformed payload, got %+v", sd)
	}

	resp.StreamingData = json.RawMessage(`{"formats":[{"itag":18}],"adaptiveFormats":[{"itag":140},{"itag":251}]}`)
	sd := resp.Streams()
	if len(sd.Formats) != 1 || len(sd.AdaptiveFormats) != 2 {
		t.Fatalf("streams = %+v", sd)
	}
}
