package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidfetch/ytex/internal/embedpage"
	"github.com/vidfetch/ytex/internal/formats"
	"github.com/vidfetch/ytex/internal/innertube"
	"github.com/vidfetch/ytex/internal/orchestrator"
)

// Client resolves video IDs or URLs into normalized VideoInfo records.
// The direct InnerTube call is tried first, the embed-page scrape second;
// they never run concurrently and each runs exactly once per call.
type Client struct {
	config Config
	engine *orchestrator.Engine
	logger Logger
}

// New creates a new extraction client.
func New(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient(config.ProxyURL)
	}
	httpClient = withThrottle(httpClient, config.RequestsPerMinute)

	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	engine := orchestrator.NewEngine(
		innertube.NewStrategy(httpClient, config.APIKey, config.ClientVersion),
		embedpage.NewScraper(httpClient, config.EmbedTimeout),
	)
	engine.OnAttempt = func(strategy string, err error) {
		if err == nil {
			logger.Warnf("%s extraction returned no result, falling back", strategy)
			return
		}
		logger.Warnf("%s extraction failed: %v", strategy, err)
	}

	return &Client{
		config: config,
		engine: engine,
		logger: logger,
	}
}

// ExtractVideoInfo resolves the input (video ID or URL) into a VideoInfo.
// It fails with ErrExtractionFailed once both strategies are exhausted.
func (c *Client) ExtractVideoInfo(ctx context.Context, input string) (*VideoInfo, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := normalizeVideoID(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.engine.Extract(ctx, videoID)
	if err != nil {
		return nil, mapError(err)
	}

	info, err := formats.BuildVideoInfo(resp)
	if err != nil {
		return nil, err
	}

	c.logger.Infof("extracted video=%s formats=%d", info.ID, len(info.Formats))
	return toVideoInfo(info), nil
}

func mapError(err error) error {
	var allFailed *orchestrator.AllStrategiesFailedError
	if errors.As(err, &allFailed) {
		if len(allFailed.Attempts) == 0 {
			return ErrExtractionFailed
		}
		return fmt.Errorf("%w: %s", ErrExtractionFailed, allFailed.Summary())
	}
	return err
}

func toVideoInfo(info *formats.VideoInfo) *VideoInfo {
	out := &VideoInfo{
		ID:            info.ID,
		Title:         info.Title,
		Duration:      info.Duration,
		Uploader:      info.Uploader,
		Thumbnail:     info.Thumbnail,
		Formats:       make([]Format, 0, len(info.Formats)),
		StreamingData: info.StreamingData,
	}
	for _, f := range info.Formats {
		out.Formats = append(out.Formats, Format{
			FormatID:   f.FormatID,
			Ext:        f.Ext,
			Resolution: f.Resolution,
			FPS:        f.FPS,
			VCodec:     f.VCodec,
			ACodec:     f.ACodec,
			Filesize:   f.Filesize,
			URL:        f.URL,
			HasVideo:   f.HasVideo,
			HasAudio:   f.HasAudio,
			FormatNote: f.FormatNote,
			Quality:    f.Quality,
		})
	}
	return out
}
