package formats

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/vidfetch/ytex/internal/innertube"
)

// ErrMissingVideoDetails indicates a player response whose shape is not
// recognized at all. Unlike per-field gaps, this propagates as an error.
var ErrMissingVideoDetails = errors.New("missing video details")

// VideoInfo is the normalized extraction result.
type VideoInfo struct {
	ID            string
	Title         string
	Duration      int
	Uploader      string
	Thumbnail     string
	Formats       []Format
	StreamingData json.RawMessage
}

// BuildVideoInfo normalizes a player response. Adaptive formats are mapped
// first, then progressive ones; an empty streaming-data payload yields an
// empty format list, which is tolerated.
func BuildVideoInfo(resp *innertube.PlayerResponse) (*VideoInfo, error) {
	if resp == nil || resp.VideoDetails == nil {
		return nil, ErrMissingVideoDetails
	}
	details := resp.VideoDetails

	sd := resp.Streams()
	formats := make([]Format, 0, len(sd.AdaptiveFormats)+len(sd.Formats))
	for _, raw := range sd.AdaptiveFormats {
		formats = append(formats, ParseFormat(raw, SourceAdaptive))
	}
	for _, raw := range sd.Formats {
		formats = append(formats, ParseFormat(raw, SourceProgressive))
	}

	title := details.Title
	if title == "" {
		title = "Unknown"
	}
	uploader := details.Author
	if uploader == "" {
		uploader = "Unknown"
	}

	duration := 0
	if details.LengthSeconds != "" {
		if n, err := strconv.Atoi(details.LengthSeconds); err == nil && n >= 0 {
			duration = n
		}
	}

	thumbnail := ""
	if len(details.Thumbnail.Thumbnails) > 0 {
		thumbnail = details.Thumbnail.Thumbnails[0].URL
	}

	return &VideoInfo{
		ID:            details.VideoID,
		Title:         title,
		Duration:      duration,
		Uploader:      uploader,
		Thumbnail:     thumbnail,
		Formats:       formats,
		StreamingData: resp.StreamingData,
	}, nil
}
