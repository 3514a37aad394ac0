package innertube

import "encoding/json"

// PlayerResponse is the top-level response from the /player endpoint.
// StreamingData is kept as a raw message so callers can pass it through
// untouched; Streams decodes it on demand.
type PlayerResponse struct {
	VideoDetails  *VideoDetails   `json:"videoDetails"`
	StreamingData json.RawMessage `json:"streamingData,omitempty"`
}

// Streams decodes the streaming-data payload. A missing or malformed
// payload yields the zero value: an empty format set is tolerated.
func (p *PlayerResponse) Streams() StreamingData {
	var sd StreamingData
	if len(p.StreamingData) == 0 {
		return sd
	}
	_ = json.Unmarshal(p.StreamingData, &sd)
	return sd
}

type VideoDetails struct {
	VideoID       string           `json:"videoId"`
	Title         string           `json:"title"`
	LengthSeconds string           `json:"lengthSeconds"`
	Author        string           `json:"author"`
	Thumbnail     ThumbnailDetails `json:"thumbnail"`
}

type ThumbnailDetails struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type StreamingData struct {
	Formats         []RawFormat `json:"formats"`
	AdaptiveFormats []RawFormat `json:"adaptiveFormats"`
}

// RawFormat is one platform-defined format entry, adaptive or progressive.
type RawFormat struct {
	Itag          int    `json:"itag"`
	URL           string `json:"url"`
	MimeType      string `json:"mimeType"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	FPS           int    `json:"fps"`
	ContentLength string `json:"contentLength"`
	Quality       string `json:"quality"`
	QualityLabel  string `json:"qualityLabel"`
	AudioQuality  string `json:"audioQuality"`
}
