package client

import "encoding/json"

// VideoInfo is an immutable snapshot produced fresh per extraction call.
// JSON tags match the wire shape the download backend consumes.
type VideoInfo struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Duration      int             `json:"duration"`
	Uploader      string          `json:"uploader"`
	Thumbnail     string          `json:"thumbnail"`
	Formats       []Format        `json:"formats"`
	StreamingData json.RawMessage `json:"streamingData,omitempty"`
}

// Format is one normalized media format.
type Format struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution"`
	FPS        int    `json:"fps"`
	VCodec     string `json:"vcodec"`
	ACodec     string `json:"acodec"`
	Filesize   *int64 `json:"filesize,omitempty"`
	URL        string `json:"url,omitempty"`
	HasVideo   bool   `json:"has_video"`
	HasAudio   bool   `json:"has_audio"`
	FormatNote string `json:"format_note"`
	Quality    string `json:"quality,omitempty"`
}
