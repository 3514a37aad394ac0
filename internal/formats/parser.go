package formats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vidfetch/ytex/internal/innertube"
)

// Source tags distinguish the two streaming-data lists.
const (
	SourceAdaptive    = "adaptive"
	SourceProgressive = "progressive"
)

// Format is one normalized media format.
type Format struct {
	FormatID   string
	Ext        string
	Resolution string
	FPS        int
	VCodec     string
	ACodec     string
	Filesize   *int64
	URL        string
	HasVideo   bool
	HasAudio   bool
	FormatNote string
	Quality    string
}

var codecsPattern = regexp.MustCompile(`codecs="([^"]+)"`)

// ParseFormat normalizes one raw format entry, tagged with the list it
// came from ("adaptive" or "progressive").
func ParseFormat(raw innertube.RawFormat, sourceTag string) Format {
	mimeType := raw.MimeType
	hasVideo := strings.Contains(mimeType, "video")
	hasAudio := strings.Contains(mimeType, "audio")

	// A combined stream lists the video codec first and the audio codec
	// second; an audio-only stream lists a single codec that belongs to
	// audio. Taking the last token for audio covers both.
	var codecs []string
	if m := codecsPattern.FindStringSubmatch(mimeType); m != nil {
		codecs = strings.Split(m[1], ", ")
	}

	vcodec := "none"
	acodec := "none"
	if hasVideo && len(codecs) > 0 {
		vcodec = codecs[0]
	}
	if hasAudio {
		acodec = "unknown"
		if len(codecs) > 0 {
			acodec = codecs[len(codecs)-1]
		}
	}

	resolution := "audio only"
	switch {
	case raw.Width > 0 && raw.Height > 0:
		resolution = fmt.Sprintf("%dx%d", raw.Width, raw.Height)
	case raw.Height > 0:
		resolution = fmt.Sprintf("%dp", raw.Height)
	}

	// First match wins. The audio/mp4 and audio/webm arms are shadowed by
	// the plain substring tests above them; the order is kept as-is to
	// match the payloads downstream consumers already rely on.
	ext := "unknown"
	switch {
	case strings.Contains(mimeType, "mp4"):
		ext = "mp4"
	case strings.Contains(mimeType, "webm"):
		ext = "webm"
	case strings.Contains(mimeType, "3gpp"):
		ext = "3gp"
	case strings.Contains(mimeType, "audio/mp4"):
		ext = "m4a"
	case strings.Contains(mimeType, "audio/webm"):
		ext = "webm"
	}

	formatID := "unknown"
	if raw.Itag != 0 {
		formatID = strconv.Itoa(raw.Itag)
	}

	var filesize *int64
	if raw.ContentLength != "" {
		if n, err := strconv.ParseInt(raw.ContentLength, 10, 64); err == nil {
			filesize = &n
		}
	}

	quality := raw.QualityLabel
	if quality == "" {
		quality = raw.AudioQuality
	}
	note := quality
	if note == "" {
		note = "unknown"
	}

	return Format{
		FormatID:   formatID,
		Ext:        ext,
		Resolution: resolution,
		FPS:        raw.FPS,
		VCodec:     vcodec,
		ACodec:     acodec,
		Filesize:   filesize,
		URL:        raw.URL,
		HasVideo:   hasVideo,
		HasAudio:   hasAudio,
		FormatNote: sourceTag + " - " + note,
		Quality:    quality,
	}
}
