package client

import (
	"errors"

	"github.com/vidfetch/ytex/internal/formats"
)

var (
	// ErrInvalidInput indicates the input is not a video ID or URL.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtractionFailed indicates both extraction strategies exhausted.
	ErrExtractionFailed = errors.New("all extraction methods failed")
	// ErrMissingVideoDetails indicates an unrecognized player response shape.
	ErrMissingVideoDetails = formats.ErrMissingVideoDetails
)
