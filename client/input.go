package client

import (
	"regexp"
	"strings"
)

// The two URL patterns are tried in order; the first captured group wins.
// The captured ID is taken as-is: no length or charset validation.
var (
	watchURLPattern = regexp.MustCompile(`(?:watch\?v=|youtu\.be/|embed/)([^&?#/\s]+)`)
	legacyVPattern  = regexp.MustCompile(`/v/([^&?#/\s]+)`)
)

// ExtractVideoID pulls a video ID out of the common URL shapes:
// watch?v=, youtu.be/, embed/, and the legacy /v/ form.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if m := watchURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	if m := legacyVPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidInput
}

// normalizeVideoID accepts either a URL or a bare video ID.
func normalizeVideoID(input string) (string, error) {
	if id, err := ExtractVideoID(input); err == nil {
		return id, nil
	}
	s := strings.TrimSpace(input)
	if s == "" || strings.ContainsAny(s, "/?&#") {
		return "", ErrInvalidInput
	}
	return s, nil
}
