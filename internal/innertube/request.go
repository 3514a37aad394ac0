package innertube

// PlayerRequest is the POST body for the /player endpoint.
type PlayerRequest struct {
	Context         Context         `json:"context"`
	VideoID         string          `json:"videoId"`
	PlaybackContext PlaybackContext `json:"playbackContext"`
}

type Context struct {
	Client  ClientInfo     `json:"client"`
	User    UserContext    `json:"user"`
	Request RequestContext `json:"request"`
}

type ClientInfo struct {
	ClientName       string `json:"clientName"`
	ClientVersion    string `json:"clientVersion"`
	HL               string `json:"hl"`
	GL               string `json:"gl"`
	UtcOffsetMinutes int    `json:"utcOffsetMinutes"`
}

type UserContext struct {
	LockedSafetyMode bool `json:"lockedSafetyMode"`
}

type RequestContext struct {
	UseSsl bool `json:"useSsl"`
}

type PlaybackContext struct {
	ContentPlaybackContext ContentPlaybackContext `json:"contentPlaybackContext"`
}

type ContentPlaybackContext struct {
	Html5Preference string `json:"html5Preference"`
}

// NewPlayerRequest builds the fixed WEB client payload for one video.
// The endpoint rejects contexts that do not resemble the platform's own
// web player, so the shape here is load-bearing.
func NewPlayerRequest(videoID, clientVersion string) *PlayerRequest {
	return &PlayerRequest{
		VideoID: videoID,
		Context: Context{
			Client: ClientInfo{
				ClientName:       "WEB",
				ClientVersion:    clientVersion,
				HL:               "en",
				GL:               "US",
				UtcOffsetMinutes: 0,
			},
			User:    UserContext{LockedSafetyMode: false},
			Request: RequestContext{UseSsl: true},
		},
		PlaybackContext: PlaybackContext{
			ContentPlaybackContext: ContentPlaybackContext{
				Html5Preference: "HTML5_PREF_WANTS",
			},
		},
	}
}
