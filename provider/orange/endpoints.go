package orange

// Endpoint placeholders substituted at request time.
const (
	placeholderChannelID = "{channel_id}"
	placeholderPeriod    = "{period}"
)

// DefaultDeepLink is the playback callback handed to the host for every channel.
const DefaultDeepLink = "plugin://plugin.video.orange.fr/channel/load/" + placeholderChannelID

// Endpoints are the URL templates of one Orange backend variant.
type Endpoints struct {
	// Users returns the session's entitled bouquets.
	Users string
	// StreamInfo returns manifest and protection data, templated on {channel_id}.
	StreamInfo string
	// Streams returns the full channel catalog.
	Streams string
	// Programs returns guide entries, templated on {period}.
	Programs string
	// DeepLink is the channel playback URI, templated on {channel_id}. Empty means DefaultDeepLink.
	DeepLink string
}

// France is the Orange France (metropolitan) backend.
var France = Endpoints{
	Users:      "https://mediation-tv.orange.fr/all/live/v3/applications/PC/users/me",
	StreamInfo: "https://mediation-tv.orange.fr/all/live/v3/applications/PC/users/me/channels/{channel_id}/stream?terminalModel=WEB_PC",
	Streams:    "https://mediation-tv.orange.fr/all/live/v3/applications/PC/channels?mco=OFR",
	Programs:   "https://rp-ott-mediation-tv.woopic.com/api-gw/live/v3/applications/PC/programs?period={period}&mco=OFR",
}

// Reunion is the Orange Réunion backend.
var Reunion = Endpoints{
	Users:      "https://mediation-tv.orange.fr/all/live/v3/applications/PC/users/me",
	StreamInfo: "https://mediation-tv.orange.fr/all/live/v3/applications/PC/users/me/channels/{channel_id}/stream?terminalModel=WEB_PC",
	Streams:    "https://mediation-tv.orange.fr/all/live/v3/applications/PC/channels?mco=ORE",
	Programs:   "https://mediation-tv.orange.fr/all/live/v3/applications/PC/programs?period={period}&mco=ORE",
}
