package source

import (
	"strings"

	"github.com/samber/mo"
)

// StreamInfo describes how the player opens a channel.
type StreamInfo struct {
	Path         string `json:"path"`
	MimeType     string `json:"mime_type"`
	ManifestType string `json:"manifest_type"`
	DRM          string `json:"drm"`
	LicenseType  string `json:"license_type"`
	LicenseKey   string `json:"license_key"`
}

// StreamResult is either a granted StreamInfo or an entitlement denial.
type StreamResult struct {
	info mo.Option[*StreamInfo]
}

// Denied is the result for a channel the session may not play.
func Denied() StreamResult {
	return StreamResult{info: mo.None[*StreamInfo]()}
}

// Granted wraps playable stream information.
func Granted(info *StreamInfo) StreamResult {
	return StreamResult{info: mo.Some(info)}
}

// IsDenied reports whether the provider refused access.
func (r StreamResult) IsDenied() bool {
	return r.info.IsAbsent()
}

// Info returns the stream information and whether access was granted.
func (r StreamResult) Info() (*StreamInfo, bool) {
	return r.info.Get()
}

// Header is a single key=value pair of the license request headers.
type Header struct {
	Key   string
	Value string
}

// License is the composite license descriptor understood by the adaptive stream player.
type License struct {
	ServerURL string
	Headers   []Header
	PostData  string
	Response  string
}

// Key renders the pipe-delimited license key: "{server}|{headers}|{post data}|{response}".
// Headers are joined with "&" in order and are not escaped.
func (l License) Key() string {
	headers := make([]string, len(l.Headers))
	for i, h := range l.Headers {
		headers[i] = h.Key + "=" + h.Value
	}

	return strings.Join([]string{
		l.ServerURL,
		strings.Join(headers, "&"),
		l.PostData,
		l.Response,
	}, "|")
}
