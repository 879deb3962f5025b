package orange

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/network"
	"github.com/lineup-cli/lineup/source"
)

const (
	mimeTypeDASH     = "application/xml+dash"
	manifestTypeDASH = "mpd"
	licensePostData  = "R{SSM}"
)

// StreamInfo resolves the manifest and license parameters of a channel.
// A 403 from the backend means the session may not play the channel and yields a denied result.
func (t *Template) StreamInfo(ctx context.Context, channelID string) (source.StreamResult, error) {
	endpoint := expand(t.endpoints.StreamInfo, placeholderChannelID, url.PathEscape(channelID))

	var raw rawStreamInfo
	err := t.get(ctx, endpoint, &raw)
	if network.IsStatus(err, http.StatusForbidden) {
		log.Infof("%s: access to channel %s denied", t.id, channelID)
		return source.Denied(), nil
	}
	if err != nil {
		return source.StreamResult{}, fmt.Errorf("fetch stream info of channel %s: %w", channelID, err)
	}

	system, err := t.drm.Resolve()
	if err != nil {
		return source.StreamResult{}, err
	}

	var licenseURL string
	for _, p := range raw.ProtectionData {
		if p.KeySystem == system.KeySystem {
			licenseURL = p.LaURL
		}
	}
	if licenseURL == "" {
		return source.StreamResult{}, fmt.Errorf("%w: channel %s, key system %s", source.ErrNoLicenseServer, channelID, system.KeySystem)
	}

	parsed, err := url.Parse(licenseURL)
	if err != nil {
		return source.StreamResult{}, errors.Join(source.ErrNoLicenseServer, fmt.Errorf("parse license server url: %w", err))
	}

	license := source.License{
		ServerURL: licenseURL,
		Headers: []source.Header{
			{Key: "Content-Type", Value: ""},
			{Key: "User-Agent", Value: t.options.UserAgent()},
			{Key: "Host", Value: parsed.Host},
		},
		PostData: licensePostData,
	}

	info := &source.StreamInfo{
		Path:         raw.URL,
		MimeType:     mimeTypeDASH,
		ManifestType: manifestTypeDASH,
		DRM:          strings.ToLower(system.Name),
		LicenseType:  system.KeySystem,
		LicenseKey:   license.Key(),
	}

	log.Debugf("%s: stream info of channel %s: %+v", t.id, channelID, *info)
	return source.Granted(info), nil
}
