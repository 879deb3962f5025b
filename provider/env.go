package provider

import (
	"time"

	"github.com/lineup-cli/lineup/auth"
	"github.com/lineup-cli/lineup/drm"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/network"
	"github.com/lineup-cli/lineup/provider/orange"
	"github.com/spf13/viper"
)

// Env holds the capabilities a source is built with.
type Env struct {
	Client  network.Client
	DRM     drm.Resolver
	Options orange.Options
}

// EnvFromConfig builds the environment of p from the current settings and its stored session.
func EnvFromConfig(p *Provider) (Env, error) {
	system, err := drm.Configured{}.Resolve()
	if err != nil {
		return Env{}, err
	}

	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	options := []network.Option{
		network.WithDoer(network.NewHTTP(timeout, viper.GetBool(key.NetworkTLSFingerprint))),
	}

	session, err := auth.GetSession(p.ID)
	if err != nil {
		log.Warnf("%s: keyring unavailable, continuing without a session: %v", p.ID, err)
	} else if cookie, ok := session.Get(); ok {
		options = append(options, network.WithCookie(cookie))
	}

	return Env{
		Client: network.New(options...),
		DRM:    drm.Static(system),
		Options: orange.Options{
			PastDays:     viper.GetInt(key.EPGPastDays),
			FutureDays:   viper.GetInt(key.EPGFutureDays),
			ChunksPerDay: viper.GetInt(key.EPGChunksPerDay),
			Concurrency:  viper.GetInt(key.EPGConcurrency),
		},
	}, nil
}
