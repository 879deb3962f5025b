// Package orange implements the Orange TV backend family. Every variant speaks the same
// API and only differs by its endpoint URLs.
package orange

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lineup-cli/lineup/drm"
	"github.com/lineup-cli/lineup/network"
	"github.com/lineup-cli/lineup/source"
)

// DefaultChunksPerDay is the number of guide requests issued per displayed day.
const DefaultChunksPerDay = 2

// Options tune guide windowing and request shaping.
type Options struct {
	PastDays     int
	FutureDays   int
	ChunksPerDay int
	// Concurrency bounds in-flight guide requests. 1 fetches chunks one after another.
	Concurrency int
	// Location is the zone used for day boundaries and guide timestamps.
	Location *time.Location
	// Now and UserAgent are swappable for tests.
	Now       func() time.Time
	UserAgent func() string
}

func (o Options) withDefaults() Options {
	if o.PastDays < 0 {
		o.PastDays = 0
	}
	if o.FutureDays < 0 {
		o.FutureDays = 0
	}
	if o.ChunksPerDay <= 0 {
		o.ChunksPerDay = DefaultChunksPerDay
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.UserAgent == nil {
		o.UserAgent = network.RandomUserAgent
	}
	return o
}

// Template is a source.Source backed by an Orange API variant.
type Template struct {
	id, name  string
	endpoints Endpoints
	client    network.Client
	drm       drm.Resolver
	options   Options
}

var _ source.Source = (*Template)(nil)

// New creates a Template for the given endpoints.
func New(id, name string, endpoints Endpoints, client network.Client, resolver drm.Resolver, options Options) *Template {
	if endpoints.DeepLink == "" {
		endpoints.DeepLink = DefaultDeepLink
	}

	return &Template{
		id:        id,
		name:      name,
		endpoints: endpoints,
		client:    client,
		drm:       resolver,
		options:   options.withDefaults(),
	}
}

func (t *Template) ID() string {
	return t.id
}

func (t *Template) Name() string {
	return t.name
}

// Endpoints returns the URL templates the source was built with.
func (t *Template) Endpoints() Endpoints {
	return t.endpoints
}

// get fetches rawURL with a fresh user agent and an explicit Host header.
func (t *Template) get(ctx context.Context, rawURL string, v any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse endpoint %q: %w", rawURL, err)
	}

	header := http.Header{}
	header.Set("User-Agent", t.options.UserAgent())
	header.Set("Host", u.Host)

	return t.client.GetJSON(ctx, rawURL, header, v)
}

func expand(template, placeholder, value string) string {
	return strings.ReplaceAll(template, placeholder, value)
}
