// Package provider manages the built-in TV backends.
package provider

import (
	"strings"

	"github.com/lineup-cli/lineup/provider/orange"
	"github.com/lineup-cli/lineup/source"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Provider represents a TV backend.
type Provider struct {
	ID        string
	Name      string
	Country   string
	Endpoints orange.Endpoints
}

func (p *Provider) String() string {
	return p.Name
}

// CreateSource binds the provider to an environment.
func (p *Provider) CreateSource(env Env) source.Source {
	return orange.New(p.ID, p.Name, p.Endpoints, env.Client, env.DRM, env.Options)
}

var builtins = []*Provider{
	{
		ID:        "orange.fr",
		Name:      "Orange France",
		Country:   "FR",
		Endpoints: orange.France,
	},
	{
		ID:        "orange.re",
		Name:      "Orange Réunion",
		Country:   "RE",
		Endpoints: orange.Reunion,
	},
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return slices.Clone(builtins)
}

// Get finds a provider by id or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(builtins, func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// Suggest returns the ids of providers resembling name, closest first.
func Suggest(name string) []string {
	ids := lo.Map(builtins, func(p *Provider, _ int) string { return p.ID })

	ranks := fuzzy.RankFindNormalizedFold(name, ids)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}
