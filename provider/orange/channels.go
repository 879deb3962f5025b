package orange

import (
	"context"
	"fmt"
	"strings"

	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Channels returns the catalog channels that are both playable outside the home
// network and part of at least one bouquet the session is entitled to.
func (t *Template) Channels(ctx context.Context) ([]*source.Channel, error) {
	var user rawUser
	if err := t.get(ctx, t.endpoints.Users, &user); err != nil {
		return nil, fmt.Errorf("fetch entitled bouquets: %w", err)
	}

	var catalog []rawChannel
	if err := t.get(ctx, t.endpoints.Streams, &catalog); err != nil {
		return nil, fmt.Errorf("fetch channel catalog: %w", err)
	}

	entitled := lo.Keyify(user.Bouquets)
	available := lo.Filter(catalog, func(c rawChannel, _ int) bool {
		if !c.NomadismAllowed {
			return false
		}
		return lo.SomeBy(c.Bouquets, func(b flexID) bool {
			_, ok := entitled[b]
			return ok
		})
	})

	log.Infof("%s: %d channels in catalog, %d available to the session", t.id, len(catalog), len(available))

	return lo.Map(available, func(c rawChannel, _ int) *source.Channel {
		return t.channel(c)
	}), nil
}

func (t *Template) channel(c rawChannel) *source.Channel {
	id := string(c.ID)

	logo := mo.None[string]()
	if c.Logos.Square != nil {
		logo = mo.Some(strings.ReplaceAll(*c.Logos.Square, "%2F/", "%2F"))
	}

	return &source.Channel{
		ID:     id,
		Name:   c.Name,
		Preset: c.ZappingNumber,
		Logo:   logo,
		Stream: expand(t.endpoints.DeepLink, placeholderChannelID, id),
	}
}
