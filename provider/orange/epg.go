package orange

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"
)

const (
	periodToday     = "today"
	programEpisode  = "EPISODE"
	coverFormatWide = "RATIO_16_9"
)

type chunk struct {
	start, end time.Time
}

// period formats the chunk the way the programs endpoint expects it.
// Bounds are epoch milliseconds; a chunk without both bounds asks for the current day.
func (c chunk) period() string {
	if c.start.IsZero() || c.end.IsZero() {
		return periodToday
	}
	return fmt.Sprintf("%d,%d", c.start.UnixMilli(), c.end.UnixMilli())
}

// chunks splits the guide window into contiguous, equally sized periods
// starting at local midnight PastDays before today.
func (t *Template) chunks() []chunk {
	loc := t.options.Location
	now := t.options.Now().In(loc)
	startDay := time.Date(now.Year(), now.Month(), now.Day()-t.options.PastDays, 0, 0, 0, 0, loc)

	days := t.options.PastDays + t.options.FutureDays
	size := 24 * time.Hour / time.Duration(t.options.ChunksPerDay)

	return lo.Times(days*t.options.ChunksPerDay, func(i int) chunk {
		start := startDay.Add(time.Duration(i) * size)
		return chunk{start: start, end: start.Add(size)}
	})
}

// EPG fetches every chunk of the guide window and groups programs by channel id.
// Programs keep the order of their chunks, then the order the backend returned them in.
func (t *Template) EPG(ctx context.Context) (source.EPG, error) {
	chunks := t.chunks()
	results := make([][]rawProgram, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.options.Concurrency)

	for i, c := range chunks {
		g.Go(func() error {
			period := c.period()

			var programs []rawProgram
			if err := t.get(gctx, expand(t.endpoints.Programs, placeholderPeriod, period), &programs); err != nil {
				return fmt.Errorf("fetch programs for period %s: %w", period, err)
			}

			log.Debugf("%s: %d programs for period %s", t.id, len(programs), period)
			results[i] = programs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	epg := make(source.EPG)
	for _, programs := range results {
		for _, raw := range programs {
			id := string(raw.ChannelID)
			epg[id] = append(epg[id], t.program(raw))
		}
	}

	log.Infof("%s: %d programs for %d channels", t.id, epg.Len(), len(epg))
	return epg, nil
}

func (t *Template) program(raw rawProgram) *source.Program {
	p := &source.Program{
		Start:       time.Unix(raw.DiffusionDate, 0).In(t.options.Location),
		Stop:        time.Unix(raw.DiffusionDate+raw.Duration, 0).In(t.options.Location),
		Title:       raw.Title,
		Subtitle:    mo.None[string](),
		Episode:     mo.None[string](),
		Image:       coverImage(raw.Covers),
		Description: raw.Synopsis,
		Genre:       raw.Genre,
	}

	if raw.GenreDetailed != nil && *raw.GenreDetailed != "" {
		p.Genre = *raw.GenreDetailed
	}

	if raw.ProgramType != programEpisode || raw.Season == nil {
		return p
	}

	if raw.Season.Serie != nil {
		p.Title = raw.Season.Serie.Title
		p.Subtitle = mo.Some(raw.Title)
	}
	p.Episode = episodeCode(raw.Season.Number, raw.EpisodeNumber)

	return p
}

// episodeCode renders S{season}E{episode}, keeping whichever half is known.
func episodeCode(season, episode *int) mo.Option[string] {
	var b strings.Builder
	if season != nil {
		fmt.Fprintf(&b, "S%d", *season)
	}
	if episode != nil {
		fmt.Fprintf(&b, "E%d", *episode)
	}

	if b.Len() == 0 {
		return mo.None[string]()
	}
	return mo.Some(b.String())
}

// coverImage returns the first cover when any cover is in the 16:9 format.
func coverImage(raw json.RawMessage) mo.Option[string] {
	var covers []rawCover
	if err := json.Unmarshal(raw, &covers); err != nil || len(covers) == 0 {
		return mo.None[string]()
	}

	if !lo.ContainsBy(covers, func(c rawCover) bool { return c.Format == coverFormatWide }) {
		return mo.None[string]()
	}
	return mo.Some(covers[0].URL)
}
