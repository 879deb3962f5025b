package source

import (
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

// TimeLayout is ISO-8601 with a numeric offset, also for UTC ("+00:00" rather than "Z").
const TimeLayout = "2006-01-02T15:04:05.999999-07:00"

// Program is a single guide entry.
type Program struct {
	Start       time.Time         `json:"start"`
	Stop        time.Time         `json:"stop"`
	Title       string            `json:"title"`
	Subtitle    mo.Option[string] `json:"subtitle" jsonschema:"type=string"`
	Episode     mo.Option[string] `json:"episode" jsonschema:"type=string"`
	Description string            `json:"description"`
	Genre       string            `json:"genre"`
	Image       mo.Option[string] `json:"image" jsonschema:"type=string"`
}

func (p *Program) String() string {
	return p.Title
}

// MarshalJSON renders start and stop with TimeLayout.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start       string            `json:"start"`
		Stop        string            `json:"stop"`
		Title       string            `json:"title"`
		Subtitle    mo.Option[string] `json:"subtitle"`
		Episode     mo.Option[string] `json:"episode"`
		Description string            `json:"description"`
		Genre       string            `json:"genre"`
		Image       mo.Option[string] `json:"image"`
	}{
		Start:       p.Start.Format(TimeLayout),
		Stop:        p.Stop.Format(TimeLayout),
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Episode:     p.Episode,
		Description: p.Description,
		Genre:       p.Genre,
		Image:       p.Image,
	})
}

// EPG maps a channel id to its programs in chronological order.
type EPG map[string][]*Program

// Len returns the total number of programs across channels.
func (e EPG) Len() int {
	var n int
	for _, programs := range e {
		n += len(programs)
	}
	return n
}
