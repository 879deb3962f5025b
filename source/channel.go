package source

import "github.com/samber/mo"

// Channel is a live channel as listed to the host.
type Channel struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Preset int               `json:"preset"`
	Logo   mo.Option[string] `json:"logo" jsonschema:"type=string"`
	// Stream is the deep link the host calls back to start playback.
	Stream string `json:"stream"`
}

func (c *Channel) String() string {
	return c.Name
}
