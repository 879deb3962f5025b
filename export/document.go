// Package export writes channel and guide documents for the host IPTV manager.
package export

import (
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/lineup-cli/lineup/source"
)

// Version is the IPTV manager document version.
const Version = 1

// Streams is the channel list document.
type Streams struct {
	Version int               `json:"version" jsonschema:"const=1"`
	Streams []*source.Channel `json:"streams"`
}

// Guide is the program guide document.
type Guide struct {
	Version int        `json:"version" jsonschema:"const=1"`
	EPG     source.EPG `json:"epg" jsonschema:"description=Programs keyed by channel id."`
}

func NewStreams(channels []*source.Channel) *Streams {
	if channels == nil {
		channels = []*source.Channel{}
	}
	return &Streams{Version: Version, Streams: channels}
}

func NewGuide(epg source.EPG) *Guide {
	if epg == nil {
		epg = source.EPG{}
	}
	return &Guide{Version: Version, EPG: epg}
}

// Schema returns the JSON schema of a document.
func Schema(document any) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "channel", "program", "streams", "guide":
			return "lineup." + name
		}

		return name
	}

	return reflector.Reflect(document)
}
