package orange

import (
	"bytes"
	"encoding/json"
)

// flexID accepts identifiers encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type rawUser struct {
	Bouquets []flexID `json:"bouquets"`
}

type rawChannel struct {
	ID              flexID   `json:"id"`
	Name            string   `json:"name"`
	ZappingNumber   int      `json:"zappingNumber"`
	NomadismAllowed bool     `json:"nomadismAllowed"`
	Bouquets        []flexID `json:"bouquets"`
	Logos           struct {
		Square *string `json:"square"`
	} `json:"logos"`
}

type rawStreamInfo struct {
	URL            string `json:"url"`
	ProtectionData []struct {
		KeySystem string `json:"keySystem"`
		LaURL     string `json:"laUrl"`
	} `json:"protectionData"`
}

type rawProgram struct {
	ChannelID     flexID `json:"channelId"`
	Title         string `json:"title"`
	ProgramType   string `json:"programType"`
	EpisodeNumber *int   `json:"episodeNumber"`
	Season        *struct {
		Number *int `json:"number"`
		Serie  *struct {
			Title string `json:"title"`
		} `json:"serie"`
	} `json:"season"`
	// Covers is usually a list but may be null or an object.
	Covers        json.RawMessage `json:"covers"`
	DiffusionDate int64           `json:"diffusionDate"`
	Duration      int64           `json:"duration"`
	Synopsis      string          `json:"synopsis"`
	Genre         string          `json:"genre"`
	GenreDetailed *string         `json:"genreDetailed"`
}

type rawCover struct {
	Format string `json:"format"`
	URL    string `json:"url"`
}
