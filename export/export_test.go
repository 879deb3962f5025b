package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lineup-cli/lineup/filesystem"
	"github.com/lineup-cli/lineup/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type testSource struct {
	err error
}

func (testSource) Name() string { return "Test" }
func (testSource) ID() string   { return "test" }

func (s testSource) Channels(context.Context) ([]*source.Channel, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*source.Channel{
		{ID: "1", Name: "TF1", Preset: 1, Logo: mo.Some("https://img/tf1.png"), Stream: "plugin://x/1"},
		{ID: "3", Name: "Arte", Preset: 7, Logo: mo.None[string](), Stream: "plugin://x/3"},
	}, nil
}

func (testSource) StreamInfo(context.Context, string) (source.StreamResult, error) {
	return source.Denied(), nil
}

func (testSource) EPG(context.Context) (source.EPG, error) {
	start := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	return source.EPG{
		"1": {{Start: start, Stop: start.Add(time.Hour), Title: "News"}},
	}, nil
}

func TestRun(t *testing.T) {
	Convey("Given a source", t, func() {
		ctx := context.Background()

		Convey("When exporting both documents to files", func() {
			results, err := Run(ctx, &Options{
				Source:      testSource{},
				StreamsPath: "/exports/streams.json",
				EPGPath:     "/exports/epg.json",
			})
			So(err, ShouldBeNil)

			Convey("Then each document is reported", func() {
				So(results, ShouldHaveLength, 2)
				So(results[0].Kind, ShouldEqual, KindStreams)
				So(results[0].Count, ShouldEqual, 2)
				So(results[1].Kind, ShouldEqual, KindEPG)
				So(results[1].Count, ShouldEqual, 1)
			})

			Convey("And the streams envelope is versioned", func() {
				data := lo.Must(filesystem.API().ReadFile("/exports/streams.json"))

				var doc map[string]any
				So(json.Unmarshal(data, &doc), ShouldBeNil)
				So(doc["version"], ShouldEqual, 1.0)
				So(doc["streams"], ShouldHaveLength, 2)

				arte := doc["streams"].([]any)[1].(map[string]any)
				So(arte["logo"], ShouldBeNil)
			})

			Convey("And the guide envelope is keyed by channel", func() {
				data := lo.Must(filesystem.API().ReadFile("/exports/epg.json"))
				So(string(data), ShouldContainSubstring, `"epg":{"1":[{"start":"2024-03-10T20:00:00+00:00"`)
			})

			Convey("And no temporary file is left behind", func() {
				entries := lo.Must(filesystem.API().ReadDir("/exports"))
				So(entries, ShouldHaveLength, 2)
			})
		})

		Convey("When exporting the streams to stdout only", func() {
			var out bytes.Buffer
			results, err := Run(ctx, &Options{Source: testSource{}, StreamsPath: Stdout, Out: &out})
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(out.String(), ShouldStartWith, `{"version":1,"streams":[`)
		})

		Convey("When the source fails", func() {
			boom := errors.New("boom")
			_, err := Run(ctx, &Options{Source: testSource{err: boom}, StreamsPath: "/exports/streams.json"})
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})
}

func TestDocuments(t *testing.T) {
	Convey("Empty documents still carry their collections", t, func() {
		streams := lo.Must(json.Marshal(NewStreams(nil)))
		So(string(streams), ShouldEqual, `{"version":1,"streams":[]}`)

		guide := lo.Must(json.Marshal(NewGuide(nil)))
		So(string(guide), ShouldEqual, `{"version":1,"epg":{}}`)
	})

	Convey("Schemas describe the envelopes", t, func() {
		schema := lo.Must(json.Marshal(Schema(&Streams{})))
		So(string(schema), ShouldContainSubstring, `"streams"`)
		So(string(schema), ShouldContainSubstring, `"version"`)
	})
}
