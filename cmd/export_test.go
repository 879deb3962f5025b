package cmd

import (
	"testing"

	"github.com/lineup-cli/lineup/export"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExportTargets(t *testing.T) {
	Convey("Given both documents requested into a directory", t, func() {
		targets := exportTargets{streams: true, epg: true, dir: "/srv/iptv"}

		Convey("Each provider gets one file per kind", func() {
			So(targets.path("orange.fr", export.KindStreams), ShouldEqual, "/srv/iptv/orange.fr.streams.json")
			So(targets.path("orange.re", export.KindEPG), ShouldEqual, "/srv/iptv/orange.re.epg.json")
		})
	})

	Convey("Given only the guide requested on stdout", t, func() {
		targets := exportTargets{epg: true, stdout: true}

		So(targets.path("orange.fr", export.KindStreams), ShouldBeEmpty)
		So(targets.path("orange.fr", export.KindEPG), ShouldEqual, export.Stdout)
	})
}
