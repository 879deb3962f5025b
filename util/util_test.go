package util

import (
	"testing"

	"github.com/lineup-cli/lineup/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
		Convey("Should keep provider ids readable", func() {
			So(SanitizeFilename("orange.fr"), ShouldEqual, "orange.fr")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "channel", "channels"), ShouldEqual, "1 channel")
		So(Quantify(2, "channel", "channels"), ShouldEqual, "2 channels")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth is always positive", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete removes files and directories", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/lineup/exports", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/lineup/exports/streams.json", []byte("{}"), 0o644), ShouldBeNil)

		So(Delete("/tmp/lineup/exports/streams.json"), ShouldBeNil)
		So(lo.Must(fs.Exists("/tmp/lineup/exports/streams.json")), ShouldBeFalse)

		So(Delete("/tmp/lineup"), ShouldBeNil)
		So(lo.Must(fs.Exists("/tmp/lineup")), ShouldBeFalse)

		So(Delete("/tmp/missing"), ShouldNotBeNil)
	})
}
