package journal

import (
	"testing"
	"time"

	"github.com/lineup-cli/lineup/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestJournal(t *testing.T) {
	Convey("Given an export record", t, func() {
		So(Clear(), ShouldBeNil)

		record := &Record{
			RunID:    "0b9f2a4e-run",
			Provider: "orange.fr",
			Kind:     "streams",
			Count:    120,
			At:       time.Now(),
			Duration: 2 * time.Second,
		}

		Convey("When saving the record", func() {
			err := Save(record)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the record should be saved", func() {
					records, err := Get()
					So(err, ShouldBeNil)
					So(records, ShouldContainKey, "orange.fr (streams)")
					So(records["orange.fr (streams)"].Count, ShouldEqual, 120)
				})

				Convey("And a later export of the same kind replaces it", func() {
					So(Save(&Record{Provider: "orange.fr", Kind: "streams", Count: 118, At: time.Now()}), ShouldBeNil)

					records, err := Get()
					So(err, ShouldBeNil)
					So(records, ShouldHaveLength, 1)
					So(records["orange.fr (streams)"].Count, ShouldEqual, 118)
				})
			})
		})

		Convey("When saving records of several providers", func() {
			So(Save(&Record{Provider: "orange.re", Kind: "epg"}), ShouldBeNil)
			So(Save(&Record{Provider: "orange.fr", Kind: "streams"}), ShouldBeNil)
			So(Save(&Record{Provider: "orange.fr", Kind: "epg"}), ShouldBeNil)

			Convey("Then they are sorted by provider and kind", func() {
				records, err := Sorted()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 3)
				So(records[0].encode(), ShouldEqual, "orange.fr (epg)")
				So(records[1].encode(), ShouldEqual, "orange.fr (streams)")
				So(records[2].encode(), ShouldEqual, "orange.re (epg)")
			})
		})
	})
}
