package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestObserve(t *testing.T) {
	Convey("Given upstream requests", t, func() {
		ObserveStatus("api.example", 200, 10*time.Millisecond)
		ObserveStatus("api.example", 200, 20*time.Millisecond)
		ObserveRequest("api.example", StatusError, time.Second)

		Convey("They are counted per status", func() {
			So(testutil.ToFloat64(UpstreamRequests.WithLabelValues("api.example", "200")), ShouldEqual, 2)
			So(testutil.ToFloat64(UpstreamRequests.WithLabelValues("api.example", StatusError)), ShouldEqual, 1)
		})
	})

	Convey("Given a finished export", t, func() {
		at := time.Unix(1700000000, 0)
		ObserveExport("orange.fr", "streams", 42, at)

		So(testutil.ToFloat64(ExportedItems.WithLabelValues("orange.fr", "streams")), ShouldEqual, 42)
		So(testutil.ToFloat64(LastExport.WithLabelValues("orange.fr", "streams")), ShouldEqual, 1700000000)

		Convey("The textfile contains the series", func() {
			path := filepath.Join(t.TempDir(), "lineup.prom")
			So(WriteTextfile(path), ShouldBeNil)

			content, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "lineup_exported_items")
		})
	})
}
