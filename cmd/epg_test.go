package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/lineup-cli/lineup/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatProgram(t *testing.T) {
	Convey("Given an episode", t, func() {
		start := time.Date(2024, 3, 11, 20, 5, 0, 0, time.UTC)
		p := &source.Program{
			Start:       start,
			Stop:        start.Add(50 * time.Minute),
			Title:       "The Show",
			Subtitle:    mo.Some("Pilot"),
			Episode:     mo.Some("S2E5"),
			Description: strings.Repeat("word ", 40),
			Genre:       "Drama",
		}

		Convey("The summary line carries the schedule and the episode", func() {
			line := formatProgram(p, 80, false)
			So(line, ShouldContainSubstring, "Mon 20:05-20:55")
			So(line, ShouldContainSubstring, "The Show")
			So(line, ShouldContainSubstring, "S2E5")
			So(line, ShouldContainSubstring, "Pilot")
			So(line, ShouldNotContainSubstring, "\n")
		})

		Convey("Descriptions are wrapped to the terminal width", func() {
			text := formatProgram(p, 40, true)
			lines := strings.Split(text, "\n")
			So(len(lines), ShouldBeGreaterThan, 2)
			So(lines[1], ShouldStartWith, "        word")
		})
	})
}
