package style

import (
	"testing"

	"github.com/lineup-cli/lineup/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Renderers keep the text", t, func() {
		for _, render := range []func(string) string{Faint, Bold, Italic, Fg(color.Red)} {
			So(render("TF1"), ShouldContainSubstring, "TF1")
		}
	})

	Convey("Tags and titles are padded", t, func() {
		So(Tag(color.White, color.Purple)("  1"), ShouldContainSubstring, "   1 ")
		So(Title("orange.fr"), ShouldContainSubstring, " orange.fr ")
	})
}
