package drm

import (
	"errors"
	"testing"

	"github.com/lineup-cli/lineup/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Accepts display names in any case", func() {
			s, err := Parse("widevine")
			So(err, ShouldBeNil)
			So(s, ShouldResemble, Widevine)
		})

		Convey("Accepts key systems", func() {
			s, err := Parse("com.microsoft.playready")
			So(err, ShouldBeNil)
			So(s, ShouldResemble, PlayReady)
		})

		Convey("Rejects anything else", func() {
			_, err := Parse("clearkey")
			So(errors.Is(err, ErrUnknownSystem), ShouldBeTrue)
		})
	})
}

func TestResolvers(t *testing.T) {
	Convey("Static resolves to its system", t, func() {
		s, err := Static(PlayReady).Resolve()
		So(err, ShouldBeNil)
		So(s.KeySystem, ShouldEqual, "com.microsoft.playready")
	})

	Convey("Configured follows the setting", t, func() {
		viper.Set(key.DRMSystem, "PlayReady")
		defer viper.Set(key.DRMSystem, "widevine")

		s, err := Configured{}.Resolve()
		So(err, ShouldBeNil)
		So(s, ShouldResemble, PlayReady)
	})
}
