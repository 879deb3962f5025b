package provider

import (
	"errors"
	"testing"

	"github.com/lineup-cli/lineup/config"
	"github.com/lineup-cli/lineup/drm"
	"github.com/lineup-cli/lineup/filesystem"
	"github.com/lineup-cli/lineup/key"
	"github.com/lineup-cli/lineup/provider/orange"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting a provider by id or name", t, func() {
		byID, ok := Get("ORANGE.RE")
		So(ok, ShouldBeTrue)
		So(byID.Endpoints, ShouldResemble, orange.Reunion)

		byName, ok := Get("orange france")
		So(ok, ShouldBeTrue)
		So(byName.ID, ShouldEqual, "orange.fr")
	})
}

func TestBuiltins(t *testing.T) {
	Convey("Builtins lists both Orange variants", t, func() {
		ids := []string{}
		for _, p := range Builtins() {
			ids = append(ids, p.ID)
		}
		So(ids, ShouldResemble, []string{"orange.fr", "orange.re"})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest ranks close ids first", t, func() {
		So(Suggest("canal"), ShouldBeEmpty)
		So(Suggest("orangefr"), ShouldResemble, []string{"orange.fr"})
		So(Suggest("fr"), ShouldResemble, []string{"orange.fr"})
		So(Suggest("orange"), ShouldHaveLength, 2)
	})
}

func TestEnvFromConfig(t *testing.T) {
	Convey("Given the default settings", t, func() {
		viper.Reset()
		So(config.Setup(), ShouldBeNil)

		p, _ := Get("orange.fr")
		env, err := EnvFromConfig(p)
		So(err, ShouldBeNil)

		Convey("The EPG window follows the settings", func() {
			So(env.Options.PastDays, ShouldEqual, 1)
			So(env.Options.FutureDays, ShouldEqual, 3)
			So(env.Options.ChunksPerDay, ShouldEqual, 2)
			So(env.Options.Concurrency, ShouldEqual, 1)
		})

		Convey("Widevine is the active DRM", func() {
			system, err := env.DRM.Resolve()
			So(err, ShouldBeNil)
			So(system, ShouldResemble, drm.Widevine)
		})

		Convey("A source is created for the provider", func() {
			s := p.CreateSource(env)
			So(s.ID(), ShouldEqual, "orange.fr")
			So(s.Name(), ShouldEqual, "Orange France")
		})
	})

	Convey("Given an unknown DRM system", t, func() {
		viper.Reset()
		So(config.Setup(), ShouldBeNil)
		viper.Set(key.DRMSystem, "fairplay")

		p, _ := Get("orange.re")
		_, err := EnvFromConfig(p)
		So(errors.Is(err, drm.ErrUnknownSystem), ShouldBeTrue)
	})
}
