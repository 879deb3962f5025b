package cmd

import (
	"errors"
	"testing"

	"github.com/lineup-cli/lineup/config"
	"github.com/lineup-cli/lineup/drm"
	"github.com/lineup-cli/lineup/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseConfigValue(t *testing.T) {
	Convey("Values take the type of the default", t, func() {
		v, err := parseConfigValue(config.Default[key.EPGFutureDays], []string{"7"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 7)

		v, err = parseConfigValue(config.Default[key.NetworkTLSFingerprint], []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseConfigValue(config.Default[key.DefaultSources], []string{"orange.fr", "orange.re"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"orange.fr", "orange.re"})
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parseConfigValue(config.Default[key.EPGPastDays], []string{"yesterday"})
		So(err, ShouldNotBeNil)

		_, err = parseConfigValue(config.Default[key.EPGPastDays], []string{"-1"})
		So(err, ShouldNotBeNil)

		_, err = parseConfigValue(config.Default[key.LogsJson], []string{"maybe"})
		So(err, ShouldNotBeNil)

		_, err = parseConfigValue(config.Default[key.DRMSystem], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestValidateConfigValue(t *testing.T) {
	Convey("Domain values are checked before being written", t, func() {
		So(validateConfigValue(key.DRMSystem, "playready"), ShouldBeNil)
		So(errors.Is(validateConfigValue(key.DRMSystem, "fairplay"), drm.ErrUnknownSystem), ShouldBeTrue)

		So(validateConfigValue(key.ScheduleCron, "0 4 * * *"), ShouldBeNil)
		So(validateConfigValue(key.ScheduleCron, "at dawn"), ShouldNotBeNil)

		So(validateConfigValue(key.DefaultSources, []string{"Orange Réunion"}), ShouldBeNil)
		So(validateConfigValue(key.DefaultSources, []string{"sfr"}), ShouldNotBeNil)

		So(validateConfigValue(key.IconsVariant, "nerd"), ShouldBeNil)
		So(validateConfigValue(key.IconsVariant, "ascii-art"), ShouldNotBeNil)

		So(validateConfigValue(key.EPGChunksPerDay, 0), ShouldNotBeNil)
		So(validateConfigValue(key.EPGConcurrency, 4), ShouldBeNil)
		So(validateConfigValue(key.LogsLevel, "debug"), ShouldBeNil)
	})
}
