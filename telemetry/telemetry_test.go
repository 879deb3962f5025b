package telemetry

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetup(t *testing.T) {
	Convey("Given an empty dsn", t, func() {
		So(Setup(""), ShouldBeNil)

		Convey("Reporting stays disabled and capturing is harmless", func() {
			So(Enabled(), ShouldBeFalse)
			So(func() { CaptureError(errors.New("boom"), map[string]string{"command": "export"}) }, ShouldNotPanic)
			So(Flush, ShouldNotPanic)
		})
	})

	Convey("Given a malformed dsn", t, func() {
		So(Setup("not a dsn"), ShouldNotBeNil)
		So(Enabled(), ShouldBeFalse)
	})
}

func TestScrub(t *testing.T) {
	Convey("Session material is removed from events", t, func() {
		event := &sentry.Event{
			User: sentry.User{IPAddress: "10.0.0.1"},
			Request: &sentry.Request{
				Headers: map[string]string{"Cookie": "wassup=abc", "Accept": "*/*"},
				Cookies: "wassup=abc",
			},
		}

		scrubbed := scrub(event)
		So(scrubbed.User.IPAddress, ShouldBeEmpty)
		So(scrubbed.Request.Headers["Cookie"], ShouldEqual, "[redacted]")
		So(scrubbed.Request.Headers["Accept"], ShouldEqual, "*/*")
		So(scrubbed.Request.Cookies, ShouldBeEmpty)
		So(scrub(nil), ShouldBeNil)
	})
}
