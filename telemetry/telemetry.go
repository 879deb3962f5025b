// Package telemetry reports unhandled command errors to Sentry.
//
// Reporting stays off until Setup is called with a non-empty DSN, and every function is a
// no-op while it is off.
package telemetry

import (
	"fmt"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lineup-cli/lineup/constant"
	"github.com/lineup-cli/lineup/log"
)

const flushTimeout = 2 * time.Second

var enabled bool

// Setup initializes the Sentry client. An empty dsn disables reporting.
func Setup(dsn string) error {
	if dsn == "" {
		log.Debug("sentry dsn not set, error reporting disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          constant.Lineup + "@" + constant.Version,
		AttachStacktrace: true,
		Tags: map[string]string{
			"os":   runtime.GOOS,
			"arch": runtime.GOARCH,
		},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrub(event)
		},
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}

	enabled = true
	return nil
}

// Enabled reports whether errors are sent.
func Enabled() bool {
	return enabled
}

// CaptureError sends err with the given tags.
func CaptureError(err error, tags map[string]string) {
	if !enabled || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered.
func Flush() {
	if enabled {
		sentry.Flush(flushTimeout)
	}
}

// scrub drops session material before an event leaves the machine.
func scrub(event *sentry.Event) *sentry.Event {
	if event == nil {
		return nil
	}

	event.User.IPAddress = ""
	if event.Request != nil {
		for k := range event.Request.Headers {
			switch k {
			case "Authorization", "Cookie":
				event.Request.Headers[k] = "[redacted]"
			}
		}
		event.Request.Cookies = ""
	}

	return event
}
