package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lineup-cli/lineup/constant"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestGetJSON(t *testing.T) {
	Convey("Given an upstream API", t, func() {
		var seen *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r
			switch r.URL.Path {
			case "/ok":
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"bouquets":["A","B"]}`))
			case "/forbidden":
				w.WriteHeader(http.StatusForbidden)
			case "/garbage":
				_, _ = w.Write([]byte(`<html>`))
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))
		defer server.Close()

		client := New(WithDoer(server.Client()))
		ctx := context.Background()

		Convey("A 200 response is decoded", func() {
			var body struct {
				Bouquets []string `json:"bouquets"`
			}
			header := http.Header{}
			header.Set("User-Agent", "UA1")
			header.Set("Host", "mediation.example")

			err := client.GetJSON(ctx, server.URL+"/ok", header, &body)
			So(err, ShouldBeNil)
			So(body.Bouquets, ShouldResemble, []string{"A", "B"})

			Convey("And the headers are shaped as requested", func() {
				So(seen.Header.Get("User-Agent"), ShouldEqual, "UA1")
				So(seen.Host, ShouldEqual, "mediation.example")
			})
		})

		Convey("A 403 response is a StatusError", func() {
			err := client.GetJSON(ctx, server.URL+"/forbidden", nil, &struct{}{})
			So(err, ShouldNotBeNil)
			So(IsStatus(err, http.StatusForbidden), ShouldBeTrue)
			So(IsStatus(err, http.StatusNotFound), ShouldBeFalse)
		})

		Convey("A 500 response is a StatusError too", func() {
			err := client.GetJSON(ctx, server.URL+"/boom", nil, &struct{}{})
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("A malformed body is a decode error", func() {
			err := client.GetJSON(ctx, server.URL+"/garbage", nil, &struct{}{})
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("A stored session cookie is forwarded", func() {
			withCookie := New(WithDoer(server.Client()), WithCookie("wassup=abc"))
			err := withCookie.GetJSON(ctx, server.URL+"/ok", nil, &struct{}{})
			So(err, ShouldBeNil)
			So(seen.Header.Get("Cookie"), ShouldEqual, "wassup=abc")
		})
	})

	Convey("Given an unreachable upstream", t, func() {
		client := New(WithDoer(failingDoer{}))
		err := client.GetJSON(context.Background(), "https://unreachable.example/", nil, &struct{}{})

		So(errors.Is(err, ErrTransport), ShouldBeTrue)
		So(errors.Is(err, ErrDecode), ShouldBeFalse)
	})
}

func TestNewHTTP(t *testing.T) {
	Convey("NewHTTP", t, func() {
		Convey("Uses the stock transport by default", func() {
			c := NewHTTP(5*time.Second, false)
			So(c.Timeout, ShouldEqual, 5*time.Second)
			_, ok := c.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
		})

		Convey("Uses the fingerprint transport on demand", func() {
			c := NewHTTP(time.Second, true)
			_, ok := c.Transport.(*fingerprintTransport)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestRandomUserAgent(t *testing.T) {
	Convey("RandomUserAgent picks from the pool", t, func() {
		for i := 0; i < 20; i++ {
			So(lo.Contains(constant.UserAgents, RandomUserAgent()), ShouldBeTrue)
		}
	})
}
