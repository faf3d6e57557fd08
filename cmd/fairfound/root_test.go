package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/stubapi"
	"github.com/smartystreets/goconvey/convey"
)

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestCLIWithMockData(t *testing.T) {
	convey.Convey("Given the CLI in mock mode", t, func() {
		_ = os.Setenv("FAIRFOUND_MOCK_DELAY_MS", "0")
		defer func() { _ = os.Unsetenv("FAIRFOUND_MOCK_DELAY_MS") }()

		convey.Convey("When listing categories", func() {
			out, _, err := run("--mock", "categories")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "DevOps Engineer")
		})

		convey.Convey("When showing the fairfound board", func() {
			out, _, err := run("--mock", "leaderboard", "--board", "fairfound")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "FairFound (all)")
			convey.So(out, convey.ShouldContainSubstring, "Michael Chen")
			convey.So(out, convey.ShouldContainSubstring, "Showing sample rankings")
		})

		convey.Convey("When the board is unknown", func() {
			_, _, err := run("--mock", "leaderboard", "--board", "upwork")

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, `unknown board "upwork"`)
		})

		convey.Convey("When comparing two profiles", func() {
			out, _, err := run("--mock", "compare", "https://x.com/alice", "https://x.com/bob")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "alice scores higher overall")
		})

		convey.Convey("When a URL is invalid", func() {
			_, _, err := run("--mock", "compare", "not-a-url", "https://x.com/bob")

			convey.So(errors.Is(err, compare.ErrInvalidURL), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, compare.MsgInvalidURL)
		})

		convey.Convey("When compare gets one argument", func() {
			_, _, err := run("--mock", "compare", "https://x.com/alice")

			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestCLIWithBackend(t *testing.T) {
	convey.Convey("Given the CLI against a backend", t, func() {
		srv := httptest.NewServer(stubapi.New().Handler())
		defer srv.Close()
		api := srv.URL + stubapi.Prefix

		convey.Convey("When showing a filtered leaderboard", func() {
			out, _, err := run("--api", api, "leaderboard", "--category", "Data Scientist", "--board", "marketplace")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "Marketplace (Data Scientist)")
			convey.So(out, convey.ShouldContainSubstring, "Priya Patel")
			convey.So(out, convey.ShouldNotContainSubstring, "Showing sample rankings")
			convey.So(out, convey.ShouldNotContainSubstring, "Sarah Johnson")
		})

		convey.Convey("When comparing known profiles", func() {
			out, _, err := run("--api", api, "compare", "https://x.com/emily-davis", "https://x.com/lisa-anderson")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "Emily Davis scores higher overall")
			convey.So(out, convey.ShouldNotContainSubstring, "Estimated from profile URLs")
		})
	})

	convey.Convey("Given an unreachable backend", t, func() {
		srv := httptest.NewServer(stubapi.New().Handler())
		srv.Close()

		out, _, err := run("--api", srv.URL+stubapi.Prefix, "compare", "https://x.com/alice", "https://x.com/bob")

		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "Estimated from profile URLs")
	})

	convey.Convey("Given an invalid API URL", t, func() {
		_, _, err := run("--api", "not a url", "categories")

		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "invalid flags")
	})
}
