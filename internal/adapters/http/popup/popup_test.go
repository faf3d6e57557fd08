package popup

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/okian/fairfound/internal/adapters/backend"
	service "github.com/okian/fairfound/internal/app"
	"github.com/okian/fairfound/internal/domain/mockdata"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// stubDeps fails the calls it has an error for and otherwise serves mock data.
type stubDeps struct {
	loadErr    error
	compareErr error
}

func (s stubDeps) LoadCategories(_ context.Context) ([]string, error) {
	return mockdata.Categories(), s.loadErr
}

func (s stubDeps) LoadLeaderboards(_ context.Context, category string) (types.Leaderboards, error) {
	return mockdata.Leaderboards(category), s.loadErr
}

func (s stubDeps) Compare(_ context.Context, url1, url2 string) (types.Comparison, error) {
	if s.compareErr != nil {
		return types.Comparison{}, s.compareErr
	}
	return mockdata.Comparison(url1, url2), nil
}

func newMux(deps Dependencies, opts ...Option) *http.ServeMux {
	h, err := NewHandler(deps, opts...)
	So(err, ShouldBeNil)
	mux := http.NewServeMux()
	Register(context.Background(), mux, h, nil)
	return mux
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return w
}

func postCompare(mux *http.ServeMux, url1, url2 string) *httptest.ResponseRecorder {
	form := url.Values{"url1": {url1}, "url2": {url2}, "category": {"all"}}
	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestPopupPage(t *testing.T) {
	Convey("Given a popup backed by a mock-only service", t, func() {
		synth := mockdata.NewSynthesizer(mockdata.WithDelay(0))
		svc := service.New(service.WithSource(service.NewMockSource(synth)))
		mux := newMux(svc)

		Convey("When the page is requested without parameters", func() {
			w := get(mux, "/")
			body := w.Body.String()

			Convey("Then the leaderboard tab and marketplace board are active", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
				So(body, ShouldContainSubstring, `id="leaderboard-tab" class="tab-content active"`)
				So(body, ShouldContainSubstring, `id="compare-tab" class="tab-content"`)
				So(body, ShouldContainSubstring, `id="marketplace-board" class="leaderboard-section active"`)
				So(body, ShouldContainSubstring, `id="fairfound-board" class="leaderboard-section"`)
			})

			Convey("Then both rankings are rendered with tiers", func() {
				So(body, ShouldContainSubstring, `<div class="rank gold">1</div>`)
				So(body, ShouldContainSubstring, `<div class="rank default">8</div>`)
				So(body, ShouldContainSubstring, "Sarah Johnson")
				So(body, ShouldContainSubstring, "Showing sample rankings")
			})

			Convey("Then all categories is selected", func() {
				So(body, ShouldContainSubstring, `<option value="all" selected>All Categories</option>`)
				So(body, ShouldContainSubstring, `<option value="DevOps Engineer">DevOps Engineer</option>`)
			})
		})

		Convey("When the compare tab and fairfound board are requested", func() {
			body := get(mux, "/?tab=compare&board=fairfound").Body.String()

			So(body, ShouldContainSubstring, `id="compare-tab" class="tab-content active"`)
			So(body, ShouldContainSubstring, `id="fairfound-board" class="leaderboard-section active"`)
			So(body, ShouldNotContainSubstring, `comparison-results`)
		})

		Convey("When a category is selected", func() {
			body := get(mux, "/?category=Data+Scientist").Body.String()

			So(body, ShouldContainSubstring, `<option value="Data Scientist" selected>Data Scientist</option>`)
			So(body, ShouldContainSubstring, "category=Data%20Scientist")
		})

		Convey("When an unknown path is requested", func() {
			So(get(mux, "/nope").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the stylesheet is requested", func() {
			w := get(mux, "/static/popup.css")

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, ".leaderboard-item")
		})

		Convey("When comparing an invalid URL", func() {
			body := postCompare(mux, "not-a-url", "https://x.com/bob").Body.String()

			Convey("Then the inline error is shown without results", func() {
				So(body, ShouldContainSubstring, "Please enter valid URLs")
				So(body, ShouldContainSubstring, `id="compare-tab" class="tab-content active"`)
				So(body, ShouldNotContainSubstring, "comparison-results")
			})
		})

		Convey("When comparing with an empty URL", func() {
			body := postCompare(mux, "https://x.com/alice", "   ").Body.String()

			So(body, ShouldContainSubstring, "Please enter both profile URLs")
		})

		Convey("When comparing two valid URLs", func() {
			w := postCompare(mux, "https://x.com/alice", "https://x.com/bob")
			body := w.Body.String()

			Convey("Then the results panel is shown", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(body, ShouldContainSubstring, `id="comparison-results" class="comparison-results active"`)
				So(body, ShouldContainSubstring, `<div class="avatar">a</div>`)
				So(body, ShouldContainSubstring, "FairFound Recommendation")
				So(body, ShouldContainSubstring, "alice scores higher overall")
				So(body, ShouldContainSubstring, `style="width: 100%"`)
				So(body, ShouldContainSubstring, `value="https://x.com/alice"`)
			})
		})

		Convey("When the compare route gets a GET", func() {
			So(get(mux, "/compare").Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a comparison that fails", t, func() {
		mux := newMux(stubDeps{compareErr: errors.New("synthesis cancelled")})

		body := postCompare(mux, "https://x.com/alice", "https://x.com/bob").Body.String()

		So(body, ShouldContainSubstring, "Comparison failed: synthesis cancelled")
		So(body, ShouldNotContainSubstring, "comparison-results")
	})

	Convey("Given data that cannot be loaded", t, func() {
		mux := newMux(stubDeps{loadErr: errors.New("down")})

		So(get(mux, "/").Code, ShouldEqual, http.StatusBadGateway)

		Convey("Then a comparison still renders without rankings", func() {
			w := postCompare(mux, "https://x.com/alice", "https://x.com/bob")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "comparison-results")
			So(w.Body.String(), ShouldContainSubstring, "Load rankings")
			So(w.Body.String(), ShouldNotContainSubstring, "leaderboard-item")
		})
	})

	Convey("Given a template that fails to execute", t, func() {
		broken := template.Must(template.New(pageTemplate).Parse(`<p>{{template "missing" .}}</p>`))
		mux := newMux(stubDeps{}, WithTemplate(broken))

		w := get(mux, "/")

		Convey("Then a plain 500 is returned", func() {
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Body.String(), ShouldContainSubstring, renderFailureMsg)
			So(w.Body.String(), ShouldNotContainSubstring, "<p>")
		})
	})
}

func TestRegisterWithNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		h, err := NewHandler(stubDeps{})
		So(err, ShouldBeNil)

		So(func() { Register(context.Background(), nil, h, nil) }, ShouldPanic)
	})
}

func TestPopupCompare_BackendTraffic(t *testing.T) {
	Convey("Given a live popup whose backend counts requests", t, func() {
		var hits atomic.Int64
		var comparePosts atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			if r.URL.Path == "/compare/" {
				comparePosts.Add(1)
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		defer srv.Close()
		svc := service.New(service.WithSource(service.NewLiveSource(backend.New(srv.URL), nil)))
		mux := newMux(svc)

		Convey("When an invalid URL is posted", func() {
			body := postCompare(mux, "not-a-url", "https://x.com/bob").Body.String()

			Convey("Then the error is shown and the backend is never called", func() {
				So(body, ShouldContainSubstring, "Please enter valid URLs")
				So(hits.Load(), ShouldEqual, 0)
			})
		})

		Convey("When two valid URLs are posted", func() {
			body := postCompare(mux, "https://x.com/alice", "https://x.com/bob").Body.String()

			Convey("Then only the comparison is requested", func() {
				So(body, ShouldContainSubstring, `id="comparison-results" class="comparison-results active"`)
				So(body, ShouldContainSubstring, "Load rankings")
				So(comparePosts.Load(), ShouldEqual, 1)
				So(hits.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the page is requested", func() {
			So(get(mux, "/").Code, ShouldEqual, http.StatusOK)

			Convey("Then categories and both rankings are requested", func() {
				So(hits.Load(), ShouldEqual, 3)
				So(comparePosts.Load(), ShouldEqual, 0)
			})
		})
	})
}
