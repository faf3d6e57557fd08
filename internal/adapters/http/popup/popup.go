// Package popup serves the server-rendered popup page: the leaderboard tab
// with its board toggle and category filter, and the compare tab.
package popup

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/internal/view"
	"github.com/okian/fairfound/pkg/logger"
	"github.com/okian/fairfound/pkg/metrics"
)

const (
	pageTemplate     = "popup.html"
	renderFailureMsg = "failed to render popup"
	compareFailedMsg = "Comparison failed: "
)

// Dependencies is the controller used by the popup page.
type Dependencies interface {
	LoadCategories(ctx context.Context) ([]string, error)
	LoadLeaderboards(ctx context.Context, category string) (types.Leaderboards, error)
	Compare(ctx context.Context, url1, url2 string) (types.Comparison, error)
}

// Handler renders the popup.
type Handler struct {
	deps   Dependencies
	tmpl   *template.Template
	logger logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithTemplate replaces the embedded page template. The template must
// define "popup.html".
func WithTemplate(t *template.Template) Option {
	return func(h *Handler) {
		if t != nil {
			h.tmpl = t
		}
	}
}

// WithLogger sets a custom logger for the handler.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates a popup handler backed by deps.
func NewHandler(deps Dependencies, opts ...Option) (*Handler, error) {
	h := &Handler{deps: deps}
	for _, opt := range opts {
		opt(h)
	}
	if h.tmpl == nil {
		t, err := parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplates, err)
		}
		h.tmpl = t
	}
	if h.logger == nil {
		h.logger = logger.Named("popup-page")
	}
	return h, nil
}

// Register attaches the popup routes to mux.
//
//	GET  /                  -> popup page
//	POST /compare           -> popup page with the comparison result
//	GET  /static/popup.css  -> stylesheet
func Register(_ context.Context, mux *http.ServeMux, h *Handler, wrap func(http.HandlerFunc, string) http.HandlerFunc) {
	if mux == nil {
		panic("mux is nil")
	}
	if wrap == nil {
		wrap = func(next http.HandlerFunc, _ string) http.HandlerFunc { return next }
	}
	mux.HandleFunc("/{$}", wrap(h.HandlePage, "popup"))
	mux.HandleFunc("/compare", wrap(h.HandleCompare, "popup_compare"))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(StaticFS())))
}

// page is the template model.
type page struct {
	Tabs        []view.Tab
	Boards      []view.BoardToggle
	Categories  []view.Option
	Category    string
	Board       string
	Marketplace []view.Row
	FairFound   []view.Row
	Fallback    bool
	// Deferred leaves the rankings unloaded.
	Deferred bool

	URL1   string
	URL2   string
	Error  string
	Result *view.Comparison
}

// HandlePage handles GET /?tab=&board=&category= requests.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	p, err := h.basePage(r.Context(), q.Get("tab"), q.Get("board"), q.Get("category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, p)
}

// HandleCompare handles POST /compare with form fields url1 and url2. The
// response shows the compare tab only; rankings are not fetched and the
// leaderboard tab links back to GET / to load them.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	category := strings.TrimSpace(r.PostForm.Get("category"))
	if category == "" {
		category = types.CategoryAll
	}
	boards := view.ActivateBoard(r.PostForm.Get("board"))
	p := page{
		Tabs:     view.ActivateTab(view.TabCompare),
		Boards:   boards,
		Category: category,
		Board:    activeBoard(boards),
		Deferred: true,
		URL1:     r.PostForm.Get("url1"),
		URL2:     r.PostForm.Get("url2"),
	}

	c, err := h.deps.Compare(r.Context(), p.URL1, p.URL2)
	switch {
	case err == nil:
		res := view.BuildComparison(c)
		p.Result = &res
	default:
		if ve, ok := compare.AsValidation(err); ok {
			p.Error = ve.Message
		} else {
			p.Error = compareFailedMsg + err.Error()
		}
	}
	h.render(w, r, http.StatusOK, p)
}

func (h *Handler) basePage(ctx context.Context, tab, board, category string) (page, error) {
	cats, err := h.deps.LoadCategories(ctx)
	if err != nil {
		return page{}, err
	}
	lb, err := h.deps.LoadLeaderboards(ctx, category)
	if err != nil {
		return page{}, err
	}
	boards := view.ActivateBoard(board)
	return page{
		Tabs:        view.ActivateTab(tab),
		Boards:      boards,
		Categories:  view.CategoryOptions(cats, lb.Category),
		Category:    lb.Category,
		Board:       activeBoard(boards),
		Marketplace: view.LeaderboardRows(lb.Marketplace),
		FairFound:   view.LeaderboardRows(lb.FairFound),
		Fallback:    lb.Fallback,
	}, nil
}

func activeBoard(boards []view.BoardToggle) string {
	for _, b := range boards {
		if b.Active {
			return string(b.Board)
		}
	}
	return string(types.BoardMarketplace)
}

// render executes the page into a buffer so a failed execution never
// leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, pageTemplate, p); err != nil {
		metrics.RecordRenderFailure("popup")
		h.logger.Error(r.Context(), "render popup", logger.Error(fmt.Errorf("%w: %w", ErrRender, err)))
		http.Error(w, renderFailureMsg, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "load popup data", logger.Error(err))
	http.Error(w, "failed to load popup data", http.StatusBadGateway)
}
