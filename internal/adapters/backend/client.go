// Package backend is the HTTP client for the external FairFound API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/fairfound/internal/domain/types"
	"github.com/okian/fairfound/pkg/logger"
	"github.com/okian/fairfound/pkg/metrics"
)

// Endpoint names used in logs and metrics.
const (
	EndpointCategories  = "categories"
	EndpointMarketplace = "marketplace"
	EndpointFairFound   = "fairfound"
	EndpointCompare     = "compare"
)

// Request outcomes recorded per call.
const (
	outcomeOK        = "ok"
	outcomeStatus    = "status_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
)

// RequestIDHeader carries a per-call id for correlation with backend logs.
const RequestIDHeader = "X-Request-ID"

// nullBody is a JSON null; it never satisfies a list or object endpoint.
var (
	nullBody    = []byte("null")
	errNullBody = errors.New("null body")
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 512

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each call. Zero leaves calls unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client calls the FairFound API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  logger.Logger
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Named("backend")
	}
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Categories fetches the category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, EndpointCategories, http.MethodGet, "/leaderboard/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaderboard fetches one ranking, filtered by category unless it is "all"
// or empty.
func (c *Client) Leaderboard(ctx context.Context, board types.Board, category string) ([]types.Entry, error) {
	if !board.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoard, board)
	}
	var out []types.Entry
	path := "/leaderboard/" + string(board) + "/" + CategoryQuery(category)
	if err := c.do(ctx, string(board), http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaderboards fetches both rankings concurrently. Either failure fails the
// whole call; partial results are never returned.
func (c *Client) Leaderboards(ctx context.Context, category string) (types.Leaderboards, error) {
	var marketplace, fairfound []types.Entry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		marketplace, err = c.Leaderboard(gctx, types.BoardMarketplace, category)
		return err
	})
	g.Go(func() error {
		var err error
		fairfound, err = c.Leaderboard(gctx, types.BoardFairFound, category)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.Leaderboards{}, err
	}

	return types.Leaderboards{
		Category:    category,
		Marketplace: marketplace,
		FairFound:   fairfound,
	}, nil
}

// compareRequest is the POST /compare/ body.
type compareRequest struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

// Compare requests a comparison of two profiles.
func (c *Client) Compare(ctx context.Context, url1, url2 string) (types.Comparison, error) {
	var out types.Comparison
	body := compareRequest{URL1: url1, URL2: url2}
	if err := c.do(ctx, EndpointCompare, http.MethodPost, "/compare/", body, &out); err != nil {
		return types.Comparison{}, err
	}
	return out, nil
}

// componentEscaper turns url.QueryEscape output into the encodeURIComponent
// form: space as %20 and !'()* left literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// CategoryQuery renders the category filter as a query string. It is empty
// for the "all" sentinel; otherwise the value is escaped with the
// encodeURIComponent character set.
func CategoryQuery(category string) string {
	if category == "" || category == types.CategoryAll {
		return ""
	}
	return "?category=" + componentEscaper.Replace(url.QueryEscape(category))
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(ctx, endpoint, outcomeTransport, start, reqID, err)
		return fmt.Errorf("%w: %s: %w", ErrTransport, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serr := &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
		c.record(ctx, endpoint, outcomeStatus, start, reqID, serr)
		return serr
	}

	var raw json.RawMessage
	err = json.NewDecoder(resp.Body).Decode(&raw)
	if err == nil && bytes.Equal(bytes.TrimSpace(raw), nullBody) {
		err = errNullBody
	}
	if err == nil {
		err = json.Unmarshal(raw, out)
	}
	if err != nil {
		c.record(ctx, endpoint, outcomeDecode, start, reqID, err)
		return fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
	}

	c.record(ctx, endpoint, outcomeOK, start, reqID, nil)
	return nil
}

func (c *Client) record(ctx context.Context, endpoint, outcome string, start time.Time, reqID string, err error) {
	took := time.Since(start)
	metrics.RecordBackendRequest(endpoint, outcome, float64(took.Milliseconds()))

	fields := []logger.Field{
		logger.String("endpoint", endpoint),
		logger.String("outcome", outcome),
		logger.String("request_id", reqID),
		logger.Duration("took", took),
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Debug(ctx, "backend request failed", append(fields, logger.Error(err))...)
		return
	}
	c.logger.Debug(ctx, "backend request", fields...)
}
