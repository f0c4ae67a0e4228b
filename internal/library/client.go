package library

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CredentialSource supplies the bearer token attached to every request.
// An empty string means no credential is held and the request goes out
// anonymous. The session package provides the real implementation.
type CredentialSource interface {
	Token() string
}

// Catalogue is the interface the UI consumes for resource access.
// It is implemented by *Client and can be swapped for a test double.
type Catalogue interface {
	ListBooks(ctx context.Context, filter BookQuery) ([]Book, error)
	GetBook(ctx context.Context, id int64) (*Book, error)
	CreateBook(ctx context.Context, book Book) (*Book, error)
	UpdateBook(ctx context.Context, book Book) (*Book, error)
	DeleteBook(ctx context.Context, id int64) (int, error)
	SearchISBN(ctx context.Context, isbn string) (*VolumeInfo, error)

	ListBookshelves(ctx context.Context) ([]Bookshelf, error)
	GetBookshelf(ctx context.Context, id int64) (*Bookshelf, error)
	CreateBookshelf(ctx context.Context, shelf Bookshelf) (*Bookshelf, error)
	UpdateBookshelf(ctx context.Context, shelf Bookshelf) (*Bookshelf, error)
	DeleteBookshelf(ctx context.Context, id int64) (int, error)

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, category Category) (*Category, error)
	UpdateCategory(ctx context.Context, category Category) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) (int, error)

	ListSeries(ctx context.Context) ([]Series, error)
	GetSeries(ctx context.Context, id int64) (*Series, error)
	CreateSeries(ctx context.Context, series Series) (*Series, error)
	UpdateSeries(ctx context.Context, series Series) (*Series, error)
	DeleteSeries(ctx context.Context, id int64) (int, error)
}

// Ensure Client implements Catalogue at compile time.
var _ Catalogue = (*Client)(nil)

// Client talks to the library backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	creds     CredentialSource
	log       zerolog.Logger
}

const (
	defaultServerURL = "http://127.0.0.1:8000"
	defaultUserAgent = "alcove/0.1"
	requestTimeout   = 10 * time.Second
)

// Options tune the client beyond its defaults.
type Options struct {
	Timeout   time.Duration  // zero uses the default request timeout
	UserAgent string         // empty uses the default
	Logger    zerolog.Logger // zero value logs nothing
}

// NewClient builds a Client for the given server URL. A nil creds source is
// treated as permanently anonymous.
func NewClient(serverURL string, creds CredentialSource, opts Options) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	agent := strings.TrimSpace(opts.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: agent,
		creds:     creds,
		log:       opts.Logger,
	}, nil
}

// do issues a request against a plain path with no query string.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) (int, error) {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

// doURL issues a request and decodes a successful JSON response into dest.
// The returned status code is valid whenever the error is nil; a non-2xx
// status is reported without touching dest.
func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) (int, error) {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", rel.Path).Msg("request failed")
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", rel.Path).Msg("api rejected request")
		return resp.StatusCode, nil
	}
	if dest == nil {
		return resp.StatusCode, nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// idPath renders the trailing-slash resource path the backend routers expect.
func idPath(collection string, id int64) string {
	return fmt.Sprintf("/api/%s/%d/", collection, id)
}
