// Package ffb provides the HTTP client for the fantasy site's JSON API and
// HTML pages, replaying a captured cookie/nonce session on every call.
package ffb

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrAuthExpired marks a 401/403 from an authenticated call. It is never
// retried here; the caller tells the user to re-run login.
var ErrAuthExpired = eris.New("ffb: session expired or invalid")

// ErrNotLoggedIn marks an operation that needs a session when none is saved.
var ErrNotLoggedIn = eris.New("ffb: not logged in")

// NonceHeader carries the REST nonce on authenticated API calls.
const NonceHeader = "X-WP-Nonce"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Config holds the client's URL surface.
type Config struct {
	APIBase  string `mapstructure:"api_base"`
	PageBase string `mapstructure:"page_base"`
}

// Client calls the site's JSON API and fetches raw pages.
type Client struct {
	http     *resty.Client
	apiBase  string
	pageBase string
	session  *Session
}

// Option configures the client.
type Option func(*Client)

// WithSession attaches a captured session: its cookies ride on every request
// and its nonce is sent in the nonce header.
func WithSession(s Session) Option {
	return func(c *Client) {
		c.session = &s
	}
}

// WithHTTPClient swaps the underlying http.Client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// New creates a client. Without a session only public endpoints succeed.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		http:     resty.New(),
		apiBase:  cfg.APIBase,
		pageBase: cfg.PageBase,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.SetHeader("User-Agent", userAgent)
	if c.session != nil {
		for _, ck := range c.session.Cookies {
			c.http.SetCookie(&http.Cookie{
				Name:   ck.Name,
				Value:  ck.Value,
				Domain: ck.Domain,
				Path:   ck.Path,
			})
		}
		c.http.SetHeader(NonceHeader, c.session.Nonce)
	}
	return c
}

// Authenticated reports whether the client carries a session.
func (c *Client) Authenticated() bool { return c.session != nil }

// Session returns the attached session, if any.
func (c *Client) Session() *Session { return c.session }

// classify maps a response status onto the error taxonomy: 401/403 is the
// distinguished auth-expired condition, any other non-2xx a generic failure.
func classify(resp *resty.Response, what string) error {
	code := resp.StatusCode()
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return eris.Wrapf(ErrAuthExpired, "ffb: %s: status %d", what, code)
	case resp.IsError():
		return eris.Errorf("ffb: %s: unexpected status %d: %s", what, code, resp.String())
	}
	return nil
}

// Get performs an authenticated GET against an API endpoint and returns the
// raw response body.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(c.apiBase + endpoint)
	if err != nil {
		return nil, eris.Wrapf(err, "ffb: get %s", endpoint)
	}
	if err := classify(resp, "get "+endpoint); err != nil {
		return nil, err
	}
	zap.L().Debug("api get", zap.String("endpoint", endpoint), zap.Int("bytes", len(resp.Body())))
	return resp.Body(), nil
}

// Post performs an authenticated POST with a JSON body and returns the raw
// response body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.apiBase + endpoint)
	if err != nil {
		return nil, eris.Wrapf(err, "ffb: post %s", endpoint)
	}
	if err := classify(resp, "post "+endpoint); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// GetPage fetches a raw HTML page from the site base for the scraping path.
// Cookies ride along; pages do not require the nonce header.
func (c *Client) GetPage(ctx context.Context, path string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.pageBase + path)
	if err != nil {
		return "", eris.Wrapf(err, "ffb: get page %s", path)
	}
	if err := classify(resp, "page "+path); err != nil {
		return "", err
	}
	return resp.String(), nil
}

// VerifyAuth asks the API whether the attached session is still valid.
func (c *Client) VerifyAuth(ctx context.Context) error {
	if c.session == nil {
		return ErrNotLoggedIn
	}
	_, err := c.Get(ctx, AuthVerifyEndpoint, nil)
	return err
}
