package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ffb-cli/internal/config"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

func testSiteConfig() config.SiteConfig {
	return config.SiteConfig{
		BaseURL: "https://www.thefantasyfootballers.com",
		Domain:  "thefantasyfootballers.com",
	}
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		LoginPath:        "/login/",
		DraftKitPath:     "/2026-ultimate-draft-kit/",
		LoginTimeoutSecs: 1,
	}
}

func siteCookies() []ffb.Cookie {
	return []ffb.Cookie{
		{Name: "wordpress_logged_in", Value: "tok", Domain: ".thefantasyfootballers.com", Path: "/"},
		{Name: "ga_tracker", Value: "x", Domain: ".google.com", Path: "/"},
	}
}

func newTestCapturer(t *testing.T, pg *fakePage) (*Capturer, *Store, *bool) {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	tornDown := false
	c := &Capturer{
		store:        store,
		site:         testSiteConfig(),
		auth:         testAuthConfig(),
		pollInterval: time.Millisecond,
		newPage: func(context.Context, bool) (browserPage, func(), error) {
			return pg, func() { tornDown = true }, nil
		},
	}
	return c, store, &tornDown
}

func TestInteractiveCaptureSuccess(t *testing.T) {
	pg := &fakePage{
		locations: []string{
			"https://www.thefantasyfootballers.com/login/",
			"https://www.thefantasyfootballers.com/my-account/",
		},
		evalByFragment: map[string]string{
			"window.udk.rest_api.api_nonce": "a1b2c3d4e5",
		},
		cookies: siteCookies(),
	}
	c, store, tornDown := newTestCapturer(t, pg)

	n, err := c.Interactive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "off-domain cookies must be filtered out")
	assert.True(t, *tornDown)

	rec, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4e5", rec.Nonce)
	require.Len(t, rec.Cookies, 1)
	assert.Equal(t, "wordpress_logged_in", rec.Cookies[0].Name)
	assert.False(t, rec.CreatedAt.IsZero())

	// Login page first, premium page after login completes.
	require.Len(t, pg.navigated, 2)
	assert.Contains(t, pg.navigated[0], "/login/")
	assert.Contains(t, pg.navigated[1], "/2026-ultimate-draft-kit/")
}

func TestInteractiveCaptureTimeout(t *testing.T) {
	pg := &fakePage{
		locations: []string{"https://www.thefantasyfootballers.com/login/"},
	}
	c, store, tornDown := newTestCapturer(t, pg)

	_, err := c.Interactive(context.Background())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrCaptureTimeout))
	assert.True(t, *tornDown, "browser must be released on timeout")

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestCaptureFailsWithoutNonce(t *testing.T) {
	pg := &fakePage{
		locations: []string{"https://www.thefantasyfootballers.com/my-account/"},
		cookies:   siteCookies(),
		html:      "<html><body>no scripts</body></html>",
	}
	c, store, _ := newTestCapturer(t, pg)

	_, err := c.Interactive(context.Background())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrCaptureIncomplete))

	_, ok := store.Load()
	assert.False(t, ok, "no partial session may be persisted")
}

func TestCaptureFailsWithoutSiteCookies(t *testing.T) {
	pg := &fakePage{
		locations: []string{"https://www.thefantasyfootballers.com/my-account/"},
		evalByFragment: map[string]string{
			"window.udk.rest_api.api_nonce": "a1b2c3d4e5",
		},
		cookies: []ffb.Cookie{{Name: "ga", Value: "x", Domain: ".google.com", Path: "/"}},
	}
	c, store, _ := newTestCapturer(t, pg)

	_, err := c.Interactive(context.Background())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrCaptureIncomplete), "a nonce without cookies cannot authenticate")

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestHeadlessMissingCredentials(t *testing.T) {
	launched := false
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	c := &Capturer{
		store:        store,
		site:         testSiteConfig(),
		auth:         testAuthConfig(), // no username/password configured
		pollInterval: time.Millisecond,
		newPage: func(context.Context, bool) (browserPage, func(), error) {
			launched = true
			return &fakePage{}, func() {}, nil
		},
	}

	_, err := c.Headless(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMissingCredentials))
	assert.False(t, launched, "credential check precedes any browser activity")
}

func TestHeadlessCredentialFallbackToConfig(t *testing.T) {
	pg := &fakePage{
		locations: []string{
			"https://www.thefantasyfootballers.com/login/",
			"https://www.thefantasyfootballers.com/my-account/",
		},
		evalByFragment: map[string]string{
			"input[name=\"log\"]":           "submitted",
			"window.udk.rest_api.api_nonce": "a1b2c3d4e5",
		},
		cookies: siteCookies(),
	}
	c, store, _ := newTestCapturer(t, pg)
	c.auth.Username = "me@example.com"
	c.auth.Password = "hunter2"

	n, err := c.Headless(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok := store.Load()
	assert.True(t, ok)
}

func TestHeadlessLoginFormMissing(t *testing.T) {
	pg := &fakePage{
		locations: []string{"https://www.thefantasyfootballers.com/login/"},
		evalByFragment: map[string]string{
			"input[name=\"log\"]": "no-form",
		},
	}
	c, _, tornDown := newTestCapturer(t, pg)

	_, err := c.Headless(context.Background(), "me@example.com", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login form")
	assert.True(t, *tornDown)
}
