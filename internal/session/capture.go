package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/config"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// ErrCaptureTimeout marks an interactive login not completed within the
// bounded wait. The browser is torn down before this is returned.
var ErrCaptureTimeout = eris.New("session: login timed out")

// ErrCaptureIncomplete marks a login that looked successful but yielded no
// usable nonce or cookies. No partial session is persisted.
var ErrCaptureIncomplete = eris.New("session: could not capture nonce and cookies")

// ErrMissingCredentials marks a headless capture started without a username
// and password. Checked before any network activity.
var ErrMissingCredentials = eris.New("session: headless login requires credentials")

// browserPage is the slice of browser behavior capture needs. The chromedp
// implementation lives in chrome.go; tests substitute a scripted fake.
type browserPage interface {
	Navigate(ctx context.Context, url string) error
	Location(ctx context.Context) (string, error)
	Eval(ctx context.Context, js string) (string, error)
	HTML(ctx context.Context) (string, error)
	Cookies(ctx context.Context) ([]ffb.Cookie, error)
}

// newPageFunc opens a browser page. The returned func tears the browser down.
type newPageFunc func(ctx context.Context, headless bool) (browserPage, func(), error)

// Capturer obtains cookie/nonce sessions via a controlled browser and
// persists them through the store.
type Capturer struct {
	store   *Store
	site    config.SiteConfig
	auth    config.AuthConfig
	newPage newPageFunc

	pollInterval time.Duration
}

// NewCapturer creates a capturer using a real Chrome via chromedp.
func NewCapturer(store *Store, site config.SiteConfig, auth config.AuthConfig) *Capturer {
	return &Capturer{
		store:        store,
		site:         site,
		auth:         auth,
		newPage:      newChromePage,
		pollInterval: 500 * time.Millisecond,
	}
}

func (c *Capturer) loginTimeout() time.Duration {
	if c.auth.LoginTimeoutSecs <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.auth.LoginTimeoutSecs) * time.Second
}

// Interactive launches a visible browser at the login page, waits for the
// human to finish logging in, then captures and persists the session.
// Returns the number of cookies captured.
func (c *Capturer) Interactive(ctx context.Context) (int, error) {
	pg, teardown, err := c.newPage(ctx, false)
	if err != nil {
		return 0, eris.Wrap(err, "session: launch browser")
	}
	defer teardown()

	if err := pg.Navigate(ctx, c.site.BaseURL+c.auth.LoginPath); err != nil {
		return 0, eris.Wrap(err, "session: open login page")
	}
	if err := c.waitForLogin(ctx, pg, c.loginTimeout()); err != nil {
		return 0, err
	}
	return c.finishCapture(ctx, pg)
}

// Headless submits credentials without a visible window and applies the same
// capture contract as Interactive. Credential resolution happens before any
// network activity: explicit arguments first, configured env values second.
func (c *Capturer) Headless(ctx context.Context, username, password string) (int, error) {
	if username == "" {
		username = c.auth.Username
	}
	if password == "" {
		password = c.auth.Password
	}
	if username == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	pg, teardown, err := c.newPage(ctx, true)
	if err != nil {
		return 0, eris.Wrap(err, "session: launch browser")
	}
	defer teardown()

	if err := pg.Navigate(ctx, c.site.BaseURL+c.auth.LoginPath); err != nil {
		return 0, eris.Wrap(err, "session: open login page")
	}
	if err := c.submitLoginForm(ctx, pg, username, password); err != nil {
		return 0, err
	}
	if err := c.waitForLogin(ctx, pg, 30*time.Second); err != nil {
		return 0, err
	}
	return c.finishCapture(ctx, pg)
}

// waitForLogin polls the page location until it leaves the login path.
func (c *Capturer) waitForLogin(ctx context.Context, pg browserPage, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		loc, err := pg.Location(ctx)
		if err == nil && loc != "" && !strings.Contains(loc, "/login") {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrCaptureTimeout
		}
		select {
		case <-ctx.Done():
			return eris.Wrap(ctx.Err(), "session: wait for login")
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Capturer) submitLoginForm(ctx context.Context, pg browserPage, username, password string) error {
	js := fmt.Sprintf(`(() => {
		const user = document.querySelector('input[name="log"], input[name="username"], input[type="email"]');
		const pass = document.querySelector('input[name="pwd"], input[type="password"]');
		if (!user || !pass) return "no-form";
		user.value = %q;
		pass.value = %q;
		(pass.form || user.form).submit();
		return "submitted";
	})()`, username, password)
	out, err := pg.Eval(ctx, js)
	if err != nil {
		return eris.Wrap(err, "session: submit login form")
	}
	if out != "submitted" {
		return eris.New("session: login form not found on login page")
	}
	return nil
}

// finishCapture navigates to the premium page (the nonce is only embedded on
// specific pages), runs the nonce chain, reads the site's cookies, and
// persists the completed session.
func (c *Capturer) finishCapture(ctx context.Context, pg browserPage) (int, error) {
	if err := pg.Navigate(ctx, c.site.BaseURL+c.auth.DraftKitPath); err != nil {
		return 0, eris.Wrap(err, "session: open premium page")
	}

	nonce := extractNonce(ctx, pg)
	if nonce == "" {
		return 0, eris.Wrap(ErrCaptureIncomplete, "no nonce found on premium page")
	}

	all, err := pg.Cookies(ctx)
	if err != nil {
		return 0, eris.Wrap(err, "session: read cookies")
	}
	var cookies []ffb.Cookie
	for _, ck := range all {
		if strings.Contains(ck.Domain, c.site.Domain) {
			cookies = append(cookies, ck)
		}
	}
	if len(cookies) == 0 {
		// A nonce without cookies cannot authenticate.
		return 0, eris.Wrap(ErrCaptureIncomplete, "no cookies for site domain")
	}

	rec := ffb.Session{Cookies: cookies, Nonce: nonce, CreatedAt: time.Now().UTC()}
	if err := c.store.Save(rec); err != nil {
		return 0, err
	}
	zap.L().Info("session captured", zap.Int("cookies", len(cookies)))
	return len(cookies), nil
}
