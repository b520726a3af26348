package session

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// chromePage implements browserPage on a chromedp browser context.
type chromePage struct {
	ctx context.Context
}

// newChromePage starts a Chrome instance. The returned teardown cancels the
// browser context, which kills the process; callers defer it so a timed-out
// capture never leaves an orphaned browser behind.
func newChromePage(ctx context.Context, headless bool) (browserPage, func(), error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	teardown := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// Start the browser eagerly so launch failures surface here, not on the
	// first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		teardown()
		return nil, nil, err
	}
	return &chromePage{ctx: browserCtx}, teardown, nil
}

// settleDelay gives page scripts a beat after load before the page is
// considered ready. The nonce globals are injected by scripts that can run
// after the body is ready.
const settleDelay = 1500 * time.Millisecond

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return chromedp.Run(p.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
	)
}

func (p *chromePage) Location(ctx context.Context) (string, error) {
	var loc string
	if err := chromedp.Run(p.ctx, chromedp.Location(&loc)); err != nil {
		return "", err
	}
	return loc, nil
}

func (p *chromePage) Eval(ctx context.Context, js string) (string, error) {
	var out string
	err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &out,
		func(params *runtime.EvaluateParams) *runtime.EvaluateParams {
			return params.WithAwaitPromise(true)
		}))
	if err != nil {
		return "", err
	}
	return out, nil
}

func (p *chromePage) HTML(ctx context.Context) (string, error) {
	var html string
	if err := chromedp.Run(p.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (p *chromePage) Cookies(ctx context.Context) ([]ffb.Cookie, error) {
	var cookies []ffb.Cookie
	err := chromedp.Run(p.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		all, err := network.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		for _, ck := range all {
			cookies = append(cookies, ffb.Cookie{
				Name:   ck.Name,
				Value:  ck.Value,
				Domain: ck.Domain,
				Path:   ck.Path,
			})
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return cookies, nil
}
