package session

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// The REST nonce is embedded in page state in several historical locations.
// Extraction is an ordered chain of independent strategies; the first
// non-empty value wins and failures fall through to the next strategy.

type nonceExtractor struct {
	name    string
	extract func(ctx context.Context, pg browserPage) (string, error)
}

var nonceExtractors = []nonceExtractor{
	{name: "udk_global", extract: extractUDKGlobal},
	{name: "rest_nonce_endpoint", extract: extractRestNonceEndpoint},
	{name: "wp_api_settings", extract: extractWPAPISettings},
	{name: "inline_scripts", extract: extractInlineScripts},
}

// extractNonce runs the chain and returns the first non-empty token, or an
// empty string when every strategy comes up dry.
func extractNonce(ctx context.Context, pg browserPage) string {
	for _, ex := range nonceExtractors {
		nonce, err := ex.extract(ctx, pg)
		if err != nil {
			zap.L().Debug("nonce strategy failed", zap.String("strategy", ex.name), zap.Error(err))
			continue
		}
		if nonce != "" {
			zap.L().Debug("nonce captured", zap.String("strategy", ex.name))
			return nonce
		}
	}
	return ""
}

func extractUDKGlobal(ctx context.Context, pg browserPage) (string, error) {
	return pg.Eval(ctx, `(() => {
		try { return window.udk.rest_api.api_nonce || "" } catch (e) { return "" }
	})()`)
}

// extractRestNonceEndpoint asks the CMS's same-origin nonce endpoint for a
// fresh token. The endpoint answers "0" (or an HTML error page) when the
// visitor is not logged in, so only short non-zero tokens are accepted.
func extractRestNonceEndpoint(ctx context.Context, pg browserPage) (string, error) {
	out, err := pg.Eval(ctx, `(async () => {
		try {
			const resp = await fetch('/wp-admin/admin-ajax.php?action=rest-nonce', {credentials: 'same-origin'});
			if (!resp.ok) return "";
			return (await resp.text()).trim();
		} catch (e) { return "" }
	})()`)
	if err != nil {
		return "", err
	}
	if !acceptableNonceToken(out) {
		return "", nil
	}
	return out, nil
}

func extractWPAPISettings(ctx context.Context, pg browserPage) (string, error) {
	return pg.Eval(ctx, `(() => {
		try { return (window.wpApiSettings && window.wpApiSettings.nonce) || "" } catch (e) { return "" }
	})()`)
}

var inlineNoncePatterns = []*regexp.Regexp{
	regexp.MustCompile(`api_nonce['":\s]+['"]([a-f0-9]{10})['"]`),
	regexp.MustCompile(`"nonce"\s*:\s*"([a-f0-9]{10})"`),
}

// extractInlineScripts pulls the page source and scans inline script bodies
// for nonce-shaped string literals.
func extractInlineScripts(ctx context.Context, pg browserPage) (string, error) {
	html, err := pg.HTML(ctx)
	if err != nil {
		return "", err
	}
	return scanInlineScripts(html)
}

func scanInlineScripts(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", eris.Wrap(err, "session: parse page html")
	}
	var nonce string
	doc.Find("script:not([src])").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		for _, pat := range inlineNoncePatterns {
			if m := pat.FindStringSubmatch(text); m != nil {
				nonce = m[1]
				return false
			}
		}
		return true
	})
	return nonce, nil
}

// acceptableNonceToken filters the nonce endpoint's output: WordPress nonces
// are short hex-ish tokens, and "0" means the request was unauthenticated.
func acceptableNonceToken(tok string) bool {
	return tok != "" && tok != "0" && len(tok) < 20
}
