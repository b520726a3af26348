package session

import (
	"context"
	"strings"
	"sync"

	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// fakePage scripts browser behavior for capture tests. Eval responses are
// matched by a distinctive substring of the evaluated JS.
type fakePage struct {
	mu sync.Mutex

	locations []string // successive Location() results; last repeats
	locCalls  int

	evalByFragment map[string]string
	evalErr        error

	html    string
	cookies []ffb.Cookie

	navigated []string
	navErr    error
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigated = append(p.navigated, url)
	return p.navErr
}

func (p *fakePage) Location(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.locations) == 0 {
		return "", nil
	}
	i := p.locCalls
	if i >= len(p.locations) {
		i = len(p.locations) - 1
	}
	p.locCalls++
	return p.locations[i], nil
}

func (p *fakePage) Eval(_ context.Context, js string) (string, error) {
	if p.evalErr != nil {
		return "", p.evalErr
	}
	for fragment, out := range p.evalByFragment {
		if strings.Contains(js, fragment) {
			return out, nil
		}
	}
	return "", nil
}

func (p *fakePage) HTML(context.Context) (string, error) {
	return p.html, nil
}

func (p *fakePage) Cookies(context.Context) ([]ffb.Cookie, error) {
	return p.cookies, nil
}
