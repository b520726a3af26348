package ffb

import "time"

// Cookie is one captured browser cookie, scoped the way the browser held it.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
}

// Session is a captured authentication session: the site's cookies plus the
// REST nonce issued alongside them. A session is only usable when both are
// present; partial sessions are never persisted.
type Session struct {
	Cookies   []Cookie  `json:"cookies"`
	Nonce     string    `json:"nonce"`
	CreatedAt time.Time `json:"created_at"`
}

// Complete reports whether the session carries everything an authenticated
// call needs. A nonce without cookies cannot authenticate, and vice versa.
func (s Session) Complete() bool {
	return len(s.Cookies) > 0 && s.Nonce != ""
}
