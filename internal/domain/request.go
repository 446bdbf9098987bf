package domain

import "net/url"

// RequestSpec fully describes one backend call: method, path, query
// and body. It never carries a credential; the fetcher attaches the
// current access token itself.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// AllowAnonymous lets the call go out without an access token. Only
	// the tag list and the login call use it.
	AllowAnonymous bool
}
