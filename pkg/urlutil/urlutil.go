package urlutil

import (
	"net/url"
	"strings"
)

// Absolutize joins a site domain with a relative href scraped from a page,
// producing an absolute URL string.
//
// The directory service emits hrefs like "/state/mi/index.htm" and
// "/isro/"; the domain is a bare origin like "https://www.nps.gov".
// Duplicate or missing slashes at the join point are normalized.
//
// Properties:
//   - Pure: no state, no memory
//   - Deterministic: same input always produces same output
//   - Already-absolute hrefs are returned unchanged
func Absolutize(domain string, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(href, "/")
}

// WithQuery appends URL-encoded query parameters to an endpoint.
// Parameter order in the resulting string follows net/url encoding
// (sorted by name); the cache key, not this string, is the identity of
// a request.
func WithQuery(endpoint string, params map[string]string) string {
	if len(params) == 0 {
		return endpoint
	}
	values := url.Values{}
	for name, value := range params {
		values.Set(name, value)
	}
	return endpoint + "?" + values.Encode()
}
