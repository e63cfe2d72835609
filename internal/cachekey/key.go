package cachekey

import (
	"sort"
	"strings"
)

/*
Responsibilities
- Derive a deterministic, collision-resistant string key for an outbound
  request (endpoint + parameters)

Key Semantics
- Keys are human-inspectable: no hashing, the endpoint and every
  parameter appear literally in the key
- Identical endpoint + identical parameter mapping always yields the
  identical key, regardless of how the caller built the map
- Parameters are serialized in lexicographic name order; this is the
  documented stable order (Go maps have no insertion order to preserve)
*/

// BuildKey derives the cache key for a request against endpoint with the
// given parameters. An endpoint with zero parameters yields a key equal
// to the endpoint itself. Total over all inputs; there is no error case.
func BuildKey(endpoint string, params map[string]string) string {
	if len(params) == 0 {
		return endpoint
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, name := range names {
		b.WriteString("_")
		b.WriteString(name)
		b.WriteString("_")
		b.WriteString(params[name])
	}
	return b.String()
}
