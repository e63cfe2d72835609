package metadata

import "time"

/*
Metadata Collected
- Fetch timestamps and HTTP status codes
- Cache hit/write events with payload hashes
- Extraction and persistence failures

Structured logging is preferred.

Determinism guarantees:
 - Metadata does not affect control flow
 - Output is stable given identical inputs

Metadata is write-only.
No component may read metadata to influence fetch or cache decisions.
*/

type FetchEvent struct {
	fetchUrl    string
	httpStatus  int
	duration    time.Duration
	contentType string
}

/*
ErrorCause is a closed, canonical classification used exclusively for
observability (logging, reporting).

Rules:
  - ErrorCause is for observability only.
  - It MUST NOT influence control flow; retry, continuation, and abort
    decisions come from failure.Severity on the local error types.
  - Packages MAY map their local errors to ErrorCause, but MUST NOT
    invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

	Unclassified failures; the safe fallback.

# CauseNetworkFailure

	Transport-level or remote-availability failures: timeouts, DNS
	failures, connection resets, 5xx responses.

# CauseContentInvalid

	A payload was obtained but could not be processed: non-HTML
	responses on an HTML endpoint, expected elements absent from a
	document, malformed search JSON.

# CauseStorageFailure

	Failure while persisting the cache mapping: write permission
	errors, disk full, rename failures.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseNetworkFailure
	CauseContentInvalid
	CauseStorageFailure
)

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrURL      AttributeKey = "url"
	AttrHost     AttributeKey = "host"
	AttrKey      AttributeKey = "key"
	AttrHash     AttributeKey = "hash"
	AttrPath     AttributeKey = "path"
	AttrState    AttributeKey = "state"
	AttrMessage  AttributeKey = "message"
	AttrEndpoint AttributeKey = "endpoint"
)
