package metadata

import (
	"time"
)

/*
EventSink captures structured runtime events.
It must not:
- perform I/O decisions
- affect control flow
- impose a logging backend

Events are recorded synchronously in the order they occur on the single
active call path. Ordering is provided for debuggability, not causality.
*/
type EventSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)

	RecordFetch(
		fetchUrl string,
		httpStatus int,
		duration time.Duration,
		contentType string,
	)

	// RecordCacheHit marks a read-through lookup that was answered
	// without network access.
	RecordCacheHit(key string)

	// RecordCacheWrite marks a fresh payload entering the store.
	// contentHash is a short payload hash for log correlation only.
	RecordCacheWrite(key string, contentHash string)
}

// NoopSink implements EventSink but does nothing.
// Callers (or tests) decide whether to inject LogSink or NoopSink;
// the purpose is to keep metadata orthogonal.
type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentType string,
) {
}

func (n *NoopSink) RecordCacheHit(key string) {}

func (n *NoopSink) RecordCacheWrite(key string, contentHash string) {}
