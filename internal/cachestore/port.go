package cachestore

// Store defines the port interface for payload caching.
// This interface follows the port-adapter pattern, allowing the
// read-through fetcher to run against the persistent file adapter in
// production and the in-memory adapter in tests.
type Store interface {
	// Get retrieves an entry by key.
	// Returns the entry and true if found, or a zero entry and false if not.
	// This method is read-only and must not modify store state.
	Get(key string) (Entry, bool)

	// Put inserts or overwrites the entry for key.
	// Persistent adapters must make the whole mapping durable before
	// returning; the error reports persistence failure, but the
	// in-memory mapping is updated regardless.
	Put(key string, entry Entry) error
}
