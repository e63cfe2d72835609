package fetcher

import "context"

// HTTP boundary

// Producer obtains a fresh payload from a live data source on a cache
// miss. The read-through wrapper invokes it at most once per call and
// performs no validation on what it returns.
type Producer func(ctx context.Context) ([]byte, error)
