package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rohmanhakim/parks-explorer/internal/cachekey"
	"github.com/rohmanhakim/parks-explorer/internal/cachestore"
	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/pkg/hashutil"
	"github.com/rohmanhakim/parks-explorer/pkg/limiter"
	"github.com/rohmanhakim/parks-explorer/pkg/urlutil"
)

/*
Responsibilities

- Route every outbound request through the read-through cache
- Perform HTTP requests on cache misses
- Apply headers and politeness delays
- Classify responses

Read-Through Semantics

- A cached key is answered without any network access
- On a miss the producer runs at most once; its error propagates
  uncaught to the caller
- Whatever the producer returns is cached, including malformed or
  empty payloads; no validation happens here
- A persistence failure after a successful fetch does not fail the
  operation; the payload is still returned and the store records the
  event

The fetcher never parses content; it only returns entries.
*/

type ReadThroughFetcher struct {
	store       cachestore.Store
	sink        metadata.EventSink
	rateLimiter limiter.RateLimiter
	httpClient  *http.Client
	userAgent   string
}

func NewReadThroughFetcher(
	store cachestore.Store,
	sink metadata.EventSink,
	rateLimiter limiter.RateLimiter,
) ReadThroughFetcher {
	return ReadThroughFetcher{
		store:       store,
		sink:        sink,
		rateLimiter: rateLimiter,
	}
}

func (f *ReadThroughFetcher) Init(httpClient *http.Client, userAgent string) {
	f.httpClient = httpClient
	f.userAgent = userAgent
}

// ReadThrough returns the cached entry for endpoint+params, or invokes
// produce exactly once to obtain, store, and return a fresh one.
func (f *ReadThroughFetcher) ReadThrough(
	ctx context.Context,
	endpoint string,
	params map[string]string,
	kind cachestore.Kind,
	produce Producer,
) (cachestore.Entry, error) {
	key := cachekey.BuildKey(endpoint, params)

	if entry, found := f.store.Get(key); found {
		f.sink.RecordCacheHit(key)
		return entry, nil
	}

	payload, err := produce(ctx)
	if err != nil {
		return cachestore.Entry{}, err
	}

	var entry cachestore.Entry
	switch kind {
	case cachestore.KindJSON:
		entry = cachestore.NewJSONEntry(payload)
	default:
		entry = cachestore.NewTextEntry(string(payload))
	}

	// Store failures are recorded by the store itself; the fresh payload
	// is still good, so the operation goes on. The write event is only
	// emitted for writes that actually landed.
	if err := f.store.Put(key, entry); err == nil {
		f.sink.RecordCacheWrite(key, hashutil.ShortHash(payload))
	}

	return entry, nil
}

// FetchPage routes an HTML page request through the cache, fetching the
// page over HTTP on a miss. The full URL is the cache key.
func (f *ReadThroughFetcher) FetchPage(ctx context.Context, pageURL string) (cachestore.Entry, error) {
	return f.ReadThrough(ctx, pageURL, nil, cachestore.KindText, func(ctx context.Context) ([]byte, error) {
		return f.performFetch(ctx, pageURL, true)
	})
}

// FetchQuery routes a parameterized JSON request through the cache,
// issuing a GET with URL-encoded query parameters on a miss.
func (f *ReadThroughFetcher) FetchQuery(
	ctx context.Context,
	endpoint string,
	params map[string]string,
) (cachestore.Entry, error) {
	return f.ReadThrough(ctx, endpoint, params, cachestore.KindJSON, func(ctx context.Context) ([]byte, error) {
		return f.performFetch(ctx, urlutil.WithQuery(endpoint, params), false)
	})
}

func (f *ReadThroughFetcher) performFetch(ctx context.Context, rawURL string, wantHTML bool) ([]byte, error) {
	startTime := time.Now()

	body, statusCode, contentType, err := f.doRequest(ctx, rawURL, wantHTML)

	f.sink.RecordFetch(rawURL, statusCode, time.Since(startTime), contentType)

	if err != nil {
		f.recordFetchError("ReadThroughFetcher.performFetch", rawURL, err)
		return nil, err
	}
	return body, nil
}

func (f *ReadThroughFetcher) recordFetchError(callerMethod string, fetchUrl string, err error) {
	var fetchError *FetchError
	if errors.As(err, &fetchError) {
		f.sink.RecordError(
			time.Now(),
			"fetcher",
			callerMethod,
			mapFetchErrorToMetadataCause(fetchError),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, fetchUrl),
			},
		)
	}
}

func (f *ReadThroughFetcher) doRequest(ctx context.Context, rawURL string, wantHTML bool) ([]byte, int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, "", &FetchError{
			Message:   fmt.Sprintf("failed to create request: %v", err),
			Retryable: false,
			Cause:     ErrCauseNetworkFailure,
		}
	}

	// Apply browser-like headers
	for key, value := range requestHeaders(f.userAgent, wantHTML) {
		req.Header.Set(key, value)
	}

	f.waitForHost(req.URL)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, 0, "", &FetchError{
			Message:   fmt.Sprintf("request failed: %v", err),
			Retryable: true,
			Cause:     ErrCauseNetworkFailure,
		}
	}
	defer resp.Body.Close()

	f.rateLimiter.MarkLastFetchAsNow(req.URL.Host)

	contentType := resp.Header.Get("Content-Type")

	switch {
	case resp.StatusCode >= 500:
		return nil, resp.StatusCode, contentType, &FetchError{
			Message:   fmt.Sprintf("server error: %d", resp.StatusCode),
			Retryable: true,
			Cause:     ErrCauseRequest5xx,
		}

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.StatusCode, contentType, &FetchError{
			Message:   "rate limited (429)",
			Retryable: true,
			Cause:     ErrCauseRequestTooMany,
		}

	case resp.StatusCode >= 400:
		return nil, resp.StatusCode, contentType, &FetchError{
			Message:   fmt.Sprintf("client error: %d", resp.StatusCode),
			Retryable: false,
			Cause:     ErrCauseRequestRejected,
		}
	}

	if wantHTML && !isHTMLContent(contentType) {
		return nil, resp.StatusCode, contentType, &FetchError{
			Message:   fmt.Sprintf("non-HTML content type: %s", contentType),
			Retryable: false,
			Cause:     ErrCauseContentTypeInvalid,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, contentType, &FetchError{
			Message:   fmt.Sprintf("failed to read response body: %v", err),
			Retryable: true,
			Cause:     ErrCauseReadResponseBodyError,
		}
	}

	return body, resp.StatusCode, contentType, nil
}

// waitForHost blocks for the politeness delay owed to the host.
// Cache hits never reach this point.
func (f *ReadThroughFetcher) waitForHost(u *url.URL) {
	if delay := f.rateLimiter.ResolveDelay(u.Host); delay > 0 {
		time.Sleep(delay)
	}
}

func isHTMLContent(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "application/xhtml")
}

func requestHeaders(userAgent string, wantHTML bool) map[string]string {
	accept := "application/json,*/*;q=0.8"
	if wantHTML {
		accept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	}
	return map[string]string{
		"User-Agent":      userAgent,
		"Accept":          accept,
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}
}
