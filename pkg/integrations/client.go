package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/ghstats/pkg/cache"
	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/observability"
)

// Client provides shared HTTP functionality for upstream API clients.
// It handles response caching, observability hooks and common request headers.
// Requests are never retried.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	keyer     cache.Keyer
	namespace string
	ttl       time.Duration
	headers   map[string]string
}

// NewClient creates a Client with the given cache and default headers.
// Cache keys are built from namespace through the default keyer; pass a nil
// cache to disable caching. Headers are applied to all requests made through
// this client and may be nil.
func NewClient(c cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:      NewHTTPClient(),
		cache:     c,
		keyer:     cache.NewDefaultKeyer(),
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
	}
}

// SetKeyer replaces the keyer used to build cache keys.
func (c *Client) SetKeyer(k cache.Keyer) {
	if k != nil {
		c.keyer = k
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is not read and fetch is always called.
// The fetch function should populate v; on success, v is stored in the cache.
// Cache failures never fail the call.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	hooks := observability.Cache()
	fullKey := c.keyer.HTTPKey(c.namespace, key)

	if !refresh {
		data, ok, err := c.cache.Get(ctx, fullKey)
		if err == nil && ok && json.Unmarshal(data, v) == nil {
			hooks.OnCacheHit(ctx, c.namespace)
			return nil
		}
		hooks.OnCacheMiss(ctx, c.namespace)
	}

	if err := fetch(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	if c.cache.Set(ctx, fullKey, data, c.ttl) == nil {
		hooks.OnCacheSet(ctx, c.namespace, len(data))
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, endpoint string, v any) error {
	return c.GetWithHeaders(ctx, endpoint, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, endpoint string, headers map[string]string, v any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, headers, v)
}

// Post JSON-encodes body, sends it with HTTP POST and decodes the response into v.
func (c *Client) Post(ctx context.Context, endpoint string, body, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode request for %s", endpoint)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return c.do(ctx, http.MethodPost, endpoint, payload, headers, v)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, method, endpoint, payload, headers)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedData, err, "decode %s %s", method, endpoint)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload []byte, headers map[string]string) (io.ReadCloser, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request %s %s", method, endpoint)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := hostPath(req.URL)
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeDataFetch, fmt.Errorf("%w: %v", ErrNetwork, err), "%s %s", method, endpoint)
	}
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, errors.Wrap(errors.ErrCodeDataFetch, err, "%s %s: %s", method, endpoint, resp.Status)
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	default:
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, code)
	}
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
