// Package integrations provides the shared HTTP client used by upstream API
// clients.
//
// # Client Pattern
//
// API clients embed [Client] and build their endpoints on top of it:
//
//	base := integrations.NewClient(c, "github", 6*time.Hour, headers)
//	err := base.Cached(ctx, "user:octocat", false, &profile, func() error {
//	    return base.Get(ctx, url, &profile)
//	})
//
// [Client] handles:
//   - JSON over HTTP GET and POST with default headers
//   - Response caching through [cache.Cache] with a TTL
//   - HTTP and cache observability hooks
//
// Requests are not retried. Failures are returned as coded errors from
// [errors]: DATA_FETCH for transport failures and non-2xx responses (the
// message carries the endpoint and HTTP status text) and MALFORMED_DATA for
// undecodable bodies. [ErrNotFound] and [ErrNetwork] remain reachable with
// the standard errors.Is.
//
// The [github] subpackage implements the GitHub REST and GraphQL client.
//
// [github]: github.com/matzehuels/ghstats/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/ghstats/pkg/cache.Cache
// [errors]: github.com/matzehuels/ghstats/pkg/errors
package integrations
