// Package github provides an HTTP client for the GitHub REST and GraphQL APIs.
//
// # Overview
//
// The client fetches the four payloads a stats aggregate is built from:
//
//   - [Client.Profile]: GET /users/{login}
//   - [Client.Repositories]: GET /users/{login}/repos?per_page=100
//   - [Client.LanguageTags]: the same repository page, reduced to languages
//   - [Client.Contributions]: POST /graphql, contributionsCollection
//
// Only the first 100 repositories are considered; there is no pagination.
//
// # Usage
//
//	client := github.NewClient(github.Options{Token: token})
//	profile, err := client.Profile(ctx, "octocat", false)
//
// # Authentication
//
// Every request carries "Authorization: Bearer <token>". The GraphQL API
// rejects unauthenticated requests.
//
// # Caching
//
// Responses are cached through the configured [cache.Cache] with the given
// TTL. Pass refresh=true to bypass the cache.
//
// [cache.Cache]: github.com/matzehuels/ghstats/pkg/cache.Cache
package github
