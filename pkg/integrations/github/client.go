package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/ghstats/pkg/buildinfo"
	"github.com/matzehuels/ghstats/pkg/cache"
	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/integrations"
	"github.com/matzehuels/ghstats/pkg/stats"
)

// DefaultBaseURL is the public GitHub API root.
const DefaultBaseURL = "https://api.github.com"

// reposPerPage is the single-page collection boundary; no pagination.
const reposPerPage = 100

const namespace = "github"

// Options configures a Client. Zero values select the defaults: the public
// API, no caching and no TTL.
type Options struct {
	BaseURL string
	Token   string
	Cache   cache.Cache
	Keyer   cache.Keyer
	TTL     time.Duration
}

// Client fetches the four payloads the aggregate is built from.
// Every method is safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client authenticated with opts.Token.
func NewClient(opts Options) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github+json",
		"User-Agent": buildinfo.UserAgent(),
	}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}

	base := integrations.NewClient(opts.Cache, namespace, opts.TTL, headers)
	base.SetKeyer(opts.Keyer)

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Client: base, baseURL: baseURL}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Profile fetches GET /users/{login}.
func (c *Client) Profile(ctx context.Context, login string, refresh bool) (*stats.Profile, error) {
	var p stats.Profile
	err := c.Cached(ctx, "user:"+login, refresh, &p, func() error {
		return c.Get(ctx, c.userURL(login), &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Repositories fetches the first page of GET /users/{login}/repos.
func (c *Client) Repositories(ctx context.Context, login string, refresh bool) ([]stats.Repository, error) {
	var repos []stats.Repository
	err := c.Cached(ctx, "repos:"+login, refresh, &repos, func() error {
		return c.Get(ctx, c.reposURL(login), &repos)
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// LanguageTags fetches the same repository page and returns the primary
// language of each repository. It is cached under its own key so that it
// stays an independent fetch.
func (c *Client) LanguageTags(ctx context.Context, login string, refresh bool) ([]string, error) {
	var tags []string
	err := c.Cached(ctx, "languages:"+login, refresh, &tags, func() error {
		var repos []stats.Repository
		if err := c.Get(ctx, c.reposURL(login), &repos); err != nil {
			return err
		}
		tags = stats.LanguageTags(repos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Contributions runs the contributionsCollection GraphQL query.
func (c *Client) Contributions(ctx context.Context, login string, refresh bool) (*stats.ContributionsCollection, error) {
	var cc stats.ContributionsCollection
	err := c.Cached(ctx, "contributions:"+login, refresh, &cc, func() error {
		return c.queryContributions(ctx, login, &cc)
	})
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (c *Client) queryContributions(ctx context.Context, login string, out *stats.ContributionsCollection) error {
	endpoint := c.baseURL + "/graphql"
	req := graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]any{"username": login},
	}

	var resp contributionsResponse
	if err := c.Post(ctx, endpoint, req, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return errors.New(errors.ErrCodeDataFetch, "POST %s: %s", endpoint, resp.Errors[0].Message)
	}
	if resp.Data == nil || resp.Data.User == nil || resp.Data.User.ContributionsCollection == nil {
		return errors.New(errors.ErrCodeMalformedData, "POST %s: response lacks user.contributionsCollection", endpoint)
	}
	*out = *resp.Data.User.ContributionsCollection
	return nil
}

func (c *Client) userURL(login string) string {
	return fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(login))
}

func (c *Client) reposURL(login string) string {
	return fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, url.PathEscape(login), reposPerPage)
}
