// Package github fetches raw records from the GitHub REST API.
//
// The Client implements [driven.ResourceSource]. Each method issues a single
// GET request and returns the response body untouched as a
// [domain.RawResource], so that normalisation stays a pure function of the
// bytes GitHub sent. Bodies are never decoded here.
//
// # Authentication
//
// A [driven.TokenProvider] supplies a personal access token, which is wrapped
// in an oauth2 static token source. Without a token the client makes
// anonymous requests, limited by GitHub to 60 per hour.
//
// # Pagination
//
// List methods take a [domain.Page]. The query string is built by layering
// the client's default page size, the caller's page and any endpoint options
// (see [BuildQuery]); later layers win. The page number following the one
// returned is read from the Link header and reported as RawResource.NextPage.
//
// # Rate Limiting
//
// Requests pass through a token bucket of roughly 1.2 requests per second.
// The X-RateLimit-Remaining and X-RateLimit-Reset headers of every response
// are tracked; once the remaining quota falls under a small reserve the
// client waits for the reset.
//
// # Errors
//
// API failures are returned as [*APIError] or [*RateLimitError]. Both unwrap
// to domain sentinels, so callers can test with errors.Is against
// [domain.ErrNotFound], [domain.ErrAuthInvalid] or [domain.ErrRateLimited].
//
// # Example Usage
//
//	client := github.NewClient(github.Options{TokenProvider: tp, PerPage: 30})
//	raw, err := client.ListUserRepos(ctx, "octocat", domain.Page{Number: 1})
//	if err != nil {
//	    return err
//	}
//	repos, err := normaliser.Repos(raw)
package github
