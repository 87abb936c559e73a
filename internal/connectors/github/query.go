package github

import (
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v80/github"
	"github.com/google/go-querystring/query"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// repoListOptions narrows repository list requests.
type repoListOptions struct {
	Sort      string `url:"sort,omitempty"`
	Direction string `url:"direction,omitempty"`
}

// forkListOptions orders fork list requests.
type forkListOptions struct {
	Sort string `url:"sort,omitempty"`
}

// BuildQuery merges query layers into one set of values. Each layer is a
// struct with `url` tags; keys set by a later layer replace earlier ones
// and zero fields tagged omitempty leave earlier values in place.
func BuildQuery(layers ...any) (url.Values, error) {
	out := url.Values{}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		v, err := query.Values(layer)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		for key, vals := range v {
			out[key] = vals
		}
	}
	return out, nil
}

// pageOptions converts a domain page into go-github list options.
// An oversized page size is clamped to the API maximum.
func pageOptions(page domain.Page) gh.ListOptions {
	opts := gh.ListOptions{Page: max(page.Number, 0)}
	if page.PerPage > 0 {
		opts.PerPage = domain.ClampPerPage(page.PerPage)
	}
	return opts
}

// listPath appends the merged pagination query to path. The client's
// default page size is applied first, then the caller's page, then extra.
func (c *Client) listPath(path string, page domain.Page, extra ...any) (string, error) {
	layers := append([]any{gh.ListOptions{PerPage: c.perPage}, pageOptions(page)}, extra...)
	values, err := BuildQuery(layers...)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return path, nil
	}
	return path + "?" + values.Encode(), nil
}
