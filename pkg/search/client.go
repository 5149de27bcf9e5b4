package search

import (
	"context"
	"errors"
)

// Result is one normalized search hit for a product query.
type Result struct {
	Title   string
	Snippet string
	Link    string
	Source  string
}

// ErrNoResults covers every way a query can come back unusable: transport
// failure, a provider-reported error, or a genuinely empty result list.
var ErrNoResults = errors.New("no search results")

type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
	Name() string
}
