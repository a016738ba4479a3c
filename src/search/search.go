// Package search provides the web retrieval backends the embedded engine
// gathers source material from.
package search

import "context"

// Result is one retrieved source.
type Result struct {
	Title   string
	URL     string
	Content string
}

// Backend queries a web search API.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
