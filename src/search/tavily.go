package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Protocol-Lattice/go-researcher/src/httpx"
)

// tavilyAPIBase is the Tavily search endpoint. Declared as a var so tests
// can substitute an httptest server.
var tavilyAPIBase = "https://api.tavily.com/search"

// TavilyBackend queries the Tavily search API, the default retriever for
// web research. It needs an API key (TAVILY_API_KEY by convention).
type TavilyBackend struct {
	Client *http.Client
	APIKey string
}

// NewTavilyBackend constructs a backend with the given API key.
func NewTavilyBackend(apiKey string) *TavilyBackend {
	return &TavilyBackend{
		Client: &http.Client{Timeout: 60 * time.Second},
		APIKey: apiKey,
	}
}

// Name returns the backend identifier.
func (b *TavilyBackend) Name() string { return "tavily" }

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search queries the Tavily API and returns the raw results.
func (b *TavilyBackend) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty Tavily query")
	}
	if strings.TrimSpace(b.APIKey) == "" {
		return nil, fmt.Errorf("Tavily API key is not set")
	}
	if maxResults <= 0 {
		maxResults = 8
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     b.APIKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httpx.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Tavily API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Tavily API returned HTTP %d", resp.StatusCode)
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing Tavily response: %w", err)
	}

	results := make([]Result, 0, len(tr.Results))
	for _, r := range tr.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return results, nil
}

var _ Backend = (*TavilyBackend)(nil)
