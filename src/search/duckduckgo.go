package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/Protocol-Lattice/go-researcher/src/httpx"
)

// ddgAPIBase is the DuckDuckGo HTML search endpoint. Declared as a var so
// tests can substitute an httptest server.
var ddgAPIBase = "https://html.duckduckgo.com/html/"

// ddgBodyLimit caps how much of the result page is read.
const ddgBodyLimit = 1 << 20

// DuckDuckGoBackend scrapes the DuckDuckGo HTML endpoint. It needs no API
// key, which makes it the fallback retriever when no Tavily key is
// available.
type DuckDuckGoBackend struct {
	Client *http.Client
}

// NewDuckDuckGoBackend constructs a keyless backend.
func NewDuckDuckGoBackend() *DuckDuckGoBackend {
	return &DuckDuckGoBackend{
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Name returns the backend identifier.
func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

// Search queries the HTML endpoint and parses the result list.
func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty DuckDuckGo query")
	}
	if maxResults <= 0 {
		maxResults = 8
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ddgAPIBase+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// The HTML endpoint rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httpx.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo returned HTTP %d", resp.StatusCode)
	}

	results, err := parseDDGResults(io.LimitReader(resp.Body, ddgBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("parsing DuckDuckGo response: %w", err)
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// parseDDGResults walks the result page. Each result__a anchor starts a new
// result; the following result__snippet fills its content.
func parseDDGResults(r io.Reader) ([]Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var results []Result
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			class := nodeAttr(n, "class")
			switch {
			case n.Data == "a" && strings.Contains(class, "result__a"):
				title := nodeText(n)
				link := resolveDDGLink(nodeAttr(n, "href"))
				if title != "" && link != "" {
					results = append(results, Result{Title: title, URL: link})
				}
				return
			case strings.Contains(class, "result__snippet"):
				if len(results) > 0 && results[len(results)-1].Content == "" {
					results[len(results)-1].Content = nodeText(n)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results, nil
}

// resolveDDGLink unwraps the /l/?uddg= redirect DuckDuckGo puts around
// result links.
func resolveDDGLink(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func nodeAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

var _ Backend = (*DuckDuckGoBackend)(nil)
