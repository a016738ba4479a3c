package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

type OllamaProvider struct {
	Client *ollama.Client
	Model  string
}

// NewOllamaProvider constructs a client against OLLAMA_HOST, defaulting to
// the local daemon.
func NewOllamaProvider(model string) (*OllamaProvider, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

	return &OllamaProvider{Client: ollama.NewClient(u, httpClient), Model: model}, nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var text strings.Builder

	req := &ollama.GenerateRequest{
		Model:  o.Model,
		Prompt: prompt,
	}

	if err := o.Client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		if gr.Response != "" {
			text.WriteString(gr.Response)
		}
		return nil
	}); err != nil {
		return "", err
	}

	return text.String(), nil
}

var _ Provider = (*OllamaProvider)(nil)
