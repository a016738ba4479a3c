package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Protocol-Lattice/go-researcher/src/docs"
	"github.com/Protocol-Lattice/go-researcher/src/models"
	"github.com/Protocol-Lattice/go-researcher/src/search"
)

const defaultMaxResults = 8

// Embedded runs research in-process. Web jobs retrieve source material from
// a search backend; local jobs read documents from DocsDir. Report synthesis
// goes through the configured LLM provider.
type Embedded struct {
	Model      models.Provider
	Search     search.Backend
	DocsDir    string
	MaxResults int
}

// NewEmbedded constructs an embedded engine. Either a search backend or a
// document directory (or both) must be supplied, depending on which report
// sources the caller intends to use.
func NewEmbedded(model models.Provider, backend search.Backend, docsDir string) *Embedded {
	return &Embedded{
		Model:      model,
		Search:     backend,
		DocsDir:    docsDir,
		MaxResults: defaultMaxResults,
	}
}

func (e *Embedded) NewJob(req Request) (Job, error) {
	if e.Model == nil {
		return nil, errors.New("embedded engine requires an LLM provider")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("research query is empty")
	}
	switch req.ReportSource {
	case SourceWeb:
		if e.Search == nil {
			return nil, errors.New("web research requires a search backend")
		}
	case SourceLocal:
		if strings.TrimSpace(e.DocsDir) == "" {
			return nil, errors.New("local research requires a document directory")
		}
	default:
		return nil, fmt.Errorf("unsupported report source %q", req.ReportSource)
	}
	return &embeddedJob{engine: e, req: req}, nil
}

// embeddedJob holds the per-call state: the request and the source material
// gathered by ConductResearch.
type embeddedJob struct {
	engine    *Embedded
	req       Request
	sources   []string
	conducted bool
}

func (j *embeddedJob) ConductResearch(ctx context.Context) error {
	switch j.req.ReportSource {
	case SourceLocal:
		documents, err := docs.Load(j.engine.DocsDir)
		if err != nil {
			return fmt.Errorf("loading local documents: %w", err)
		}
		for _, doc := range documents {
			j.sources = append(j.sources, fmt.Sprintf("Document: %s\n%s", doc.Path, doc.Content))
		}
	case SourceWeb:
		max := j.engine.MaxResults
		if max <= 0 {
			max = defaultMaxResults
		}
		results, err := j.engine.Search.Search(ctx, j.req.Query, max)
		if err != nil {
			return fmt.Errorf("searching %s: %w", j.engine.Search.Name(), err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no search results for query %q", j.req.Query)
		}
		for _, res := range results {
			j.sources = append(j.sources, fmt.Sprintf("Source: %s (%s)\n%s", res.Title, res.URL, res.Content))
		}
	}
	j.conducted = true
	return nil
}

func (j *embeddedJob) WriteReport(ctx context.Context) (string, error) {
	if !j.conducted {
		return "", errors.New("write report called before conduct research")
	}
	report, err := j.engine.Model.Generate(ctx, reportPrompt(j.req.ReportType, j.req.Query, j.sources))
	if err != nil {
		return "", fmt.Errorf("synthesizing report: %w", err)
	}
	return report, nil
}

var _ Engine = (*Embedded)(nil)
