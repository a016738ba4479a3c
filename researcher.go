package researcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Protocol-Lattice/go-researcher/src/engine"
)

// ErrReportFailed is the single error kind surfaced when the research engine
// fails. The engine's original message is preserved in the wrapped error.
var ErrReportFailed = errors.New("report generation failed")

// baseResearcher translates a single query into a single report by delegating
// to a research engine. Configuration is fixed at construction; all per-call
// state lives in the engine job, so a researcher is safe for concurrent use.
type baseResearcher struct {
	engine       engine.Engine
	name         string
	description  string
	reportType   ReportType
	reportSource ReportSource
}

func newBaseResearcher(eng engine.Engine, name, description string, reportType ReportType, reportSource ReportSource) (*baseResearcher, error) {
	if eng == nil {
		return nil, errors.New("researcher requires an engine")
	}
	if reportType == "" {
		reportType = ReportResearch
	}
	if !reportType.Valid() {
		return nil, fmt.Errorf("invalid report type %q", reportType)
	}
	if !reportSource.Valid() {
		return nil, fmt.Errorf("invalid report source %q", reportSource)
	}
	return &baseResearcher{
		engine:       eng,
		name:         name,
		description:  description,
		reportType:   reportType,
		reportSource: reportSource,
	}, nil
}

func (r *baseResearcher) Spec() ToolSpec {
	return ToolSpec{
		Name:        r.name,
		Description: r.description,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query for the research.",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (r *baseResearcher) Invoke(ctx context.Context, req ToolRequest) (ToolResponse, error) {
	query, ok := req.Arguments["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return ToolResponse{}, fmt.Errorf("missing or invalid 'query' argument")
	}

	report, err := r.getReport(ctx, query)
	if err != nil {
		return ToolResponse{}, err
	}
	return ToolResponse{Content: report}, nil
}

// getReport runs the engine's two-step sequence, conduct research then write
// report, exactly once each, and returns the report text verbatim. Any engine
// failure surfaces as ErrReportFailed with the original message attached.
func (r *baseResearcher) getReport(ctx context.Context, query string) (string, error) {
	job, err := r.engine.NewJob(engine.Request{
		Query:        query,
		ReportType:   string(r.reportType),
		ReportSource: string(r.reportSource),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportFailed, err)
	}
	if err := job.ConductResearch(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportFailed, err)
	}
	report, err := job.WriteReport(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportFailed, err)
	}
	return report, nil
}

// NewLocalResearcher returns a tool that researches a topic using documents
// from the engine's configured local document directory. For the embedded
// engine the directory comes from DOC_PATH (or GPTR_DOC_PATH).
func NewLocalResearcher(eng engine.Engine, reportType ReportType) (Tool, error) {
	return newBaseResearcher(eng,
		"local_researcher",
		"Conduct thorough research on a specific topic or query by accessing data and files from the local document directory.",
		reportType, SourceLocal)
}

// NewWebResearcher returns a tool that researches a topic using the internet.
func NewWebResearcher(eng engine.Engine, reportType ReportType) (Tool, error) {
	return newBaseResearcher(eng,
		"web_researcher",
		"Conduct thorough research on a specific topic or query using the internet.",
		reportType, SourceWeb)
}
