// Package engine defines the research-engine contract the researcher tools
// delegate to, plus two implementations: an embedded engine that performs
// retrieval and synthesis in-process, and a client for a hosted research
// service.
package engine

import "context"

// Request fixes the parameters of a single research job. ReportType and
// ReportSource are passed through as strings; membership in their closed
// enumerations is enforced by the tool layer before a job is created.
type Request struct {
	Query        string
	ReportType   string
	ReportSource string
}

// Job is one research task. ConductResearch gathers source material and
// WriteReport produces the report text; callers run them sequentially,
// exactly once each. Jobs are single-use and hold no state shared with
// other jobs.
type Job interface {
	ConductResearch(ctx context.Context) error
	WriteReport(ctx context.Context) (string, error)
}

// Engine creates research jobs. Implementations must validate the request
// and return an error before any work happens when it cannot be served.
type Engine interface {
	NewJob(req Request) (Job, error)
}

// Report sources understood by the engines in this package.
const (
	SourceLocal = "local"
	SourceWeb   = "web"
)
