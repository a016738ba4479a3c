package researcher

import (
	"fmt"
	"strings"
)

// ReportType selects the template the research engine uses to shape the
// generated report. The set is closed; anything else is rejected before the
// engine is constructed.
type ReportType string

const (
	ReportResearch ReportType = "research_report"
	ReportSubtopic ReportType = "subtopic_report"
	ReportCustom   ReportType = "custom_report"
	ReportOutline  ReportType = "outline_report"
	ReportResource ReportType = "resource_report"
)

var reportTypes = map[ReportType]struct{}{
	ReportResearch: {},
	ReportSubtopic: {},
	ReportCustom:   {},
	ReportOutline:  {},
	ReportResource: {},
}

// Valid reports whether t is a member of the closed report-type enumeration.
func (t ReportType) Valid() bool {
	_, ok := reportTypes[t]
	return ok
}

func (t ReportType) String() string { return string(t) }

// ParseReportType maps a string to a ReportType, rejecting unknown values.
func ParseReportType(s string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown report type %q", s)
	}
	return t, nil
}

// ReportSource selects where the engine gathers its source material.
type ReportSource string

const (
	// SourceLocal researches over documents in a configured local directory.
	SourceLocal ReportSource = "local"
	// SourceWeb researches over live web search results.
	SourceWeb ReportSource = "web"
)

// Valid reports whether s is one of the two supported report sources.
func (s ReportSource) Valid() bool {
	return s == SourceLocal || s == SourceWeb
}

func (s ReportSource) String() string { return string(s) }

// ParseReportSource maps a string to a ReportSource, rejecting unknown values.
func ParseReportSource(v string) (ReportSource, error) {
	s := ReportSource(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown report source %q", v)
	}
	return s, nil
}
