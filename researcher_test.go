package researcher

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Protocol-Lattice/go-researcher/src/engine"
)

type fakeJob struct {
	eng    *fakeEngine
	req    engine.Request
	report string
}

func (j *fakeJob) ConductResearch(ctx context.Context) error {
	j.eng.calls = append(j.eng.calls, "research:"+j.req.Query)
	return j.eng.researchErr
}

func (j *fakeJob) WriteReport(ctx context.Context) (string, error) {
	j.eng.calls = append(j.eng.calls, "report:"+j.req.Query)
	if j.eng.reportErr != nil {
		return "", j.eng.reportErr
	}
	if j.report != "" {
		return j.report, nil
	}
	return "report for " + j.req.Query, nil
}

type fakeEngine struct {
	calls       []string
	jobs        int
	lastReq     engine.Request
	report      string
	newJobErr   error
	researchErr error
	reportErr   error
}

func (e *fakeEngine) NewJob(req engine.Request) (engine.Job, error) {
	e.jobs++
	e.lastReq = req
	if e.newJobErr != nil {
		return nil, e.newJobErr
	}
	return &fakeJob{eng: e, req: req, report: e.report}, nil
}

func invoke(t *testing.T, tool Tool, query string) (ToolResponse, error) {
	t.Helper()
	return tool.Invoke(context.Background(), ToolRequest{
		Arguments: map[string]any{"query": query},
	})
}

func TestWebResearcherRunsTwoStepSequenceOnce(t *testing.T) {
	eng := &fakeEngine{}
	tool, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	resp, err := invoke(t, tool, "quantum computing")
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if resp.Content != "report for quantum computing" {
		t.Fatalf("unexpected report: %q", resp.Content)
	}

	want := []string{"research:quantum computing", "report:quantum computing"}
	if len(eng.calls) != len(want) {
		t.Fatalf("expected %d engine calls, got %v", len(want), eng.calls)
	}
	for i := range want {
		if eng.calls[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], eng.calls[i])
		}
	}
	if eng.jobs != 1 {
		t.Fatalf("expected exactly one job, got %d", eng.jobs)
	}
}

func TestReportReturnedVerbatim(t *testing.T) {
	eng := &fakeEngine{report: "  # Findings \n\nraw text, untouched\t"}
	tool, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	resp, err := invoke(t, tool, "anything")
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if resp.Content != eng.report {
		t.Fatalf("report was transformed: %q", resp.Content)
	}
}

func TestEngineFailuresWrappedUniformly(t *testing.T) {
	cases := []struct {
		name string
		eng  *fakeEngine
	}{
		{"job construction", &fakeEngine{newJobErr: errors.New("bad credentials")}},
		{"conduct research", &fakeEngine{researchErr: errors.New("search quota exceeded")}},
		{"write report", &fakeEngine{reportErr: errors.New("model unavailable")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tool, err := NewWebResearcher(tc.eng, ReportResearch)
			if err != nil {
				t.Fatalf("NewWebResearcher returned error: %v", err)
			}
			_, err = invoke(t, tool, "q")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrReportFailed) {
				t.Fatalf("expected ErrReportFailed, got %v", err)
			}
			var original string
			switch {
			case tc.eng.newJobErr != nil:
				original = tc.eng.newJobErr.Error()
			case tc.eng.researchErr != nil:
				original = tc.eng.researchErr.Error()
			default:
				original = tc.eng.reportErr.Error()
			}
			if !strings.Contains(err.Error(), original) {
				t.Fatalf("original message %q missing from %q", original, err.Error())
			}
		})
	}
}

func TestInvalidReportTypeRejectedBeforeEngine(t *testing.T) {
	eng := &fakeEngine{}
	if _, err := NewWebResearcher(eng, ReportType("detailed_report")); err == nil {
		t.Fatalf("expected error for unknown report type")
	}
	if _, err := NewLocalResearcher(eng, ReportType("x")); err == nil {
		t.Fatalf("expected error for unknown report type")
	}
	if eng.jobs != 0 {
		t.Fatalf("engine was invoked during construction: %d jobs", eng.jobs)
	}
}

func TestInvalidReportSourceRejectedBeforeEngine(t *testing.T) {
	eng := &fakeEngine{}
	if _, err := newBaseResearcher(eng, "t", "d", ReportResearch, ReportSource("hybrid")); err == nil {
		t.Fatalf("expected error for unknown report source")
	}
	if eng.jobs != 0 {
		t.Fatalf("engine was invoked during construction: %d jobs", eng.jobs)
	}
}

func TestMissingQueryRejectedBeforeEngine(t *testing.T) {
	eng := &fakeEngine{}
	tool, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	for name, args := range map[string]map[string]any{
		"absent":     {},
		"empty":      {"query": "   "},
		"not string": {"query": 42},
	} {
		if _, err := tool.Invoke(context.Background(), ToolRequest{Arguments: args}); err == nil {
			t.Fatalf("%s query: expected error", name)
		}
	}
	if eng.jobs != 0 {
		t.Fatalf("engine was invoked with an invalid query: %d jobs", eng.jobs)
	}
}

func TestSequentialInvocationsAreIndependent(t *testing.T) {
	eng := &fakeEngine{}
	tool, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	first, err := invoke(t, tool, "first topic")
	if err != nil {
		t.Fatalf("first Invoke returned error: %v", err)
	}
	second, err := invoke(t, tool, "second topic")
	if err != nil {
		t.Fatalf("second Invoke returned error: %v", err)
	}

	if first.Content != "report for first topic" || second.Content != "report for second topic" {
		t.Fatalf("cross-call leakage: %q / %q", first.Content, second.Content)
	}
	if eng.jobs != 2 {
		t.Fatalf("expected a fresh job per invocation, got %d", eng.jobs)
	}
}

func TestDefaultReportType(t *testing.T) {
	eng := &fakeEngine{}
	tool, err := NewWebResearcher(eng, "")
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}
	if _, err := invoke(t, tool, "q"); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if eng.lastReq.ReportType != string(ReportResearch) {
		t.Fatalf("expected default research_report, got %q", eng.lastReq.ReportType)
	}
	if eng.lastReq.ReportSource != string(SourceWeb) {
		t.Fatalf("expected web source, got %q", eng.lastReq.ReportSource)
	}
}

func TestLocalResearcherSpec(t *testing.T) {
	eng := &fakeEngine{}
	tool, err := NewLocalResearcher(eng, ReportOutline)
	if err != nil {
		t.Fatalf("NewLocalResearcher returned error: %v", err)
	}

	spec := tool.Spec()
	if spec.Name != "local_researcher" {
		t.Errorf("expected name 'local_researcher', got %q", spec.Name)
	}
	if spec.Description == "" {
		t.Errorf("expected a description")
	}
	props, ok := spec.InputSchema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties in input schema")
	}
	if _, ok := props["query"]; !ok {
		t.Errorf("expected 'query' property in input schema")
	}

	if _, err := invoke(t, tool, "q"); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if eng.lastReq.ReportSource != string(SourceLocal) {
		t.Fatalf("expected local source, got %q", eng.lastReq.ReportSource)
	}
	if eng.lastReq.ReportType != string(ReportOutline) {
		t.Fatalf("expected outline_report, got %q", eng.lastReq.ReportType)
	}
}

func TestRequiresEngine(t *testing.T) {
	if _, err := NewWebResearcher(nil, ReportResearch); err == nil {
		t.Fatalf("expected error when engine is missing")
	}
}
