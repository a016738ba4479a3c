package researcher

import (
	"context"
	"testing"

	utcp "github.com/universal-tool-calling-protocol/go-utcp"
	"github.com/universal-tool-calling-protocol/go-utcp/src/providers/base"
)

func TestAsUTCPTool(t *testing.T) {
	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	utcpTool := AsUTCPTool(web)
	if utcpTool.Name != "researcher.web_researcher" {
		t.Errorf("expected tool name 'researcher.web_researcher', got %q", utcpTool.Name)
	}
	if bp, ok := utcpTool.Provider.(*base.BaseProvider); !ok || bp.Name != "researcher" {
		t.Errorf("expected provider 'researcher', got %#v", utcpTool.Provider)
	}
	if utcpTool.Handler == nil {
		t.Fatalf("expected an in-process handler")
	}
	if _, ok := utcpTool.Inputs.Properties["query"]; !ok {
		t.Errorf("expected 'query' in input schema")
	}

	out, err := utcpTool.Handler(context.Background(), map[string]any{"query": "golang history"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if out != "report for golang history" {
		t.Fatalf("unexpected handler output: %v", out)
	}
}

func TestRegisterUTCPProviderCallTool(t *testing.T) {
	ctx := context.Background()

	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	client, err := utcp.NewUTCPClient(ctx, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewUTCPClient returned error: %v", err)
	}

	if err := RegisterUTCPProvider(ctx, client, web); err != nil {
		t.Fatalf("RegisterUTCPProvider returned error: %v", err)
	}

	out, err := client.CallTool(ctx, "researcher.web_researcher", map[string]any{"query": "golang history"})
	if err != nil {
		t.Fatalf("CallTool returned error: %v", err)
	}
	report, ok := out.(string)
	if !ok {
		t.Fatalf("expected a string report, got %T", out)
	}
	if report != "report for golang history" {
		t.Fatalf("unexpected report: %q", report)
	}
	if eng.jobs != 1 {
		t.Fatalf("expected one engine job, got %d", eng.jobs)
	}
}

func TestRegisterUTCPProviderTwoTools(t *testing.T) {
	ctx := context.Background()

	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}
	local, err := NewLocalResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewLocalResearcher returned error: %v", err)
	}

	client, err := utcp.NewUTCPClient(ctx, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewUTCPClient returned error: %v", err)
	}
	if err := RegisterUTCPProvider(ctx, client, web); err != nil {
		t.Fatalf("registering web tool: %v", err)
	}
	if err := RegisterUTCPProvider(ctx, client, local); err != nil {
		t.Fatalf("registering local tool: %v", err)
	}

	for _, name := range []string{"researcher.web_researcher", "researcher.local_researcher"} {
		out, err := client.CallTool(ctx, name, map[string]any{"query": "ping"})
		if err != nil {
			t.Fatalf("CallTool(%s) returned error: %v", name, err)
		}
		if out != "report for ping" {
			t.Fatalf("unexpected output from %s: %v", name, out)
		}
	}
}

func TestAsUTCPToolRejectsMissingQuery(t *testing.T) {
	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	utcpTool := AsUTCPTool(web)
	if _, err := utcpTool.Handler(context.Background(), map[string]any{}); err == nil {
		t.Fatalf("expected error for missing query")
	}
	if _, err := utcpTool.Handler(context.Background(), map[string]any{"query": "  "}); err == nil {
		t.Fatalf("expected error for blank query")
	}
	if eng.jobs != 0 {
		t.Fatalf("engine was invoked with an invalid query: %d jobs", eng.jobs)
	}
}
