package researcher

import "context"

// ToolSpec describes how an agent runtime should present a tool to its model.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// ToolRequest captures a single invocation of a tool.
type ToolRequest struct {
	SessionID string
	Arguments map[string]any
}

// ToolResponse carries the text produced by a tool invocation.
type ToolResponse struct {
	Content  string
	Metadata map[string]string
}

// Tool exposes structured metadata and an invocation handler. The researcher
// tools in this package implement it so they can be registered directly with
// agent runtimes that speak this contract.
type Tool interface {
	Spec() ToolSpec
	Invoke(ctx context.Context, req ToolRequest) (ToolResponse, error)
}

// ToolCatalog maintains an ordered set of tools and provides lookup by name.
type ToolCatalog interface {
	Register(tool Tool) error
	Lookup(name string) (Tool, ToolSpec, bool)
	Specs() []ToolSpec
}
