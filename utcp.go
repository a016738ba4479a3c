package researcher

import (
	"context"
	"fmt"
	"strings"

	utcp "github.com/universal-tool-calling-protocol/go-utcp"
	"github.com/universal-tool-calling-protocol/go-utcp/src/providers/base"
	"github.com/universal-tool-calling-protocol/go-utcp/src/providers/cli"
	"github.com/universal-tool-calling-protocol/go-utcp/src/repository"
	"github.com/universal-tool-calling-protocol/go-utcp/src/tools"
	"github.com/universal-tool-calling-protocol/go-utcp/src/transports"
)

// researcherCLITransport routes UTCP CallTool invocations for locally
// registered researcher tools straight to their in-process handlers, while
// delegating everything else to the transport it wraps.
type researcherCLITransport struct {
	inner repository.ClientTransport
	tools map[string][]tools.Tool
}

func (t *researcherCLITransport) RegisterToolProvider(ctx context.Context, prov base.Provider) ([]tools.Tool, error) {
	p, ok := prov.(*cli.CliProvider)
	if !ok {
		if t.inner != nil {
			return t.inner.RegisterToolProvider(ctx, prov)
		}
		return nil, fmt.Errorf("unsupported provider type %T", prov)
	}
	if t.tools == nil {
		t.tools = make(map[string][]tools.Tool)
	}
	list, ok := t.tools[p.Name]
	if !ok {
		if t.inner != nil {
			return t.inner.RegisterToolProvider(ctx, prov)
		}
		return nil, fmt.Errorf("researcher tools not found for provider %s", p.Name)
	}
	return list, nil
}

func (t *researcherCLITransport) DeregisterToolProvider(ctx context.Context, prov base.Provider) error {
	if p, ok := prov.(*cli.CliProvider); ok {
		if _, ok := t.tools[p.Name]; ok {
			delete(t.tools, p.Name)
			return nil
		}
	}
	if t.inner != nil {
		return t.inner.DeregisterToolProvider(ctx, prov)
	}
	return nil
}

func (t *researcherCLITransport) CallTool(ctx context.Context, toolName string, args map[string]any, prov base.Provider, _ *string) (any, error) {
	if p, ok := prov.(*cli.CliProvider); ok {
		if list, ok := t.tools[p.Name]; ok {
			for _, tool := range list {
				if tool.Name == toolName || strings.HasSuffix(tool.Name, "."+toolName) {
					if tool.Handler == nil {
						return nil, fmt.Errorf("tool %s has no handler", toolName)
					}
					return tool.Handler(ctx, args)
				}
			}
		}
		if t.inner != nil {
			return t.inner.CallTool(ctx, toolName, args, prov, nil)
		}
		return nil, fmt.Errorf("tool %s not found for provider %s", toolName, p.Name)
	}
	if t.inner != nil {
		return t.inner.CallTool(ctx, toolName, args, prov, nil)
	}
	return nil, fmt.Errorf("unsupported provider type %T", prov)
}

func (t *researcherCLITransport) CallToolStream(ctx context.Context, toolName string, args map[string]any, prov base.Provider) (transports.StreamResult, error) {
	if p, ok := prov.(*cli.CliProvider); ok {
		if _, ok := t.tools[p.Name]; ok {
			return nil, fmt.Errorf("streaming not supported for tool %s (provider %s)", toolName, p.Name)
		}
	}
	if t.inner != nil {
		return t.inner.CallToolStream(ctx, toolName, args, prov)
	}
	return nil, fmt.Errorf("unsupported provider type %T", prov)
}

// utcpNamespace is the provider prefix under which researcher tools are
// registered. UTCP clients resolve tools by their dotted provider.tool name,
// so the callable names are "researcher.web_researcher" and
// "researcher.local_researcher".
const utcpNamespace = "researcher"

// AsUTCPTool exposes a researcher tool over UTCP with an in-process handler.
// The tool accepts:
// - query (required): the research query
// - session_id (optional): caller session id passed through to the tool
func AsUTCPTool(t Tool) tools.Tool {
	spec := t.Spec()
	name := utcpNamespace + "." + spec.Name
	providerName := utcpProviderName(name)
	return tools.Tool{
		Name:        name,
		Description: spec.Description,
		Provider: &base.BaseProvider{
			Name:         providerName,
			ProviderType: base.ProviderCLI, // in-process handler, no remote transport
		},
		Inputs: tools.ToolInputOutputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query for the research.",
				},
				"session_id": map[string]any{
					"type":        "string",
					"description": "Optional session id associated with the invocation.",
				},
			},
			Required: []string{"query"},
		},
		Outputs: tools.ToolInputOutputSchema{
			Type: "object",
			Properties: map[string]any{
				"report": map[string]any{"type": "string"},
			},
		},
		Handler: tools.ToolHandler(func(ctx context.Context, inputs map[string]interface{}) (any, error) {
			query, ok := inputs["query"].(string)
			if !ok || strings.TrimSpace(query) == "" {
				return nil, fmt.Errorf("missing or invalid 'query'")
			}
			sessionID, _ := inputs["session_id"].(string)

			execCtx := ctx
			if execCtx == nil {
				execCtx = context.Background()
			}

			resp, err := t.Invoke(execCtx, ToolRequest{
				SessionID: strings.TrimSpace(sessionID),
				Arguments: map[string]any{"query": query},
			})
			if err != nil {
				return nil, err
			}
			return resp.Content, nil
		}),
	}
}

// RegisterUTCPProvider registers a researcher tool on the provided UTCP
// client. It installs a lightweight in-process transport under the CLI
// provider type to route CallTool invocations directly to the tool.
func RegisterUTCPProvider(ctx context.Context, client utcp.UtcpClientInterface, t Tool) error {
	if client == nil {
		return fmt.Errorf("utcp client is nil")
	}
	if t == nil {
		return fmt.Errorf("tool is nil")
	}

	tool := AsUTCPTool(t)
	providerName := utcpProviderName(tool.Name)

	tp := &cli.CliProvider{
		BaseProvider: base.BaseProvider{
			Name:         providerName,
			ProviderType: base.ProviderCLI,
		},
	}

	transportsMap := client.GetTransports()
	if transportsMap == nil {
		return fmt.Errorf("utcp client transports map is nil")
	}

	existing := transportsMap[string(base.ProviderCLI)]
	var shim *researcherCLITransport
	if maybe, ok := existing.(*researcherCLITransport); ok {
		shim = maybe
	} else {
		shim = &researcherCLITransport{inner: existing}
		transportsMap[string(base.ProviderCLI)] = shim
	}
	if shim.tools == nil {
		shim.tools = make(map[string][]tools.Tool)
	}

	// The client caches a provider's tool list on first registration, so a
	// provider that already carries tools must be deregistered before the
	// grown list is announced again.
	if registered := shim.tools[tp.Name]; len(registered) > 0 {
		if err := client.DeregisterToolProvider(ctx, tp.Name); err != nil {
			return err
		}
		shim.tools[tp.Name] = append(registered, tool)
	} else {
		shim.tools[tp.Name] = append(shim.tools[tp.Name], tool)
	}

	_, err := client.RegisterToolProvider(ctx, tp)
	return err
}

func utcpProviderName(name string) string {
	providerName := strings.TrimSpace(name)
	if parts := strings.Split(providerName, "."); len(parts) > 1 {
		providerName = parts[0]
	}
	return providerName
}
