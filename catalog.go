package researcher

import (
	"fmt"
	"strings"
	"sync"
)

// StaticCatalog is an in-memory ToolCatalog that preserves registration order.
type StaticCatalog struct {
	mu    sync.RWMutex
	tools map[string]Tool
	specs map[string]ToolSpec
	order []string
}

// NewStaticCatalog constructs a catalog seeded with the provided tools.
// Invalid entries are skipped.
func NewStaticCatalog(tools ...Tool) *StaticCatalog {
	catalog := &StaticCatalog{
		tools: make(map[string]Tool),
		specs: make(map[string]ToolSpec),
	}
	for _, tool := range tools {
		_ = catalog.Register(tool)
	}
	return catalog
}

// Register adds a tool under a lower-cased key. Duplicate names return an error.
func (c *StaticCatalog) Register(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	spec := tool.Spec()
	key := strings.ToLower(strings.TrimSpace(spec.Name))
	if key == "" {
		return fmt.Errorf("tool name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tools[key]; exists {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}
	c.tools[key] = tool
	c.specs[key] = spec
	c.order = append(c.order, key)
	return nil
}

// Lookup returns the tool and its specification if present.
func (c *StaticCatalog) Lookup(name string) (Tool, ToolSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(name))
	tool, ok := c.tools[key]
	if !ok {
		return nil, ToolSpec{}, false
	}
	return tool, c.specs[key], true
}

// Specs returns the registered tool specifications in registration order.
func (c *StaticCatalog) Specs() []ToolSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ToolSpec, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.specs[key])
	}
	return out
}

var _ ToolCatalog = (*StaticCatalog)(nil)
