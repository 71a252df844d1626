package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/gateway"
	"github.com/compozy/monday-mcp/engine/tools"
	"github.com/compozy/monday-mcp/pkg/errors"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// Dispatcher routes tool invocations through build, execute and normalize
type Dispatcher struct {
	registry *tools.Registry
	gateway  gateway.Gateway
}

// New creates a dispatcher over a registry and a gateway
func New(registry *tools.Registry, gw gateway.Gateway) *Dispatcher {
	return &Dispatcher{registry: registry, gateway: gw}
}

// ListTools returns every registered descriptor
func (d *Dispatcher) ListTools() []mcp.Tool {
	return d.registry.Definitions()
}

// Invoke runs one tool call. Unknown names and missing required arguments
// fail before the gateway is reached.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) ([]core.ContentBlock, error) {
	invocation := core.NewToolInvocation(name, args)
	log := logger.With("tool", invocation.Name, "invocation", invocation.ID)

	tool, ok := d.registry.Lookup(invocation.Name)
	if !ok {
		err := core.NewError(fmt.Errorf("unknown tool: %s", invocation.Name), core.ErrorCodeUnknownTool,
			map[string]any{"tool": invocation.Name})
		log.Error("tool invocation failed", "error", err)
		return nil, err
	}

	start := time.Now()
	blocks, err := errors.WithRecoverTyped("tool "+invocation.Name, func() ([]core.ContentBlock, error) {
		return d.run(ctx, tool, invocation)
	})
	if err != nil {
		log.Error("tool invocation failed", "error", err, "code", core.CodeOf(err))
		return nil, err
	}
	log.Debug("tool invocation completed", "blocks", len(blocks), "duration", time.Since(start))
	return blocks, nil
}

func (d *Dispatcher) run(ctx context.Context, tool tools.Tool, invocation *core.ToolInvocation) ([]core.ContentBlock, error) {
	if missing := missingRequired(tool.Definition(), invocation.Arguments); len(missing) > 0 {
		return nil, core.NewError(
			fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", ")),
			core.ErrorCodeInvalidArguments,
			map[string]any{"missing": missing},
		)
	}

	call, err := tool.Prepare(invocation.Arguments)
	if err != nil {
		return nil, err
	}
	resp, err := d.gateway.Execute(ctx, call.Document)
	if err != nil {
		return nil, err
	}
	return call.Normalize(resp)
}

// missingRequired lists required arguments that are absent, null, blank
// strings or empty lists.
func missingRequired(def mcp.Tool, args map[string]any) []string {
	var missing []string
	for _, name := range def.InputSchema.Required {
		if isEmpty(args[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}
