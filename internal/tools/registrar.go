// Package tools exposes the platform client's service methods as MCP
// tools. The per-service files are generated and maintained by the sync
// workflow; the registrar, built-in tools, and argument helpers are
// handwritten.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

// Registrar wires tools into the MCP server and records each one in the
// runtime registry. Write tools are skipped entirely when write access is
// disabled: they are neither callable nor listed.
type Registrar struct {
	server *server.MCPServer
	reg    *registry.Registry
	deps   *Deps
}

// NewRegistrar creates a registrar for the given server and registry.
func NewRegistrar(srv *server.MCPServer, reg *registry.Registry, deps *Deps) *Registrar {
	return &Registrar{server: srv, reg: reg, deps: deps}
}

// Registry returns the runtime tool registry.
func (r *Registrar) Registry() *registry.Registry { return r.reg }

func (r *Registrar) client() (*xplainable.Client, error) { return r.deps.Client() }

func (r *Registrar) logger() *common.Logger { return r.deps.Logger }

// add registers one tool with the MCP server and the registry. A write
// tool is dropped when write tools are disabled.
func (r *Registrar) add(info registry.ToolInfo, handler server.ToolHandlerFunc) {
	if info.Category == registry.CategoryWrite && !r.reg.WriteToolsEnabled() {
		r.deps.Logger.Debug().Str("tool", info.Name).Msg("Write tool disabled, not registering")
		return
	}

	opts := []mcp.ToolOption{mcp.WithDescription(info.Description)}
	for _, p := range info.Parameters {
		opts = append(opts, paramOption(p))
	}
	r.server.AddTool(mcp.NewTool(info.Name, opts...), r.wrap(info.Name, handler))
	r.reg.Record(info)
}

// paramOption maps a parameter record to its MCP schema option.
func paramOption(p registry.Parameter) mcp.ToolOption {
	var propOpts []mcp.PropertyOption
	if p.Description != "" {
		propOpts = append(propOpts, mcp.Description(p.Description))
	}
	if p.Required {
		propOpts = append(propOpts, mcp.Required())
	}
	switch p.Type {
	case "integer", "number":
		return mcp.WithNumber(p.Name, propOpts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, propOpts...)
	case "array":
		propOpts = append(propOpts, mcp.Items(map[string]any{"type": "string"}))
		return mcp.WithArray(p.Name, propOpts...)
	case "object":
		return mcp.WithObject(p.Name, propOpts...)
	case "object_list":
		propOpts = append(propOpts, mcp.Items(map[string]any{"type": "object"}))
		return mcp.WithArray(p.Name, propOpts...)
	default:
		return mcp.WithString(p.Name, propOpts...)
	}
}

// wrap tags each invocation with a short correlation id and records its
// duration.
func (r *Registrar) wrap(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		correlationID := uuid.New().String()[:8]
		log := r.deps.Logger.WithCorrelationId(correlationID)
		log.Debug().Str("tool", name).Msg("Tool call received")

		start := time.Now()
		result, err := handler(ctx, request)
		log.Debug().Str("tool", name).Dur("duration", time.Since(start)).Msg("Tool call completed")
		return result, err
	}
}

// toolResult encodes a normalized value as a JSON text result.
func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// objectArg extracts an object argument, nil when absent or not an object.
func objectArg(request mcp.CallToolRequest, key string) map[string]any {
	if m, ok := request.GetArguments()[key].(map[string]any); ok {
		return m
	}
	return nil
}

// objectListArg extracts a list-of-objects argument, nil when absent.
func objectListArg(request mcp.CallToolRequest, key string) []map[string]any {
	raw, ok := request.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// RegisterAll wires the generated tools and the built-in discovery tools.
func RegisterAll(reg *Registrar) {
	RegisterGenerated(reg)
	addBuiltinTools(reg)
}
