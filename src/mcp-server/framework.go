// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zhiweicoding/devtoolbox/src/internal/config"
)

// serverName is the implementation name reported to MCP clients.
const serverName = "X509 Certificate Decoder"

// ErrMissingConfig is returned by [ServerBuilder.Build] when no configuration was set.
var ErrMissingConfig = errors.New("mcpserver: missing configuration")

// ToolHandler defines the signature for tool handlers.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: The MCP tool call request containing arguments
//   - cfg: Loaded configuration providing the default format and warning threshold
//
// Returns:
//   - The tool execution result, or an error only for protocol-level failures.
//     Input and decoding problems are returned as error results.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool specification with its handler.
// Role is a stable key used by the instructions template to refer to the tool.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds everything needed to create the MCP server.
type ServerDependencies struct {
	Config       *config.Config
	Version      string
	Tools        []ToolDefinition
	Resources    []server.ServerResource
	Instructions string
}

// ServerBuilder assembles an [MCP] server with a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion(version).
//		WithDefaultTools().
//		Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration handed to every tool handler.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the server version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tool definitions.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds the certificate decoding tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithResources adds static resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithInstructions sets the instructions sent to clients at initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - [ErrMissingConfig] if WithConfig was not called
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Config == nil {
		return nil, ErrMissingConfig
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
	}
	if len(b.deps.Resources) > 0 {
		opts = append(opts, server.WithResourceCapabilities(false, false))
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)
	s.AddTools(serverTools(b.deps.Config, b.deps.Tools)...)
	for _, r := range b.deps.Resources {
		s.AddResource(r.Resource, r.Handler)
	}

	return s, nil
}

// serverTools binds cfg to every handler.
func serverTools(cfg *config.Config, tools []ToolDefinition) []server.ServerTool {
	out := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		handler := tool.Handler
		out = append(out, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, cfg)
			},
		})
	}
	return out
}
