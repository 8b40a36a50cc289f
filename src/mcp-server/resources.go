// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zhiweicoding/devtoolbox/src/internal/config"
	"github.com/zhiweicoding/devtoolbox/src/mcp-server/templates"
)

// Resource URIs.
const (
	uriConfigTemplate = "config://template"
	uriVersion        = "info://version"
	uriReportFields   = "docs://report-fields"
)

// createResources returns the static resources served alongside the tools.
//
// Resources:
//   - config://template: JSON configuration file with every default filled in
//   - info://version: server name, version, tools, and supported formats
//   - docs://report-fields: markdown reference for the report fields
func createResources(fs templates.EmbedFS, version string, tools []ToolDefinition) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example configuration file with default values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server version, tools, and supported output formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleVersionResource(version, tools)
			},
		},
		{
			Resource: mcp.NewResource(uriReportFields, "Report Fields",
				mcp.WithResourceDescription("Meaning of every field in a certificate report"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleReportFieldsResource(fs)
			},
		},
	}
}

// handleConfigResource serves the default configuration as JSON.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleVersionResource(version string, tools []ToolDefinition) ([]mcp.ResourceContents, error) {
	toolNames := make([]string, 0, len(tools))
	for _, t := range tools {
		toolNames = append(toolNames, t.Tool.Name)
	}

	versionInfo := map[string]any{
		"name":             serverName,
		"version":          version,
		"type":             "MCP Server",
		"tools":            toolNames,
		"resources":        []string{uriConfigTemplate, uriVersion, uriReportFields},
		"supportedFormats": []string{"text", "json", "yaml", "table"},
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleReportFieldsResource(fs templates.EmbedFS) ([]mcp.ResourceContents, error) {
	content, err := fs.ReadFile(templates.ReportFieldsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read report fields: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriReportFields,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
