// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"text/template"

	"github.com/zhiweicoding/devtoolbox/src/internal/helper/gc"
	"github.com/zhiweicoding/devtoolbox/src/mcp-server/templates"
)

// instructionData holds the data used to populate the instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // role -> tool name
}

type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the embedded instructions template with the
// names and descriptions of tools.
//
// Returns:
//   - string: The rendered instruction text sent to clients at initialization
//   - error: If the template cannot be read, parsed, or executed
func loadInstructions(fs templates.EmbedFS, tools []ToolDefinition) (string, error) {
	templateBytes, err := fs.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Tools:     make([]toolInfo, 0, len(tools)),
		ToolRoles: make(map[string]string, len(tools)),
	}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}
