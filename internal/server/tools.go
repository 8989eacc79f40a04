package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func hexColorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"pattern":     "^[0-9A-Fa-f]{6}$",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "color_average",
			Description: "Blend two colors by averaging each RGB channel (floor division). Colors are 6 hex digits without '#', e.g. 123BDF. Returns the blended color as 6 uppercase hex digits.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": hexColorProperty("First color, RRGGBB"),
					"color2": hexColorProperty("Second color, RRGGBB"),
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_describe",
			Description: "Describe a color as canonical hex, CSS hex, RGB components and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexColorProperty("Color, RRGGBB"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a PNG strip of three squares: color1, their average, color2. Returned as base64-encoded PNG for visual comparison.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": hexColorProperty("Left color, RRGGBB"),
					"color2": hexColorProperty("Right color, RRGGBB"),
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length of each square in pixels (1-512). Defaults to the server setting.",
						"minimum":     1,
						"maximum":     512,
					},
				},
				"required": []string{"color1", "color2"},
			},
		},
	}
}

// handleToolsList returns the tool catalogue
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
