package server

import "github.com/ironsheep/image-style-mcp/internal/style"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// styleNames lists the registered style identifiers for schema enums.
func styleNames() []string {
	styles := style.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Styling
		{
			Name:        "style_apply",
			Description: "Apply an artistic style to an image and return the result as a PNG data URI. Provide either a file path or inline base64 image data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the input image file",
					},
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Input image as a data URI or bare base64 (alternative to path)",
					},
					"style": map[string]interface{}{
						"type":        "string",
						"enum":        styleNames(),
						"description": "Style to apply",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional dithering seed. The same seed and input always give the same output",
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Optional. Downsize the input so neither side exceeds this many pixels before styling. 0 keeps the original size",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional. Write the PNG here instead of returning it inline",
					},
				},
				"required": []string{"style"},
			},
		},
		{
			Name:        "style_list",
			Description: "List the available styles with a short description of each.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "style_palette",
			Description: "List the fixed colors used by the picasso style: 9 fill colors and 1 outline color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Image Information
		{
			Name:        "image_info",
			Description: "Get the width, height, format and file size of an image file without decoding its pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
