package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-style-mcp/internal/envelope"
	"github.com/ironsheep/image-style-mcp/internal/imageio"
	"github.com/ironsheep/image-style-mcp/internal/style"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "style_apply", "image_info").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// A style that fails on valid arguments (bad image bytes, unknown style) is
// not an execution error: it comes back as a normal result with
// success=false.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Styling
	case "style_apply":
		return s.handleStyleApply(args)
	case "style_list":
		return s.handleStyleList()
	case "style_palette":
		return s.handleStylePalette()

	// Image Information
	case "image_info":
		return s.handleImageInfo(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating missing arguments as {}.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Styling Handlers ===

type styleApplyArgs struct {
	Path         string  `json:"path"`
	ImageBase64  string  `json:"image_base64"`
	Style        string  `json:"style"`
	Seed         *uint64 `json:"seed"`
	MaxDimension *int    `json:"max_dimension"`
	OutputPath   string  `json:"output_path"`
}

// StyleApplyResult is the JSON body returned by style_apply.
type StyleApplyResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Style        string `json:"style"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	ImageDataURI string `json:"image_data_uri,omitempty"`
	OutputPath   string `json:"output_path,omitempty"`
}

func (s *Server) handleStyleApply(args json.RawMessage) (interface{}, error) {
	var a styleApplyArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	data, err := s.loadInput(a.Path, a.ImageBase64)
	if err != nil {
		return nil, err
	}

	seed := s.cfg.Seed
	if a.Seed != nil {
		seed = *a.Seed
	}
	maxDim := s.cfg.MaxDimension
	if a.MaxDimension != nil {
		if *a.MaxDimension < 0 {
			return nil, errors.New("max_dimension must not be negative")
		}
		maxDim = *a.MaxDimension
	}

	res := style.New(
		style.WithSeed(seed),
		style.WithMaxDimension(maxDim),
		style.WithMaxPixels(s.cfg.MaxPixels),
	).Apply(data, a.Style)
	out := &StyleApplyResult{
		Success: res.Success,
		Message: res.Message,
		Style:   a.Style,
	}
	if !res.Success {
		log.Printf("style_apply %s: %s", a.Style, res.Message)
		return out, nil
	}

	out.Width, out.Height, out.MimeType = res.Width, res.Height, res.MimeType
	if a.OutputPath != "" {
		if err := os.WriteFile(a.OutputPath, res.Payload, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		out.OutputPath = a.OutputPath
		return out, nil
	}
	out.ImageDataURI = res.DataURI()
	return out, nil
}

// loadInput returns image bytes from exactly one of path or inline base64.
func (s *Server) loadInput(path, inline string) ([]byte, error) {
	switch {
	case path != "" && inline != "":
		return nil, errors.New("provide either path or image_base64, not both")
	case path != "":
		return s.cache.Load(path)
	case inline != "":
		data, _, err := envelope.Parse(inline)
		if err != nil {
			return nil, fmt.Errorf("failed to parse image_base64: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("missing input: provide path or image_base64")
	}
}

// StyleListResult is the JSON body returned by style_list.
type StyleListResult struct {
	Styles []style.Style `json:"styles"`
}

func (s *Server) handleStyleList() (interface{}, error) {
	return &StyleListResult{Styles: style.Styles()}, nil
}

// PaletteEntry describes one color of the picasso palette.
type PaletteEntry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	Role string `json:"role"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// PaletteResult is the JSON body returned by style_palette.
type PaletteResult struct {
	Colors []PaletteEntry `json:"colors"`
}

func (s *Server) handleStylePalette() (interface{}, error) {
	colors := style.Palette()
	outline := style.OutlineColor()
	entries := make([]PaletteEntry, 0, len(colors))
	for _, c := range colors {
		role := "fill"
		if c == outline {
			role = "outline"
		}
		entries = append(entries, PaletteEntry{
			Name: c.Name,
			Hex:  c.Hex(),
			Role: role,
			R:    c.R,
			G:    c.G,
			B:    c.B,
		})
	}
	return &PaletteResult{Colors: entries}, nil
}

// === Image Information Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("missing path")
	}
	return imageio.LoadImageInfo(s.cache, a.Path)
}
