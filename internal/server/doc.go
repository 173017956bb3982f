// Package server implements the MCP (Model Context Protocol) server for image styling tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the style filters
// through the MCP protocol, so MCP-compatible clients can restyle images on
// disk or inline.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Styling:
//   - style_apply: Apply vangogh, picasso or cyberpunk to an image
//   - style_list: Describe the available styles
//   - style_palette: List the picasso palette
//
// Image Information:
//   - image_info: Dimensions, format and size of an image file
//
// # Image Caching
//
// Input files are cached by path and reused across tool calls. The cache
// persists for the lifetime of the server process.
//
// # Error Handling
//
// Invalid arguments (no input, unreadable file, malformed base64) are
// returned as JSON-RPC error responses with code -32000. A style run that
// fails because of the image itself or an unknown style name is a normal
// tool result with "success": false and a message.
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
