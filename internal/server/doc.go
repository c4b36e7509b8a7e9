// Package server implements the MCP (Model Context Protocol) server for the
// object counter.
//
// This package provides a JSON-RPC 2.0 server that exposes the counting
// pipeline through the MCP protocol, so that an MCP client can count objects,
// inspect color masks and tune color ranges without opening any windows.
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
//   - image_load: Load image and get metadata
//   - count_objects: Run the pipeline; summary, blob centers, annotated image
//   - color_mask: Binary mask of one color range
//   - sample_hsv: Color at a pixel and the ranges containing it
//   - list_color_ranges: The compiled-in catalog and detector parameters
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process. Counting never
// modifies a cached image; markers go on a copy.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
