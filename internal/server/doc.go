// Package server implements the MCP (Model Context Protocol) server for hex color blending.
//
// This package provides a JSON-RPC 2.0 server that exposes the hexcolor package
// through the MCP protocol, so MCP clients can blend and inspect colors exactly
// instead of estimating them.
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
//   - color_average: Channel-wise floor average of two RRGGBB colors
//   - color_describe: Hex, CSS, RGB and HSL forms of one color
//   - color_swatch: PNG strip showing both inputs and their average
//
// # Errors
//
// Protocol errors use the standard JSON-RPC codes (-32601 unknown method,
// -32602 malformed params). A tool that rejects its arguments, for example a
// color that is not six hex digits, answers -32000 with the reason in the
// error's data field.
package server
