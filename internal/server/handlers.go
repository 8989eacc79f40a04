package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/hexblend-mcp/internal/hexcolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_average").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug().Str("tool", params.Name).Err(err).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug().Str("tool", params.Name).Dur("elapsed", time.Since(start)).Msg("tool done")

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
	case "color_average":
		return s.handleColorAverage(args)
	case "color_describe":
		return s.handleColorDescribe(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type colorPairArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

// AverageResult is the color_average tool output.
type AverageResult struct {
	Color1  string `json:"color1"`
	Color2  string `json:"color2"`
	Average string `json:"average"`
}

func (s *Server) handleColorAverage(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	avg, err := hexcolor.Average(a.Color1, a.Color2)
	if err != nil {
		return nil, err
	}
	return &AverageResult{Color1: a.Color1, Color2: a.Color2, Average: avg}, nil
}

type colorDescribeArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	var a colorDescribeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := hexcolor.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return hexcolor.Describe(c), nil
}

type colorSwatchArgs struct {
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	CellSize int    `json:"cell_size"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = s.cfg.SwatchCell
	}

	c1, err := hexcolor.Parse(a.Color1)
	if err != nil {
		return nil, fmt.Errorf("color1: %w", err)
	}
	c2, err := hexcolor.Parse(a.Color2)
	if err != nil {
		return nil, fmt.Errorf("color2: %w", err)
	}
	return hexcolor.Swatch(c1, c2, a.CellSize)
}
