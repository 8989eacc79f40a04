package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/hexblend-mcp/internal/config"
	"github.com/ironsheep/hexblend-mcp/internal/hexcolor"
)

func newTestServer() *Server {
	return New(config.Default(), "test")
}

func TestNew(t *testing.T) {
	s := New(config.Config{}, "1.0.0")
	require.NotNil(t, s)
	assert.Equal(t, hexcolor.DefaultSwatchCell, s.cfg.SwatchCell, "zero cell size should fall back to default")
	assert.Equal(t, "1.0.0", s.version)
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))
			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(config.Default(), "9.9.9")
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	assert.Equal(t, "2024-11-05", result["protocolVersion"])

	info, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hexblend-mcp", info["name"])
	assert.Equal(t, "9.9.9", info["version"])
}

func TestHandleRequest_InitializedNotification(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	assert.Nil(t, resp)
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})

	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	tools, ok := result["tools"].([]Tool)
	require.True(t, ok)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s", tool.Name)
		assert.Equal(t, "object", tool.InputSchema["type"], "tool %s", tool.Name)
	}
	assert.Equal(t, []string{"color_average", "color_describe", "color_swatch"}, names)
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "resources/list"})

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "resources/list")
}

func TestServe_Session(t *testing.T) {
	s := newTestServer()

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`this is not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"color_average","arguments":{"color1":"123BDF","color2":"645AAA"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"color_average","arguments":{"color1":"12","color2":"000000"}}}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, s.Serve(context.Background(), strings.NewReader(in), &out))

	var responses []MCPResponse
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp MCPResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.NoError(t, scanner.Err())

	// The notification, blank line and garbage line produce no output.
	require.Len(t, responses, 3)

	assert.Equal(t, float64(1), responses[0].ID)
	assert.Nil(t, responses[0].Error)

	assert.Equal(t, float64(2), responses[1].ID)
	require.Nil(t, responses[1].Error)
	var avg AverageResult
	decodeTextContent(t, responses[1].Result, &avg)
	assert.Equal(t, "3B4AC4", avg.Average)

	assert.Equal(t, float64(3), responses[2].ID)
	require.NotNil(t, responses[2].Error)
	assert.Equal(t, -32000, responses[2].Error.Code)
	assert.Contains(t, responses[2].Error.Data, "length must be 6")
}

func TestServe_ContextCancelled(t *testing.T) {
	s := newTestServer()

	// A pipe that is never written to blocks the reader until cancellation.
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, pr, io.Discard)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}
}

// decodeTextContent unpacks the JSON document inside an MCP text content result.
func decodeTextContent(t *testing.T, result interface{}, v interface{}) {
	t.Helper()

	m, ok := result.(map[string]interface{})
	require.True(t, ok, "result should be an object, got %T", result)
	content, ok := m["content"].([]interface{})
	require.True(t, ok, "content should be an array")
	require.Len(t, content, 1)
	item, ok := content[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "text", item["type"])
	text, ok := item["text"].(string)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(text), v))
}
