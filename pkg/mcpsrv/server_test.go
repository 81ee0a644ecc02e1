package mcpsrv

import (
	"context"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerDefaults(t *testing.T) {
	server, err := NewServer()
	require.NoError(t, err)
	defer server.Close()

	deps := server.Deps()
	require.NotNil(t, deps)
	assert.NotNil(t, deps.Store)
	assert.NotNil(t, deps.Config)
	assert.NotNil(t, deps.Query)

	// Default seed carries the demo entries.
	_, ok := deps.Store.Get("example_key")
	assert.True(t, ok)
	_, ok = deps.Store.Get("counter")
	assert.True(t, ok)
}

func TestNewServerWithSeed(t *testing.T) {
	server, err := NewServer(WithSeed(map[string]any{"only": "this"}))
	require.NoError(t, err)
	defer server.Close()

	store := server.Deps().Store
	assert.Equal(t, []string{"only"}, store.Keys())
}

func TestNewServerWithKVStoreURI(t *testing.T) {
	server, err := NewServer(WithKVStoreURI("kv://custom"))
	require.NoError(t, err)
	defer server.Close()

	assert.Equal(t, "kv://custom", server.Deps().Config.KVStoreURI)
}

func TestWithCustomTool(t *testing.T) {
	type countOutput struct {
		Count int `json:"count"`
	}

	server, err := NewServer(
		WithSeed(map[string]any{"a": 1, "b": 2}),
		WithoutBuiltinPrompts(),
		WithDepsTool(
			&mcp.Tool{Name: "kv_count", Description: "Count stored entries"},
			func(d *Deps) func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, countOutput, error) {
				return func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, countOutput, error) {
					return nil, countOutput{Count: d.Store.Len()}, nil
				}
			},
		),
	)
	require.NoError(t, err)
	defer server.Close()

	assert.NotNil(t, server.MCPServer())
}

func TestWithoutBuiltins(t *testing.T) {
	server, err := NewServer(WithoutBuiltinTools(), WithoutBuiltinPrompts())
	require.NoError(t, err)
	defer server.Close()

	assert.NotNil(t, server.MCPServer())
}
