package mcp

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/kvstore"
	"github.com/mcpbase/mcpbase/internal/mcp/tools"
	"github.com/mcpbase/mcpbase/internal/query"
)

func newTestServer(t *testing.T, seed map[string]any, opts ...ServerOption) *Server {
	t.Helper()
	deps := &tools.Deps{
		Store:  kvstore.New(seed),
		Config: &config.Config{KVStoreURI: "kv://store", PromptCacheMaxItems: 8},
		Query:  query.NewEngine(),
	}
	s, err := NewServer(deps, opts...)
	require.NoError(t, err)
	return s
}

func TestNewServerRequiresDeps(t *testing.T) {
	_, err := NewServer(nil)
	require.Error(t, err)

	_, err = NewServer(&tools.Deps{})
	require.Error(t, err)
}

func TestNewServerWithBuiltins(t *testing.T) {
	s := newTestServer(t, nil, WithBuiltinTools(), WithBuiltinPrompts())
	assert.NotNil(t, s.MCPServer())
}

func TestCustomRegistrationInvoked(t *testing.T) {
	called := false
	newTestServer(t, nil, WithCustomRegistration(func(srv *sdkmcp.Server) {
		called = true
		assert.NotNil(t, srv)
	}))
	assert.True(t, called)
}

func TestRunTransportUnsupported(t *testing.T) {
	s := newTestServer(t, nil)

	err := s.RunTransport(context.Background(), "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported transport "carrier-pigeon"`)
}

func TestHandleResourceStore(t *testing.T) {
	s := newTestServer(t, map[string]any{"example_key": "example_value"}, WithBuiltinTools())

	res, err := s.handleResourceStore(context.Background(), &sdkmcp.ReadResourceRequest{
		Params: &sdkmcp.ReadResourceParams{URI: "kv://store"},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, MimeJSON, res.Contents[0].MIMEType)

	var info kvstore.Info
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &info))
	assert.Equal(t, kvstore.Description, info.Description)
	assert.Equal(t, []string{"example_key"}, info.CurrentKeys)
	assert.Equal(t, 1, info.Count)
}

func TestHandleResourceEntry(t *testing.T) {
	s := newTestServer(t, map[string]any{"counter": 0}, WithBuiltinTools())

	t.Run("existing entry", func(t *testing.T) {
		res, err := s.handleResourceEntry(context.Background(), &sdkmcp.ReadResourceRequest{
			Params: &sdkmcp.ReadResourceParams{URI: "kv://store/counter"},
		})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)

		var content map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &content))
		assert.Equal(t, "counter", content["key"])
		assert.EqualValues(t, 0, content["value"])
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := s.handleResourceEntry(context.Background(), &sdkmcp.ReadResourceRequest{
			Params: &sdkmcp.ReadResourceParams{URI: "kv://store/absent"},
		})
		require.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := s.handleResourceEntry(context.Background(), &sdkmcp.ReadResourceRequest{
			Params: &sdkmcp.ReadResourceParams{URI: "bogus://x"},
		})
		require.Error(t, err)
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("get", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, 200, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, config.ServerName, body["service"])
	})

	t.Run("post rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleHealth(rec, httptest.NewRequest("POST", "/health", nil))
		assert.Equal(t, 405, rec.Code)
	})
}
