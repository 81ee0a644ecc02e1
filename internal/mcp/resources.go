package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// MimeJSON is the content type for all kv resources.
const MimeJSON = "application/json"

// Resource URI scheme: kv://
// Supported URIs:
//   kv://store          (configurable via MCPBASE_KV_STORE_URI)
//   kv://store/{key}

// registerResources registers the kv store resources and their handlers.
func (s *Server) registerResources() {
	uri := s.deps.Config.KVStoreURI

	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         uri,
		Name:        "Key-Value Store",
		Description: "In-memory key-value store summary: description, supported operations, current keys, and entry count.",
		MIMEType:    MimeJSON,
	}, s.handleResourceStore)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: uri + "/{key}",
		Name:        "Key-Value Entry",
		Description: "A single entry from the key-value store, rendered as JSON.",
		MIMEType:    MimeJSON,
	}, s.handleResourceEntry)
}

// handleResourceStore serves the read-only store snapshot.
func (s *Server) handleResourceStore(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	data, err := s.deps.Store.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("serializing store: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}

// handleResourceEntry serves a single store entry.
func (s *Server) handleResourceEntry(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	key, err := s.entryKeyFromURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	value, ok := s.deps.Store.Get(key)
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	content := map[string]any{
		"key":   key,
		"value": value,
	}
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing entry: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}

// entryKeyFromURI extracts the entry key from a kv://store/{key} URI.
func (s *Server) entryKeyFromURI(uri string) (string, error) {
	prefix := s.deps.Config.KVStoreURI + "/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("invalid resource URI: expected prefix %s", prefix)
	}
	key := strings.TrimPrefix(uri, prefix)
	if key == "" {
		return "", fmt.Errorf("entry URI requires a key")
	}
	return key, nil
}
