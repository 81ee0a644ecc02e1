package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all builtin tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "echo",
		Description: "Echo back the provided message with a timestamp",
	}, ToolEcho(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "reverse",
		Description: "Reverse the provided text",
	}, ToolReverse(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "calculator",
		Description: "Perform basic arithmetic operations (add, subtract, multiply, divide) on two numbers",
	}, ToolCalculator(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "kv_get",
		Description: "Get a value from the key-value store. metadata.found distinguishes a stored null from a missing key.",
	}, ToolKVGet(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "kv_set",
		Description: "Store a value in the key-value store, overwriting any existing entry. Pass schema (a JSON Schema document) to validate the value before storing.",
	}, ToolKVSet(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "kv_delete",
		Description: "Delete a key from the key-value store. Returns true if the key existed; deleting a missing key is not an error.",
	}, ToolKVDelete(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "kv_list",
		Description: "List all keys in the key-value store in sorted order",
	}, ToolKVList(d))

	AddEnvelopeTool(srv, &sdkmcp.Tool{
		Name:        "kv_query",
		Description: "Run a JQ expression against a stored JSON value and return the extracted values (e.g. .config.server_name)",
	}, ToolKVQuery(d))
}
