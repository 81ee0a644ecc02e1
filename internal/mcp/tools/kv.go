package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcpbase/mcpbase/internal/result"
	"github.com/mcpbase/mcpbase/internal/schema"
)

// KVGetInput is the input for kv_get.
type KVGetInput struct {
	Key string `json:"key" jsonschema:"required,Key to look up"`
}

// KVSetInput is the input for kv_set.
type KVSetInput struct {
	Key    string `json:"key" jsonschema:"required,Key to set"`
	Value  any    `json:"value" jsonschema:"Value to store (any JSON value)"`
	Schema string `json:"schema,omitempty" jsonschema:"Optional JSON Schema the value must satisfy before it is stored"`
}

// KVDeleteInput is the input for kv_delete.
type KVDeleteInput struct {
	Key string `json:"key" jsonschema:"required,Key to delete"`
}

// KVListInput is the input for kv_list.
type KVListInput struct{}

// KVQueryInput is the input for kv_query.
type KVQueryInput struct {
	Key        string `json:"key" jsonschema:"required,Key whose value to query"`
	Expression string `json:"expression" jsonschema:"required,JQ expression to run against the stored value"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Cap on extracted values (0 = unlimited)"`
}

// ToolKVGet looks a key up in the store. A missing key is a normal outcome,
// reported through metadata.found rather than an error envelope, so a
// stored null stays distinguishable from absence.
func ToolKVGet(d *Deps) EnvelopeHandler[KVGetInput] {
	return func(ctx context.Context, input KVGetInput) result.Envelope {
		if input.Key == "" {
			return InvalidInput("key is required")
		}

		value, found := d.Store.Get(input.Key)
		if !found {
			return result.Success(nil, map[string]any{"key": input.Key, "found": false})
		}
		return result.Success(value, map[string]any{"key": input.Key, "found": true})
	}
}

// ToolKVSet stores a value, optionally validating it against a
// caller-supplied JSON Schema first. Overwrites unconditionally.
func ToolKVSet(d *Deps) EnvelopeHandler[KVSetInput] {
	return func(ctx context.Context, input KVSetInput) result.Envelope {
		if input.Key == "" {
			return InvalidInput("key is required")
		}

		if input.Schema != "" {
			validator, err := schema.NewValidator(input.Schema)
			if err != nil {
				return InvalidInput(fmt.Sprintf("invalid schema: %v", err))
			}
			if violations := validator.ValidateValue(input.Value); len(violations) > 0 {
				return result.Error("value does not satisfy schema", map[string]any{
					"error_code": ErrCodeInvalidInput,
					"violations": violations,
				})
			}
		}

		d.Store.Set(input.Key, input.Value)
		slog.Debug("kv_set stored value", slog.String("key", input.Key))

		return result.Success(true, map[string]any{
			"key":        input.Key,
			"value_type": jsonTypeName(input.Value),
		})
	}
}

// ToolKVDelete removes a key. Deleting a missing key is not an error; the
// result reports whether anything was removed.
func ToolKVDelete(d *Deps) EnvelopeHandler[KVDeleteInput] {
	return func(ctx context.Context, input KVDeleteInput) result.Envelope {
		if input.Key == "" {
			return InvalidInput("key is required")
		}

		deleted := d.Store.Delete(input.Key)
		return result.Success(deleted, map[string]any{"key": input.Key})
	}
}

// ToolKVList returns all current keys in sorted order.
func ToolKVList(d *Deps) EnvelopeHandler[KVListInput] {
	return func(ctx context.Context, input KVListInput) result.Envelope {
		keys := d.Store.Keys()
		return result.Success(keys, map[string]any{"count": len(keys)})
	}
}

// ToolKVQuery runs a JQ expression against a stored value and returns the
// extracted values.
func ToolKVQuery(d *Deps) EnvelopeHandler[KVQueryInput] {
	return func(ctx context.Context, input KVQueryInput) result.Envelope {
		if input.Key == "" {
			return InvalidInput("key is required")
		}
		if input.Expression == "" {
			return InvalidInput("expression is required")
		}

		value, found := d.Store.Get(input.Key)
		if !found {
			return NotFound(fmt.Sprintf("key not found: %s", input.Key))
		}

		res, err := d.Query.Query(value, input.Expression, input.MaxResults)
		if err != nil {
			if strings.Contains(err.Error(), "jq expression") {
				return InvalidInput(err.Error())
			}
			return Unexpected(err)
		}

		meta := map[string]any{"key": input.Key, "count": res.Count}
		if len(res.Errors) > 0 {
			meta["errors"] = res.Errors
		}
		return result.Success(res.Values, meta)
	}
}

// jsonTypeName reports the JSON type a Go value serializes to, for
// diagnostic metadata.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
