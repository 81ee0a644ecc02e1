package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcpbase/mcpbase/internal/result"
)

// EnvelopeHandler is the handler shape shared by all mcpbase tools: typed
// input in, result envelope out. Failures are expressed inside the envelope,
// never as Go errors.
type EnvelopeHandler[In any] func(ctx context.Context, input In) result.Envelope

// AddEnvelopeTool registers an envelope-returning tool with the server.
// A panic inside the handler is absorbed into an UNEXPECTED error envelope,
// so a single failed operation can never take the process down. The output
// type's zero value is checked against the SDK's inferred schema at
// registration time.
func AddEnvelopeTool[In any](srv *sdkmcp.Server, t *sdkmcp.Tool, h EnvelopeHandler[In]) {
	CheckOutputSchema[result.Envelope](t.Name)
	sdkmcp.AddTool(srv, t, func(ctx context.Context, req *sdkmcp.CallToolRequest, input In) (res *sdkmcp.CallToolResult, env result.Envelope, err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("tool panicked", slog.String("tool", t.Name), slog.Any("panic", r))
				env = Unexpected(fmt.Errorf("%s failed: %v", t.Name, r))
				res, err = nil, nil
			}
		}()
		return nil, h(ctx, input), nil
	})
}

// CheckOutputSchema validates that the zero value of T passes the JSON
// schema the MCP SDK would infer from it, catching nil-slice-as-null and
// json.RawMessage mismatches at startup rather than at runtime.
//
// Panics if validation fails. No-ops for the untyped "any" output or if
// schema inference itself fails (the SDK will report those separately).
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	// Follow pointer like the SDK does.
	elem := rt
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	// json.RawMessage serializes as transparent JSON but the schema
	// generator infers []byte, so it can never validate.
	if paths := findRawMessageFields(elem, nil, make(map[reflect.Type]bool)); len(paths) > 0 {
		panic(fmt.Sprintf(
			"AddEnvelopeTool %q: output type %s contains json.RawMessage at %s; use any instead",
			toolName, elem, strings.Join(paths, ", "),
		))
	}

	schema, err := jsonschema.ForType(elem, &jsonschema.ForOptions{})
	if err != nil {
		return
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return
	}

	zero := reflect.Zero(elem).Interface()
	data, err := json.Marshal(zero)
	if err != nil {
		return
	}

	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return
	}

	if err := resolved.Validate(&v); err != nil {
		panic(fmt.Sprintf(
			"AddEnvelopeTool %q: zero value of output type %s fails schema validation: %v\n"+
				"  JSON: %s\n"+
				"  Fix: add `omitzero` to nil-defaulting slice fields, or initialize them to empty slices",
			toolName, elem, err, data,
		))
	}
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// findRawMessageFields recursively walks a struct type and returns field
// paths that use json.RawMessage.
func findRawMessageFields(t reflect.Type, path []string, visited map[reflect.Type]bool) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == rawMessageType {
		return []string{strings.Join(path, ".")}
	}

	if visited[t] {
		return nil
	}
	visited[t] = true
	defer delete(visited, t)

	var found []string

	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}

			fieldPath := append(path, f.Name)

			if ft == rawMessageType {
				found = append(found, strings.Join(fieldPath, "."))
				continue
			}

			found = append(found, findRawMessageFields(ft, fieldPath, visited)...)
		}

	case reflect.Slice, reflect.Array:
		found = append(found, findRawMessageFields(t.Elem(), append(path, "[]"), visited)...)

	case reflect.Map:
		found = append(found, findRawMessageFields(t.Elem(), append(path, "[value]"), visited)...)
	}

	return found
}
