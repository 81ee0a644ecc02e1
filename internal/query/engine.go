// Package query provides JQ-based extraction from stored key-value entries.
package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// Engine executes JQ expressions against JSON-serializable values.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the outcome of a JQ query against a single stored value.
type Result struct {
	Values []any    `json:"values"`
	Count  int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

// Query runs a JQ expression against value. The value is normalized through
// a JSON round-trip first, so any JSON-serializable Go value is accepted
// (gojq only understands the unmarshal type set). maxResults of 0 means
// unlimited.
func (e *Engine) Query(value any, expression string, maxResults int) (*Result, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	input, err := normalize(value)
	if err != nil {
		return nil, fmt.Errorf("value is not JSON-serializable: %w", err)
	}

	result := &Result{
		Values: make([]any, 0),
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if qerr, isErr := v.(error); isErr {
			result.Errors = append(result.Errors, formatJQError(qerr))
			continue
		}

		result.Values = append(result.Values, v)
		if maxResults > 0 && len(result.Values) >= maxResults {
			break
		}
	}

	result.Count = len(result.Values)
	return result, nil
}

// normalize converts an arbitrary JSON-serializable value into gojq's input
// type set (nil, bool, float64, string, []any, map[string]any).
func normalize(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}
	return err.Error()
}
