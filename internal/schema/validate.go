// Package schema validates key-value entries against caller-supplied JSON
// Schemas, used by the kv_set tool's optional schema argument.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Validator validates values against a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a validator from a raw JSON Schema document.
func NewValidator(schemaStr string) (*Validator, error) {
	var schemaValue any
	if err := json.Unmarshal([]byte(schemaStr), &schemaValue); err != nil {
		return nil, fmt.Errorf("parsing JSON Schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// ValidateValue checks an already-parsed value against the schema. It
// returns nil error slice when the value is valid; otherwise a list of
// human-readable violations.
func (v *Validator) ValidateValue(value any) []string {
	// Normalize through JSON so arbitrary Go values match the validator's
	// expected type set.
	data, err := json.Marshal(value)
	if err != nil {
		return []string{fmt.Sprintf("value is not JSON-serializable: %v", err)}
	}
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := v.schema.Validate(parsed); err != nil {
		return extractValidationErrors(err)
	}
	return nil
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

func extractValidationErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		if len(msgs) > 0 {
			return msgs
		}
	}
	return []string{err.Error()}
}

// collectErrors walks the cause tree collecting leaf violations.
func collectErrors(err *jsonschema.ValidationError, out *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			if len(err.InstanceLocation) > 0 {
				msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
			}
			*out = append(*out, msg)
		}
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}
