// Package result defines the uniform success/error envelope returned by
// every mcpbase tool.
package result

// Status values for an Envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the standardized tool result format. Exactly one of Result and
// Error is meaningfully populated, selected by Status. Metadata is optional
// diagnostic context and never required for correctness.
// Result is serialized unconditionally: legitimate values like 0 and ""
// must survive the trip, and a null result on error is part of the format.
type Envelope struct {
	Status   string         `json:"status"`
	Result   any            `json:"result"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Success creates a success envelope carrying value.
func Success(value any, metadata map[string]any) Envelope {
	return Envelope{
		Status:   StatusSuccess,
		Result:   value,
		Metadata: metadata,
	}
}

// Error creates an error envelope carrying a human-readable message.
func Error(message string, metadata map[string]any) Envelope {
	return Envelope{
		Status:   StatusError,
		Error:    message,
		Metadata: metadata,
	}
}

// IsSuccess reports whether the envelope represents a successful operation.
func (e Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

// IsError reports whether the envelope represents a failed operation.
func (e Envelope) IsError() bool {
	return e.Status == StatusError
}
