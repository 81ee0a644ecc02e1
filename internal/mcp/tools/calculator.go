package tools

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mcpbase/mcpbase/internal/result"
)

// Op is the closed set of arithmetic operations the calculator supports.
// Dispatch is an exhaustive switch over this type; unknown names never get
// past ParseOp.
type Op string

// Supported operations.
const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

var allOps = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOp maps an operation name to its Op, reporting whether the name is
// supported.
func ParseOp(s string) (Op, bool) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allOps {
		if op == known {
			return op, true
		}
	}
	return "", false
}

// CalculatorInput is the input for calculator.
type CalculatorInput struct {
	Operation string  `json:"operation" jsonschema:"required,Arithmetic operation: add subtract multiply or divide"`
	A         float64 `json:"a" jsonschema:"required,First operand"`
	B         float64 `json:"b" jsonschema:"required,Second operand"`
}

// ToolCalculator performs basic arithmetic on two numbers.
func ToolCalculator(d *Deps) EnvelopeHandler[CalculatorInput] {
	return func(ctx context.Context, input CalculatorInput) result.Envelope {
		slog.Debug("calculator tool called",
			slog.String("operation", input.Operation),
			slog.Float64("a", input.A),
			slog.Float64("b", input.B),
		)

		op, ok := ParseOp(input.Operation)
		if !ok {
			return InvalidInput(fmt.Sprintf(
				"Unknown operation %q. Valid operations: %s",
				input.Operation, joinOps(allOps),
			))
		}

		var r float64
		switch op {
		case OpAdd:
			r = input.A + input.B
		case OpSubtract:
			r = input.A - input.B
		case OpMultiply:
			r = input.A * input.B
		case OpDivide:
			if input.B == 0 {
				return result.Error("Division by zero is not allowed", map[string]any{
					"error_code": ErrCodeInvalidInput,
					"operand_a":  input.A,
					"operand_b":  input.B,
				})
			}
			r = input.A / input.B
		}

		return result.Success(r, map[string]any{
			"operation":      fmt.Sprintf("%g %s %g = %g", input.A, op, input.B, r),
			"operand_a":      input.A,
			"operand_b":      input.B,
			"operation_type": string(op),
			"result_type":    numberKind(r),
		})
	}
}

// numberKind reports whether a result is a whole number, mirroring the
// int/float distinction clients expect in diagnostics.
func numberKind(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return "integer"
	}
	return "float"
}

func joinOps(ops []Op) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}
