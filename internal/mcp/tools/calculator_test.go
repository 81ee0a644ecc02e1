package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		input string
		want  Op
		ok    bool
	}{
		{"add", OpAdd, true},
		{"subtract", OpSubtract, true},
		{"multiply", OpMultiply, true},
		{"divide", OpDivide, true},
		{"ADD", OpAdd, true},
		{" add ", OpAdd, true},
		{"modulo", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, ok := ParseOp(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestToolCalculator(t *testing.T) {
	h := ToolCalculator(testDeps(nil))

	tests := []struct {
		name      string
		operation string
		a, b      float64
		want      float64
	}{
		{"add", "add", 5, 3, 8},
		{"subtract", "subtract", 5, 3, 2},
		{"multiply", "multiply", 5, 3, 15},
		{"divide", "divide", 6, 3, 2},
		{"divide fractional", "divide", 1, 4, 0.25},
		{"add negatives", "add", -2, -3, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := h(context.Background(), CalculatorInput{Operation: tt.operation, A: tt.a, B: tt.b})
			require.True(t, env.IsSuccess())
			assert.Equal(t, tt.want, env.Result)
			assert.Equal(t, tt.operation, env.Metadata["operation_type"])
			assert.Equal(t, tt.a, env.Metadata["operand_a"])
			assert.Equal(t, tt.b, env.Metadata["operand_b"])
		})
	}
}

func TestToolCalculatorDivideByZero(t *testing.T) {
	h := ToolCalculator(testDeps(nil))

	env := h(context.Background(), CalculatorInput{Operation: "divide", A: 5, B: 0})

	require.True(t, env.IsError())
	assert.Equal(t, "Division by zero is not allowed", env.Error)
	assert.Nil(t, env.Result)
	assert.Equal(t, ErrCodeInvalidInput, env.Metadata["error_code"])
}

func TestToolCalculatorUnknownOperation(t *testing.T) {
	h := ToolCalculator(testDeps(nil))

	env := h(context.Background(), CalculatorInput{Operation: "power", A: 2, B: 10})

	require.True(t, env.IsError())
	assert.Contains(t, env.Error, `Unknown operation "power"`)
	assert.Contains(t, env.Error, "add, subtract, multiply, divide")
	assert.Equal(t, ErrCodeInvalidInput, env.Metadata["error_code"])
}

func TestNumberKind(t *testing.T) {
	assert.Equal(t, "integer", numberKind(8))
	assert.Equal(t, "integer", numberKind(0))
	assert.Equal(t, "integer", numberKind(-3))
	assert.Equal(t, "float", numberKind(0.25))
}
