// By Navid M (c)
// Date: 2025
// License: GPL3

package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateConstantExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "plain decimal", input: "4", expected: 4},
		{name: "hex literal", input: "0x10", expected: 16},
		{name: "addition", input: "2 + 3", expected: 5},
		{name: "precedence", input: "2 + 3 * 4", expected: 14},
		{name: "parenthesized", input: "(2 + 3) * 4", expected: 20},
		{name: "shift", input: "1 << 4", expected: 16},
		{name: "bitwise or", input: "1 | 2", expected: 3},
		{name: "bitwise and", input: "6 & 3", expected: 2},
		{name: "bitwise xor", input: "5 ^ 3", expected: 6},
		{name: "unary minus", input: "-5 + 10", expected: 5},
		{name: "bitwise not", input: "~0", expected: -1},
		{name: "numeric suffix", input: "4u + 1L", expected: 5},
		{name: "nested shift and mask", input: "(1 << 8) - 1", expected: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := evaluateConstantExpression(tt.input)
			assert.True(t, ok, "expected expression to evaluate")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateConstantExpressionRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "logical or is rejected", input: "1 || 0"},
		{name: "logical and is rejected", input: "1 && 1"},
		{name: "division by zero", input: "1 / 0"},
		{name: "modulo by zero", input: "1 % 0"},
		{name: "empty", input: ""},
		{name: "identifier is not a literal", input: "N"},
		{name: "unbalanced parens", input: "(1 + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := evaluateConstantExpression(tt.input)
			assert.False(t, ok, "expected expression to be rejected")
		})
	}
}

func TestParseDecimalLiteralWraps(t *testing.T) {
	// 2^64, which overflows uint64 and wraps to 0.
	got := parseDecimalLiteral("18446744073709551616")
	assert.Equal(t, int64(0), got)
}
