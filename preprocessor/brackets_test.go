// By Navid M (c)
// Date: 2025
// License: GPL3

package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBracketExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple arithmetic",
			input:    "void* buf[2 + 2];",
			expected: "void* buf[4];",
		},
		{
			name:     "multiple brackets",
			input:    "int a[1+1]; int b[2*3];",
			expected: "int a[2]; int b[6];",
		},
		{
			name:     "attribute brackets untouched",
			input:    "[[nodiscard]] int f(int a[1+1]);",
			expected: "[[nodiscard]] int f(int a[2]);",
		},
		{
			name:     "non-constant expression left untouched",
			input:    "int a[n + 1];",
			expected: "int a[n + 1];",
		},
		{
			name:     "empty brackets untouched",
			input:    "int a[];",
			expected: "int a[];",
		},
		{
			name:     "no brackets",
			input:    "int a;",
			expected: "int a;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evaluateBracketExpressions(tt.input))
		})
	}
}
