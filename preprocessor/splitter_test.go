// By Navid M (c)
// Date: 2025
// License: GPL3

package preprocessor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitTemplateParameters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TemplateParameter
	}{
		{
			name:     "single type parameter",
			input:    "typename T",
			expected: []TemplateParameter{{Name: "T", Kind: Type}},
		},
		{
			name:  "type and non-type",
			input: "typename T, int N",
			expected: []TemplateParameter{
				{Name: "T", Kind: Type},
				{Name: "N", Kind: NonType},
			},
		},
		{
			name:     "class keyword is also a type parameter",
			input:    "class T",
			expected: []TemplateParameter{{Name: "T", Kind: Type}},
		},
		{
			name:     "default argument stripped",
			input:    "typename T = int",
			expected: []TemplateParameter{{Name: "T", Kind: Type}},
		},
		{
			name:     "variadic marker stripped",
			input:    "typename T...",
			expected: []TemplateParameter{{Name: "T", Kind: Type}},
		},
		{
			name:  "nested angle brackets do not split",
			input: "typename T, template<typename> class C",
			expected: []TemplateParameter{
				{Name: "T", Kind: Type},
				{Name: "C", Kind: Type},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTemplateParameters(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("splitTemplateParameters() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTemplateArguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ltPos    int
		expected []string
	}{
		{
			name:     "single argument",
			input:    "<int>",
			ltPos:    0,
			expected: []string{"int"},
		},
		{
			name:     "multiple arguments",
			input:    "<int, 4>",
			ltPos:    0,
			expected: []string{"int", "4"},
		},
		{
			name:     "nested template argument",
			input:    "<Box<int>, 2>",
			ltPos:    0,
			expected: []string{"Box<int>", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := parseTemplateArguments(tt.input, tt.ltPos)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("parseTemplateArguments() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
