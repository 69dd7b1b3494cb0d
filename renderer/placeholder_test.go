// By Navid M (c)
// Date: 2025
// License: GPL3

package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		input    PlaceholderInput
		expected string
	}{
		{
			name: "type parameter becomes void pointer",
			input: PlaceholderInput{
				Keyword: "struct",
				Name:    "Box",
				Between: " ",
				Body:    "\n    T value;\n",
				Closing: "};\n",
				Params:  []Param{{Name: "T", Kind: TypeParam}},
			},
			expected: "struct Box {\n    void* value;\n};\n",
		},
		{
			name: "type parameter already a pointer stays void",
			input: PlaceholderInput{
				Keyword: "struct",
				Name:    "Box",
				Between: " ",
				Body:    "\n    T* ptr;\n",
				Closing: "};\n",
				Params:  []Param{{Name: "T", Kind: TypeParam}},
			},
			expected: "struct Box {\n    void* ptr;\n};\n",
		},
		{
			name: "non-type parameter becomes literal one",
			input: PlaceholderInput{
				Keyword: "struct",
				Name:    "Arr",
				Between: " ",
				Body:    "\n    int data[N];\n",
				Closing: "};\n",
				Params:  []Param{{Name: "N", Kind: NonTypeParam}},
			},
			expected: "struct Arr {\n    int data[1];\n};\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Placeholder(tt.input))
		})
	}
}

func TestPlaceholderReducesBracketsWhenSupplied(t *testing.T) {
	input := PlaceholderInput{
		Keyword: "struct",
		Name:    "Arr",
		Between: " ",
		Body:    "\n    int data[N];\n",
		Closing: "};\n",
		Params:  []Param{{Name: "N", Kind: NonTypeParam}},
		ReduceBrackets: func(body string) string {
			return body + "// reduced\n"
		},
	}

	got := Placeholder(input)
	assert.Contains(t, got, "// reduced")
}
