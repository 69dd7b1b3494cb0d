// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Renders the placeholder stand-in declaration for a template
// definition: same keyword/name/between/closing, body rewritten so every
// parameter is erased to a fixed-size stand-in.

package renderer

import "strings"

// ParamKind mirrors preprocessor.TemplateParameterKind without creating
// an import back to that package (see DESIGN.md: preprocessor imports
// renderer, never the reverse).
type ParamKind int

const (
	TypeParam ParamKind = iota
	NonTypeParam
)

type Param struct {
	Name string
	Kind ParamKind
}

type PlaceholderInput struct {
	Keyword     string
	Name        string
	Between     string
	Body        string
	Closing     string
	Indentation string
	Params      []Param

	// ReduceBrackets substitutes any [expr] the erased body leaves
	// behind with its evaluated constant value. It's supplied by the
	// caller so this package never needs to depend on the constant
	// expression evaluator.
	ReduceBrackets func(string) string
}

// Placeholder renders the full placeholder declaration text, as
// generate_placeholder_definition does in the original implementation.
func Placeholder(in PlaceholderInput) string {
	body := erasePlaceholderParameters(in.Body, in.Params)
	if in.ReduceBrackets != nil {
		body = in.ReduceBrackets(body)
	}

	var b strings.Builder
	b.WriteString(in.Indentation)
	b.WriteString(in.Keyword)
	b.WriteByte(' ')
	b.WriteString(in.Name)
	b.WriteString(in.Between)
	b.WriteByte('{')
	b.WriteString(body)
	b.WriteString(in.Closing)

	if body != "" && body[len(body)-1] != '\n' &&
		(in.Closing == "" || in.Closing[0] != '\n') {
		b.WriteByte('\n')
	}

	return b.String()
}

// erasePlaceholderParameters replaces every Type parameter with `void`
// (when followed by a pointer, after skipping whitespace and an optional
// const/volatile qualifier run) or `void*` otherwise, and every NonType
// parameter with the literal `1`.
func erasePlaceholderParameters(body string, params []Param) string {
	for _, param := range params {
		searchPos := 0

		for searchPos < len(body) {
			matchPos := findWholeWord(body, param.Name, searchPos)
			if matchPos == -1 {
				break
			}

			if param.Kind == TypeParam {
				replacement, consumed := typeReplacement(body, matchPos, len(param.Name))
				body = body[:matchPos] + replacement + body[consumed:]
				searchPos = matchPos + len(replacement)
			} else {
				body = body[:matchPos] + "1" + body[matchPos+len(param.Name):]
				searchPos = matchPos + 1
			}
		}
	}

	return body
}

func typeReplacement(body string, matchPos, nameLen int) (replacement string, consumedEnd int) {
	lookahead := matchPos + nameLen
	lookahead = skipRunesSpace(body, lookahead)
	lookahead = skipQualifiers(body, lookahead)

	pointerCheck := skipRunesSpace(body, lookahead)
	pointerAfter := pointerCheck < len(body) && body[pointerCheck] == '*'

	if pointerAfter {
		return "void", matchPos + nameLen
	}
	return "void*", matchPos + nameLen
}

func skipRunesSpace(s string, pos int) int {
	for pos < len(s) && isWhitespaceByte(s[pos]) {
		pos++
	}
	return pos
}

func isWhitespaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func skipQualifiers(body string, pos int) int {
	advanced := true
	for advanced {
		advanced = false

		if hasWordAt(body, pos, "const") {
			pos += len("const")
			pos = skipRunesSpace(body, pos)
			advanced = true
		}

		if hasWordAt(body, pos, "volatile") {
			pos += len("volatile")
			pos = skipRunesSpace(body, pos)
			advanced = true
		}
	}
	return pos
}

func hasWordAt(body string, pos int, word string) bool {
	if pos+len(word) > len(body) {
		return false
	}
	if body[pos:pos+len(word)] != word {
		return false
	}
	end := pos + len(word)
	return end >= len(body) || !isIdentByte(body[end])
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// findWholeWord finds the next identifier-boundary occurrence of word in
// body at or after position.
func findWholeWord(body, word string, position int) int {
	for {
		idx := strings.Index(body[position:], word)
		if idx == -1 {
			return -1
		}
		idx += position

		var before, after byte
		if idx > 0 {
			before = body[idx-1]
		}
		if end := idx + len(word); end < len(body) {
			after = body[end]
		}

		if !isIdentByte(before) && !isIdentByte(after) {
			return idx
		}

		position = idx + len(word)
	}
}
