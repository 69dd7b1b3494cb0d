// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Renders the monomorphized declaration text for one specialization,
// inserted into the transformer's output immediately before the use
// site that first triggers it.

package renderer

import "strings"

type SpecializationInput struct {
	Keyword       string
	SanitizedName string
	Between       string
	Body          string
	Closing       string
	Indent        string
}

// SpecializationDeclaration renders `<indent><keyword> <name><between>{<body>}<closing>`,
// adding the closing `}` only when Closing doesn't already start with one
// (after skipping leading whitespace) — the original definition's
// `closing` field always starts at the `}` itself, but by the time it's
// been through parameter substitution it's still textually intact, so
// this guard exists for robustness against a closing field that was
// trimmed to nothing. The result always ends with a newline (one is added
// if Closing lacks it) followed by Indent again, so the use-site text that
// comes next starts at the original indentation.
func SpecializationDeclaration(in SpecializationInput) string {
	var b strings.Builder

	b.WriteString(in.Indent)
	b.WriteString(in.Keyword)
	b.WriteByte(' ')
	b.WriteString(in.SanitizedName)
	b.WriteString(in.Between)
	b.WriteByte('{')
	b.WriteString(in.Body)

	trimmedClosing := strings.TrimLeftFunc(in.Closing, isWhitespaceRune)
	if !strings.HasPrefix(trimmedClosing, "}") {
		b.WriteByte('}')
	}

	b.WriteString(in.Closing)

	text := b.String()
	if text == "" || text[len(text)-1] != '\n' {
		text += "\n"
	}
	text += in.Indent

	return text
}

func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
