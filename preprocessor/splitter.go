// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Bracket-balanced comma-split helpers: one for a template definition's
// parameter list, one for a use site's argument list.

package preprocessor

import "strings"

// splitTemplateParameters splits the text inside a definition's `<...>`
// on top-level commas (respecting nested `<...>`), strips a trailing
// `= default`, strips a trailing `...`, and classifies the remaining
// identifier by the lowercased prefix preceding it.
func splitTemplateParameters(params string) []TemplateParameter {
	var result []TemplateParameter
	depth := 0
	tokenStart := 0

	flush := func(raw string) {
		if p := classifyParameter(raw); p != nil {
			result = append(result, *p)
		}
	}

	for i := 0; i < len(params); i++ {
		c := params[i]

		switch {
		case c == '<':
			depth++
		case c == '>':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			flush(trim(params[tokenStart:i]))
			tokenStart = i + 1
		}
	}

	flush(trim(params[tokenStart:]))
	return result
}

func classifyParameter(token string) *TemplateParameter {
	token = trim(token)
	if token == "" {
		return nil
	}

	cleaned := stripDefaultArgument(token)
	cleaned = trim(cleaned)
	if cleaned == "" {
		return nil
	}

	if strings.HasSuffix(cleaned, "...") {
		cleaned = trim(cleaned[:len(cleaned)-3])
	}
	if cleaned == "" {
		return nil
	}

	end := len(cleaned)
	for end > 0 && isSpace(cleaned[end-1]) {
		end--
	}

	begin := end
	for begin > 0 {
		c := cleaned[begin-1]
		if isIdentifierChar(c) {
			begin--
		} else {
			break
		}
	}

	if begin >= end {
		return nil
	}

	name := cleaned[begin:end]
	prefix := strings.ToLower(trim(cleaned[:begin]))

	kind := NonType
	if strings.Contains(prefix, "typename") || strings.Contains(prefix, "class") ||
		strings.Contains(prefix, "struct") || strings.Contains(prefix, "template") {
		kind = Type
	}

	return &TemplateParameter{Name: name, Kind: kind}
}

// stripDefaultArgument removes a trailing `= expr` at nesting depth 0
// with respect to `<...>`.
func stripDefaultArgument(token string) string {
	depth := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth == 0 {
				return token[:i]
			}
		}
	}
	return token
}

// parseTemplateArguments parses the angle-bracketed argument list at a
// use site starting at ltPos (the position of the `<`). It returns the
// trimmed argument tokens and the position just past the matching `>`.
func parseTemplateArguments(text string, ltPos int) ([]string, int) {
	size := len(text)
	if ltPos >= size || text[ltPos] != '<' {
		return nil, ltPos
	}

	var result []string
	pos := ltPos + 1
	depth := 1
	tokenStart := pos

	for pos < size && depth > 0 {
		if next, advanced := skipStringsAndComments(text, pos); advanced {
			pos = next
			continue
		}

		c := text[pos]

		switch {
		case c == '<':
			depth++
		case c == '>':
			depth--
			if depth == 0 {
				if tok := trim(text[tokenStart:pos]); tok != "" {
					result = append(result, tok)
				}
				pos++
				return result, pos
			}
		case c == ',' && depth == 1:
			if tok := trim(text[tokenStart:pos]); tok != "" {
				result = append(result, tok)
			}
			tokenStart = pos + 1
		}

		pos++
	}

	return result, pos
}
