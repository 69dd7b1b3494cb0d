// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Recognizes a single template definition starting at a given position.

package preprocessor

import "strings"

// parseTemplateDefinition attempts to parse a template definition
// beginning at pos. On success it returns the populated definition, the
// position just past it, and true. On any failure it returns false and
// the caller falls through to treat the byte at pos as ordinary text.
func parseTemplateDefinition(text string, pos int) (TemplateDefinition, int, bool) {
	var def TemplateDefinition
	size := len(text)
	consumed := skipWhitespaceAndComments(text, pos)

	var keyword string
	switch {
	case matchKeyword(text, consumed, "struct"):
		keyword = "struct"
	case matchKeyword(text, consumed, "class"):
		keyword = "class"
	default:
		return def, pos, false
	}

	def.Keyword = keyword
	consumed += len(keyword)
	consumed = skipWhitespaceAndComments(text, consumed)

	if consumed >= size || !isIdentifierStart(text[consumed]) {
		return def, pos, false
	}

	nameStart := consumed
	for consumed < size && isIdentifierChar(text[consumed]) {
		consumed++
	}
	def.Name = text[nameStart:consumed]

	consumed = skipWhitespaceAndComments(text, consumed)
	if consumed >= size || text[consumed] != '<' {
		return def, pos, false
	}

	paramsStart := consumed + 1
	consumed = paramsStart
	angleDepth := 1

	for consumed < size && angleDepth > 0 {
		if next, advanced := skipStringsAndComments(text, consumed); advanced {
			consumed = next
			continue
		}

		c := text[consumed]
		if c == '<' {
			angleDepth++
		} else if c == '>' {
			angleDepth--
			if angleDepth == 0 {
				break
			}
		}
		consumed++
	}

	if angleDepth != 0 || consumed >= size || text[consumed] != '>' {
		return def, pos, false
	}

	def.Parameters = splitTemplateParameters(text[paramsStart:consumed])
	if len(def.Parameters) == 0 {
		return def, pos, false
	}

	consumed++
	betweenStart := consumed

	for consumed < size {
		if next, advanced := skipStringsAndComments(text, consumed); advanced {
			consumed = next
			continue
		}
		if text[consumed] == '{' {
			break
		}
		consumed++
	}

	if consumed >= size || text[consumed] != '{' {
		return def, pos, false
	}

	def.Between = text[betweenStart:consumed]

	bodyStart := consumed + 1
	consumed = bodyStart
	braceDepth := 1

	for consumed < size && braceDepth > 0 {
		if next, advanced := skipStringsAndComments(text, consumed); advanced {
			consumed = next
			continue
		}

		c := text[consumed]
		if c == '{' {
			braceDepth++
		} else if c == '}' {
			braceDepth--
			if braceDepth == 0 {
				break
			}
		}
		consumed++
	}

	if braceDepth != 0 || consumed >= size {
		return def, pos, false
	}

	bodyEnd := consumed
	closingStart := consumed

	if closingStart < size && text[closingStart] == '}' {
		closingStart++
	}

	closingStart = skipOneNewlineOfWhitespace(text, closingStart)

	if closingStart < size && text[closingStart] == ';' {
		closingStart++
		closingStart = skipOneNewlineOfWhitespace(text, closingStart)
	}

	indentationStart := strings.LastIndexByte(text[:pos], '\n')
	indentationPos := 0
	if indentationStart != -1 {
		indentationPos = indentationStart + 1
	}

	def.Indentation = text[indentationPos:pos]
	def.Body = text[bodyStart:bodyEnd]
	def.Closing = text[bodyEnd:closingStart]
	def.Start = pos
	def.End = closingStart

	return def, closingStart, true
}

// skipOneNewlineOfWhitespace advances across whitespace, stopping right
// after the first newline it consumes (or at the first non-whitespace
// byte, whichever comes first).
func skipOneNewlineOfWhitespace(text string, pos int) int {
	size := len(text)
	for pos < size && isSpace(text[pos]) {
		if text[pos] == '\n' {
			pos++
			break
		}
		pos++
	}
	return pos
}
