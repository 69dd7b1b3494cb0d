// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Cursor-advancing lexical primitives shared by every higher-level
// scanner in this package. Nothing above this file is allowed to
// recognize a syntactic token inside a string literal or a comment; they
// all compose these three routines instead of re-deriving the rules.

package preprocessor

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}

// isTypeChar additionally allows '.' and ':' so that qualified names like
// `outer.Inner` or `ns::Name` scan as a single token.
func isTypeChar(c byte) bool {
	return isIdentifierChar(c) || c == '.' || c == ':'
}

// skipWhitespaceAndComments advances pos past whitespace, `//` line
// comments, and non-nesting `/* */` block comments.
func skipWhitespaceAndComments(text string, pos int) int {
	size := len(text)
	for pos < size {
		c := text[pos]

		if isSpace(c) {
			pos++
			continue
		}

		if c == '/' && pos+1 < size {
			if text[pos+1] == '/' {
				pos += 2
				for pos < size && text[pos] != '\n' {
					pos++
				}
				continue
			}

			if text[pos+1] == '*' {
				pos += 2
				for pos+1 < size && !(text[pos] == '*' && text[pos+1] == '/') {
					pos++
				}
				pos = min(pos+2, size)
				continue
			}
		}

		break
	}
	return pos
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// skipStringLiteral assumes pos is on the opening delimiter and returns
// the position just past the matching closing delimiter. `\x` is treated
// as a two-character escape for any x.
func skipStringLiteral(text string, pos int, delimiter byte) int {
	pos++
	size := len(text)

	for pos < size {
		c := text[pos]

		if c == '\\' {
			pos += 2
			continue
		}

		if c == delimiter {
			pos++
			break
		}

		pos++
	}

	return pos
}

// matchKeyword tests whether text[pos:] begins with keyword as a whole
// word: both neighbors, if present, must be non-identifier characters.
func matchKeyword(text string, pos int, keyword string) bool {
	if pos+len(keyword) > len(text) {
		return false
	}

	if pos > 0 && isIdentifierChar(text[pos-1]) {
		return false
	}

	if end := pos + len(keyword); end < len(text) && isIdentifierChar(text[end]) {
		return false
	}

	return text[pos:pos+len(keyword)] == keyword
}

func trim(s string) string {
	start := 0
	end := len(s)

	for start < end && isSpace(s[start]) {
		start++
	}

	for end > start && isSpace(s[end-1]) {
		end--
	}

	return s[start:end]
}

// skipStringsAndComments advances pos across string literals and
// comments at the current position, returning (newPos, advanced). It is
// the shared body of every "skip to matching bracket" loop below.
func skipStringsAndComments(text string, pos int) (int, bool) {
	size := len(text)
	if pos >= size {
		return pos, false
	}

	c := text[pos]

	switch {
	case c == '"':
		return skipStringLiteral(text, pos, '"'), true
	case c == '\'':
		return skipStringLiteral(text, pos, '\''), true
	case c == '/' && pos+1 < size && text[pos+1] == '/':
		for pos < size && text[pos] != '\n' {
			pos++
		}
		return pos, true
	case c == '/' && pos+1 < size && text[pos+1] == '*':
		pos += 2
		for pos+1 < size && !(text[pos] == '*' && text[pos+1] == '/') {
			pos++
		}
		return min(pos+2, size), true
	default:
		return pos, false
	}
}
