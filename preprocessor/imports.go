// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Scans processed text for `import "path"` directives.

package preprocessor

import "path/filepath"

// extractImports scans text lexically (string/comment aware) for the
// whole word `import` followed by a double-quoted string literal, and
// resolves each literal's body to an absolute path relative to
// filePath's directory.
func extractImports(text, filePath string) []string {
	var imports []string
	size := len(text)
	pos := 0
	dir := filepath.Dir(filePath)

	for pos < size {
		if next, advanced := skipStringsAndComments(text, pos); advanced {
			pos = next
			continue
		}

		c := text[pos]
		if !isIdentifierStart(c) {
			pos++
			continue
		}

		idStart := pos
		for pos < size && isIdentifierChar(text[pos]) {
			pos++
		}

		if text[idStart:pos] != "import" {
			continue
		}

		pos = skipWhitespaceAndComments(text, pos)

		if pos >= size || text[pos] != '"' {
			continue
		}

		pos++
		pathStart := pos

		for pos < size && text[pos] != '"' {
			if text[pos] == '\\' && pos+1 < size {
				pos += 2
			} else {
				pos++
			}
		}

		if pos > pathStart {
			imported := unescapeImportPath(text[pathStart:pos])
			absolute := filepath.Join(dir, imported)
			if filepath.IsAbs(imported) {
				absolute = imported
			}
			imports = append(imports, canonicalizePath(absolute))
		}

		if pos < size && text[pos] == '"' {
			pos++
		}
	}

	return imports
}

// unescapeImportPath resolves the `\x` two-character escapes the spec's
// string-literal scanner treats uniformly (§4.1), for the literal body of
// an import directive.
func unescapeImportPath(raw string) string {
	var b []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			b = append(b, raw[i+1])
			i++
			continue
		}
		b = append(b, raw[i])
	}
	return string(b)
}
