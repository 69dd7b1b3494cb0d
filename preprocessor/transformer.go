// By Navid M (c)
// Date: 2025
// License: GPL3
//
// The single-pass file transformer: walks the source once, tracking
// scope and string/comment context, and drives every other component in
// this package to produce the rewritten text.

package preprocessor

import (
	"strings"

	"tmplforge/renderer"
)

// transformFileContent is the entry point for §4.4: one forward pass
// over text, emitting placeholders the moment a definition is parsed and
// specialization declarations the moment a use site first resolves.
func transformFileContent(filePath, text string) FileProcessResult {
	lookup := newDefinitionLookup()
	var definitions []*TemplateDefinition

	var output []byte
	pos := 0
	braceDepth := 0
	scopeStack := []*ScopeFrame{{Name: "", Path: "", Depth: 0}}
	pending := PendingScope{}
	hadTemplates := false

	size := len(text)

	for pos < size {
		c := text[pos]

		if c == '"' || c == '\'' {
			start := pos
			pos = skipStringLiteral(text, pos, c)
			output = append(output, text[start:pos]...)
			continue
		}

		if c == '/' && pos+1 < size && (text[pos+1] == '/' || text[pos+1] == '*') {
			start := pos
			if text[pos+1] == '/' {
				pos += 2
				for pos < size && text[pos] != '\n' {
					pos++
				}
			} else {
				pos += 2
				for pos+1 < size && !(text[pos] == '*' && text[pos+1] == '/') {
					pos++
				}
				pos = min(pos+2, size)
			}
			output = append(output, text[start:pos]...)
			continue
		}

		if isIdentifierStart(c) {
			if def, _, ok := parseTemplateDefinition(text, pos); ok {
				def.ScopePath = scopeStack[len(scopeStack)-1].Path
				stored := &def
				definitions = append(definitions, stored)
				lookup.register(stored)
				hadTemplates = true

				if !stored.PlaceholderGenerated {
					placeholder := renderer.Placeholder(renderer.PlaceholderInput{
						Keyword:        stored.Keyword,
						Name:           stored.Name,
						Between:        stored.Between,
						Body:           stored.Body,
						Closing:        stored.Closing,
						Indentation:    stored.Indentation,
						Params:         convertParams(stored.Parameters),
						ReduceBrackets: evaluateBracketExpressions,
					})
					output = append(output, placeholder...)
					if len(placeholder) > 0 && output[len(output)-1] != '\n' {
						output = append(output, '\n')
					}
					stored.PlaceholderGenerated = true
				}

				pos = stored.End
				pending = PendingScope{}
				continue
			}
		}

		if c == '{' {
			output = append(output, '{')
			pos++
			braceDepth++

			if pending.ExpectBrace {
				newPath := scopeStack[len(scopeStack)-1].Path
				if pending.Name != "" {
					if newPath != "" {
						newPath += "."
					}
					newPath += pending.Name
				}
				scopeStack = append(scopeStack, &ScopeFrame{Name: pending.Name, Path: newPath, Depth: braceDepth})
				pending = PendingScope{}
			}
			continue
		}

		if c == '}' {
			output = append(output, '}')
			pos++

			if braceDepth > 0 {
				braceDepth--
			}

			for len(scopeStack) > 1 && scopeStack[len(scopeStack)-1].Depth > braceDepth {
				scopeStack = scopeStack[:len(scopeStack)-1]
			}

			pending = PendingScope{}
			continue
		}

		if c == ';' {
			output = append(output, ';')
			pos++
			pending = PendingScope{}
			continue
		}

		if isSpace(c) {
			output = append(output, c)
			pos++
			continue
		}

		if isTypeChar(c) {
			tokenStart := pos
			for pos < size && isTypeChar(text[pos]) {
				pos++
			}
			token := text[tokenStart:pos]

			if pending.ExpectName {
				pending.Name = token
				pending.ExpectName = false
				pending.ExpectBrace = true
			}

			if token == "namespace" || token == "struct" || token == "class" {
				pending = PendingScope{Keyword: token, ExpectName: true}
				output = append(output, token...)
				continue
			}

			lookahead := skipWhitespaceAndComments(text, pos)

			if lookahead < size && text[lookahead] == '<' {
				args, argsEnd := parseTemplateArguments(text, lookahead)

				if len(args) > 0 {
					currentScope := scopeStack[len(scopeStack)-1]
					def := lookup.resolve(token, currentScope.Path)

					if def != nil {
						tokenPrefix := ""
						if dot := strings.LastIndexByte(token, '.'); dot != -1 {
							tokenPrefix = token[:dot]
						}

						spec := registerSpecialization(def, args, tokenPrefix, currentScope.Path)

						if currentScope.markEmitted(spec.SanitizedName) {
							indent := currentIndent(output)
							if len(output) > 0 && output[len(output)-1] != '\n' {
								output = append(output, '\n')
							}
							decl := renderer.SpecializationDeclaration(renderer.SpecializationInput{
								Keyword:       def.Keyword,
								SanitizedName: spec.SanitizedName,
								Between:       spec.Between,
								Body:          spec.Body,
								Closing:       spec.Closing,
								Indent:        indent,
							})
							output = append(output, decl...)
						}

						output = append(output, spec.SanitizedName...)
						pos = argsEnd
						hadTemplates = true
						pending = PendingScope{}
						continue
					}
				}

				output = append(output, text[tokenStart:argsEnd]...)
				pos = argsEnd
				continue
			}

			output = append(output, token...)
			continue
		}

		output = append(output, c)
		pos++
	}

	processed := string(output)

	return FileProcessResult{
		ProcessedContent: processed,
		HadTemplates:     hadTemplates,
		Imports:          extractImports(processed, filePath),
	}
}

func convertParams(params []TemplateParameter) []renderer.Param {
	out := make([]renderer.Param, len(params))
	for i, p := range params {
		kind := renderer.TypeParam
		if p.Kind == NonType {
			kind = renderer.NonTypeParam
		}
		out[i] = renderer.Param{Name: p.Name, Kind: kind}
	}
	return out
}

// currentIndent returns the run of spaces/tabs following the last
// newline in output (or the whole buffer, if output has no newline yet).
func currentIndent(output []byte) string {
	newline := -1
	for i := len(output) - 1; i >= 0; i-- {
		if output[i] == '\n' {
			newline = i
			break
		}
	}

	start := newline + 1
	end := start
	for end < len(output) && (output[end] == ' ' || output[end] == '\t') {
		end++
	}

	return string(output[start:end])
}
