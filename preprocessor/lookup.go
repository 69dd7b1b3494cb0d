// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Resolves a (possibly scope-qualified) use-site identifier to the best
// matching definition in the file.

package preprocessor

import "strings"

// DefinitionLookup indexes a file's definitions by full name and by short
// name. Definitions are referenced by pointer to an individually
// heap-allocated TemplateDefinition, so a growing definitions slice
// elsewhere in the package never invalidates these pointers — see
// DESIGN.md's note on cyclic ownership.
type DefinitionLookup struct {
	byFull  map[string]*TemplateDefinition
	byShort map[string][]*TemplateDefinition
}

func newDefinitionLookup() *DefinitionLookup {
	return &DefinitionLookup{
		byFull:  make(map[string]*TemplateDefinition),
		byShort: make(map[string][]*TemplateDefinition),
	}
}

func (l *DefinitionLookup) register(def *TemplateDefinition) {
	l.byFull[def.FullName()] = def
	l.byShort[def.Name] = append(l.byShort[def.Name], def)
}

// resolve implements the scoring table of spec §4.5. candidates are
// iterated in insertion order, so ties are broken by first encounter.
func (l *DefinitionLookup) resolve(token, currentScope string) *TemplateDefinition {
	dot := strings.LastIndexByte(token, '.')

	var prefix, base string
	if dot == -1 {
		base = token
	} else {
		prefix = token[:dot]
		base = token[dot+1:]
	}

	if dot != -1 {
		if def, ok := l.byFull[token]; ok {
			return def
		}
	}

	candidates, ok := l.byShort[base]
	if !ok {
		return nil
	}

	var best *TemplateDefinition
	bestScore := 0

	for _, def := range candidates {
		score := scoreCandidate(def, prefix, currentScope)

		if score > bestScore {
			bestScore = score
			best = def
		}

		if score >= 1000 {
			break
		}
	}

	return best
}

func scoreCandidate(def *TemplateDefinition, prefix, currentScope string) int {
	if prefix != "" {
		if def.ScopePath == prefix {
			return 1000 + len(def.ScopePath)
		}

		if scopeEndsWithPrefixOnBoundary(def.ScopePath, prefix) {
			return 700 + len(prefix)
		}
	}

	if def.ScopePath == currentScope {
		return 800 + len(def.ScopePath)
	}

	if def.ScopePath != "" && currentScope != "" &&
		strings.HasPrefix(currentScope, def.ScopePath) {
		rest := currentScope[len(def.ScopePath):]
		if rest == "" || rest[0] == '.' {
			return 400 + len(def.ScopePath)
		}
	}

	if def.ScopePath == "" {
		return 100
	}

	return 0
}

// scopeEndsWithPrefixOnBoundary reports whether scopePath ends with
// prefix at a '.' boundary (or at the very start of scopePath).
func scopeEndsWithPrefixOnBoundary(scopePath, prefix string) bool {
	if len(scopePath) < len(prefix) {
		return false
	}

	idx := strings.LastIndex(scopePath, prefix)
	if idx == -1 {
		return false
	}

	atEnd := idx+len(prefix) == len(scopePath)
	boundaryOK := idx == 0 || scopePath[idx-1] == '.'

	return atEnd && boundaryOK
}
