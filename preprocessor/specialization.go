// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Per-definition memo of specializations, keyed by (scope-hint,
// argument-tuple) signature.

package preprocessor

import "strings"

const signatureFieldSeparator = "\x1f"

func makeSignature(args []string) string {
	return strings.Join(args, signatureFieldSeparator)
}

// registerSpecialization returns the cached specialization for (def,
// args, prefix, currentScope) if one already exists, building and
// caching a new one otherwise.
func registerSpecialization(def *TemplateDefinition, args []string, prefix, currentScope string) *Specialization {
	var scopeHint string
	switch {
	case prefix != "":
		scopeHint = sanitizeScopeName(prefix)
	case def.ScopePath != "":
		scopeHint = sanitizeScopeName(def.ScopePath)
	default:
		scopeHint = sanitizeScopeName(currentScope)
	}

	signature := scopeHint + "|" + makeSignature(args)

	if def.specializationIndex == nil {
		def.specializationIndex = make(map[string]int)
	}

	if idx, ok := def.specializationIndex[signature]; ok {
		return &def.Specializations[idx]
	}

	sanitizedName := def.Name
	if scopeHint != "" {
		sanitizedName += "_" + scopeHint
	}
	for _, arg := range args {
		sanitizedName += "_" + sanitizeToken(arg)
	}

	body := replaceParameters(def.Body, def.Parameters, args)
	body = evaluateBracketExpressions(body)

	spec := Specialization{
		Arguments:     append([]string(nil), args...),
		SanitizedName: sanitizedName,
		Between:       replaceParameters(def.Between, def.Parameters, args),
		Body:          body,
		Closing:       replaceParameters(def.Closing, def.Parameters, args),
	}

	def.specializationIndex[signature] = len(def.Specializations)
	def.Specializations = append(def.Specializations, spec)

	return &def.Specializations[len(def.Specializations)-1]
}
