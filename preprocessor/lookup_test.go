// By Navid M (c)
// Date: 2025
// License: GPL3

package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionLookupResolve(t *testing.T) {
	global := &TemplateDefinition{Name: "Box", ScopePath: ""}
	inner := &TemplateDefinition{Name: "Box", ScopePath: "outer"}
	nested := &TemplateDefinition{Name: "Box", ScopePath: "outer.inner"}

	lookup := newDefinitionLookup()
	lookup.register(global)
	lookup.register(inner)
	lookup.register(nested)

	t.Run("exact scope match wins over global", func(t *testing.T) {
		got := lookup.resolve("Box", "outer")
		require.NotNil(t, got)
		assert.Same(t, inner, got)
	})

	t.Run("qualified prefix resolves to that scope", func(t *testing.T) {
		got := lookup.resolve("outer.Box", "")
		require.NotNil(t, got)
		assert.Same(t, inner, got)
	})

	t.Run("nested scope falls back to enclosing definition", func(t *testing.T) {
		got := lookup.resolve("Box", "outer.inner.deeper")
		require.NotNil(t, got)
		assert.Same(t, nested, got)
	})

	t.Run("unrelated scope falls back to global", func(t *testing.T) {
		got := lookup.resolve("Box", "somewhere.else")
		require.NotNil(t, got)
		assert.Same(t, global, got)
	})

	t.Run("unknown name resolves to nil", func(t *testing.T) {
		assert.Nil(t, lookup.resolve("Missing", ""))
	})
}

func TestDefinitionLookupResolveRejectsZeroScore(t *testing.T) {
	scoped := &TemplateDefinition{Name: "Box", ScopePath: "a.b"}

	lookup := newDefinitionLookup()
	lookup.register(scoped)

	// No global definition exists, the use site is unqualified, and the
	// current scope is unrelated to "a.b", so every candidate scores 0
	// and resolve must return nil rather than picking one anyway.
	got := lookup.resolve("Box", "x.y")
	assert.Nil(t, got)
}

func TestDefinitionLookupFullNameExactMatch(t *testing.T) {
	def := &TemplateDefinition{Name: "Box", ScopePath: "outer.inner"}
	lookup := newDefinitionLookup()
	lookup.register(def)

	got := lookup.resolve("outer.inner.Box", "")
	require.NotNil(t, got)
	assert.Same(t, def, got)
}
