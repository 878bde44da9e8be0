package treeitem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kargotree/treeitem"
)

func TestFromValue(t *testing.T) {
	fn := func(treeitem.Node) *treeitem.Element { return treeitem.Text("f") }
	tests := []struct {
		name string
		in   any
		want treeitem.SpecKind
	}{
		{"nil", nil, treeitem.SpecNone},
		{"true", true, treeitem.SpecDefault},
		{"false", false, treeitem.SpecNone},
		{"empty string", "", treeitem.SpecNone},
		{"template", "{{.Label}}", treeitem.SpecTemplate},
		{"bad template", "{{.Label", treeitem.SpecMalformed},
		{"func", fn, treeitem.SpecFunc},
		{"render func", treeitem.RenderFunc(fn), treeitem.SpecFunc},
		{"nil func", treeitem.RenderFunc(nil), treeitem.SpecNone},
		{"int", 3, treeitem.SpecMalformed},
		{"spec", treeitem.Default(), treeitem.SpecDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, treeitem.FromValue(tt.in).Kind())
		})
	}
}

func TestSpecEnabled(t *testing.T) {
	assert.True(t, treeitem.Default().Enabled())
	assert.True(t, treeitem.Template("x").Enabled())
	assert.False(t, treeitem.Bool(false).Enabled())
	assert.False(t, treeitem.FromValue(1.5).Enabled())
}

func TestMalformedTemplate(t *testing.T) {
	f := newFixture()
	spec := treeitem.Template("{{.Nope")
	assert.Error(t, spec.Err())
	assert.Nil(t, treeitem.Resolve(spec, f.x, f.scope.Log))

	// Executing against a missing field fails at render time.
	spec = treeitem.Template("{{.Nope}}")
	assert.NoError(t, spec.Err())
	assert.Nil(t, treeitem.Resolve(spec, f.x, f.scope.Log))
}

func TestResolveFunc(t *testing.T) {
	f := newFixture()
	spec := treeitem.Func(func(n treeitem.Node) *treeitem.Element {
		return treeitem.Text(strings.Join(n.Path(), "."))
	})
	assert.Equal(t, "a.b.c.x", treeitem.Resolve(spec, f.x, f.scope.Log).Text)
	assert.Nil(t, treeitem.Resolve(treeitem.Default(), f.x, f.scope.Log))
}
