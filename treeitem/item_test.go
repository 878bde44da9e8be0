package treeitem_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kargotree/treeitem"
)

func TestRowAttributes(t *testing.T) {
	f := newFixture()
	row := f.render(f.x)
	assert.Equal(t, "div", row.Tag)
	assert.Equal(t, "x", attrOf(row, "data-value"))
	assert.Equal(t, "3", attrOf(row, "data-level"))
	assert.Equal(t, "--level: 3;", row.StyleString())
	assert.Equal(t, []string{f.classes.TreeNode}, row.Classes)
}

func TestStateClasses(t *testing.T) {
	f := newFixture()
	f.c.Expanded = true
	f.c.Disabled = true
	row := f.render(f.c)
	assert.Equal(t, []string{f.classes.TreeNode, f.classes.TreeNodeOpen, f.classes.Disabled}, row.Classes)
}

func TestActiveRequiresActivable(t *testing.T) {
	f := newFixture()
	f.x.Actived = true

	row := f.render(f.x)
	assert.False(t, row.HasClass(f.classes.Actived))
	assert.False(t, row.FindClass(f.classes.Label).HasClass(f.classes.Actived))
	assert.False(t, treeitem.ComposeState(f.x).Active)

	f.tree.Activable = true
	row = f.render(f.x)
	assert.True(t, row.HasClass(f.classes.Actived))
	assert.True(t, row.FindClass(f.classes.Label).HasClass(f.classes.Actived))
}

func TestOperations(t *testing.T) {
	f := newFixture()
	assert.Nil(t, f.render(f.x).FindClass(f.classes.Operations), "no built-in default")

	f.scope.Operations = treeitem.Default()
	assert.Nil(t, f.render(f.x).FindClass(f.classes.Operations))

	f.scope.Operations = treeitem.Template("[{{len .Path}}]")
	ops := f.render(f.x).FindClass(f.classes.Operations)
	require.NotNil(t, ops)
	assert.Equal(t, "[4]", ops.TextContent())
	assert.Equal(t, "active,expand", attrOf(ops, treeitem.AttrIgnore))

	f.scope.Slots.Operations = func(m treeitem.Model) *treeitem.Element { return treeitem.Text("del " + m.Value) }
	assert.Equal(t, "del x", f.render(f.x).FindClass(f.classes.Operations).TextContent())

	f.scope.Slots.Operations = func(treeitem.Model) *treeitem.Element { return nil }
	assert.Nil(t, f.render(f.x).FindClass(f.classes.Operations))
}

func TestMalformedSpecRendersNothing(t *testing.T) {
	f := newFixture()
	f.scope.Operations = treeitem.FromValue(42)
	f.scope.Icon = treeitem.FromValue([]string{"nope"})
	row := f.render(f.c)
	assert.Nil(t, row.FindClass(f.classes.Operations))
	assert.Empty(t, row.FindClass(f.classes.TreeIcon).Children)
}

func TestClassPrefix(t *testing.T) {
	f := newFixture()
	f.scope.Classes = treeitem.NewClassNames("k")
	row := f.render(f.x)
	assert.Equal(t, []string{"k-tree__item"}, row.Classes)
	assert.NotNil(t, row.FindClass("k-tree__line"))
	assert.NotNil(t, row.FindClass("k-tree__label"))
}

func TestConcurrentRender(t *testing.T) {
	f := newFixture()
	f.scope.Operations = treeitem.Template("{{.Value}}")
	nodes := []treeitem.Node{f.a, f.b, f.b2, f.c, f.x}

	var wg sync.WaitGroup
	rows := make([]*treeitem.Element, 40)
	for i := range rows {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows[i] = f.render(nodes[i%len(nodes)])
		}(i)
	}
	wg.Wait()
	for i, row := range rows {
		assert.Equal(t, nodes[i%len(nodes)].Value(), attrOf(row, "data-value"))
	}
}
