package gocuitree

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	tree := NewTree("ns", "namespaces", tcell.ColorYellow, nil)
	dev := tree.Root.AddChildNode("dev", "dev", tcell.ColorGreen, nil)
	dev.AddChildNode("dev/Pods", "Pods", tcell.ColorYellow, nil)
	dev.AddChildNode("dev/ConfigMaps", "ConfigMaps", tcell.ColorYellow, nil)
	tree.Root.AddChildNode("prod", "prod", tcell.ColorGreen, nil)
	return tree
}

func TestStructure(t *testing.T) {
	tree := sampleTree()
	pods := tree.Find("dev/Pods")
	require.NotNil(t, pods)

	assert.Equal(t, 2, pods.Level())
	assert.Equal(t, "Pods", pods.Label())
	if diff := cmp.Diff([]string{"ns", "dev", "dev/Pods"}, pods.Path()); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}
	parents := pods.Parents()
	require.Len(t, parents, 2)
	assert.Equal(t, "ns", parents[0].Value())
	assert.Equal(t, "dev", parents[1].Value())

	assert.True(t, pods.IsFirst())
	assert.False(t, pods.IsLast())
	assert.True(t, tree.Find("dev/ConfigMaps").IsLast())
	assert.True(t, tree.Root.IsFirst() && tree.Root.IsLast())
	assert.True(t, pods.IsLeaf())
	assert.False(t, tree.Find("dev").IsLeaf())
}

func TestValueFallsBackToName(t *testing.T) {
	tree := NewTree("", "root", tcell.ColorDefault, nil)
	assert.Equal(t, "root", tree.Root.Value())
	assert.Equal(t, tree.Root, tree.Find("root"))
}

func TestCapabilities(t *testing.T) {
	tree := sampleTree()
	dev := tree.Find("dev")
	assert.False(t, dev.IsActivable())
	assert.False(t, dev.IsCheckable())
	assert.False(t, dev.IsDisabled())

	tree.Activable = true
	tree.Checkable = true
	assert.True(t, dev.IsActivable())
	assert.True(t, dev.IsCheckable())
	dev.NoCheck = true
	assert.False(t, dev.IsCheckable())

	tree.Disabled = true
	assert.True(t, dev.IsDisabled())
	assert.True(t, dev.Model().Disabled)
}

func TestLazyLeaves(t *testing.T) {
	tree := sampleTree()
	tree.Lazy = true
	pods := tree.Find("dev/Pods")
	assert.False(t, pods.IsLeaf(), "unloaded nodes may have children")

	pods.SetChildren([]*Node{tree.NewNode("dev/Pods/web", "web", tcell.ColorGreen, nil)})
	assert.False(t, pods.IsLeaf())
	web := tree.Find("dev/Pods/web")
	require.NotNil(t, web)
	assert.Equal(t, pods, web.Parent())
	assert.Equal(t, 3, web.Level())

	pods.SetChildren(nil)
	assert.True(t, pods.IsLeaf())
}

func TestVisibleAndLineEvents(t *testing.T) {
	tree := sampleTree()
	tree.Root.Expanded = true

	visible := tree.Visible()
	var names []string
	for _, n := range visible {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"namespaces", "dev", "prod"}, names)
	assert.Equal(t, -1, tree.Find("dev/Pods").LineNumber)

	var hit *Node
	assert.True(t, tree.ProcessLineEvent(2, func(n *Node) { hit = n }))
	assert.Equal(t, "prod", hit.Name)
	assert.False(t, tree.ProcessLineEvent(7, func(*Node) { t.Fatal("no node on line 7") }))

	tree.Find("dev").Expanded = true
	visible = tree.Visible()
	assert.Len(t, visible, 5)
	assert.Equal(t, 4, tree.Find("prod").LineNumber)
}

func TestActivate(t *testing.T) {
	tree := sampleTree()
	dev, prod := tree.Find("dev"), tree.Find("prod")
	assert.False(t, tree.Activate(dev), "tree is not activable")

	tree.Activable = true
	require.True(t, tree.Activate(dev))
	require.True(t, tree.Activate(prod))
	assert.False(t, dev.Actived)
	assert.True(t, prod.Actived)
	assert.Equal(t, prod, tree.ActiveNode)

	dev.Disabled = true
	assert.False(t, tree.Activate(dev))

	tree.ClearActive()
	assert.False(t, prod.Actived)
	assert.Nil(t, tree.ActiveNode)
}
