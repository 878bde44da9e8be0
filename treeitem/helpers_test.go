package treeitem_test

import (
	"github.com/gdamore/tcell/v2"

	"kargotree/gocuitree"
	"kargotree/treeitem"
)

// fixture is the tree
//
//	a
//	├ b
//	│ └ c
//	│   └ x
//	└ b2
type fixture struct {
	tree           *gocuitree.Tree
	a, b, b2, c, x *gocuitree.Node
	scope          *treeitem.Scope
	classes        treeitem.ClassNames
}

func newFixture() *fixture {
	tree := gocuitree.NewTree("a", "A", tcell.ColorDefault, nil)
	f := &fixture{tree: tree, a: tree.Root}
	f.b = f.a.AddChildNode("b", "B", tcell.ColorDefault, nil)
	f.b2 = f.a.AddChildNode("b2", "B2", tcell.ColorDefault, nil)
	f.c = f.b.AddChildNode("c", "C", tcell.ColorDefault, nil)
	f.x = f.c.AddChildNode("x", "X", tcell.ColorDefault, "payload")
	f.scope = treeitem.NewScope()
	f.classes = f.scope.Classes
	return f
}

func (f *fixture) render(n treeitem.Node) *treeitem.Element {
	return treeitem.Render(n, f.scope, treeitem.Props{})
}
