package gocuitree

import "github.com/gdamore/tcell/v2"

type Tree struct {
	Root *Node

	// Activable, Checkable and Disabled apply to every node of the tree.
	Activable bool
	Checkable bool
	Disabled  bool
	// Lazy trees treat unloaded nodes as branches.
	Lazy bool

	ActiveNode *Node
}

func NewTree(rootKey, rootName string, color tcell.Color, data interface{}) *Tree {
	t := &Tree{}
	t.Root = newNode(t, rootKey, rootName, color, data)
	return t
}

// NewNode creates a detached node owned by the tree, for use with SetChildren.
func (t *Tree) NewNode(key, name string, color tcell.Color, data interface{}) *Node {
	return newNode(t, key, name, color, data)
}

// Visible returns the rows currently shown, numbering them from zero.
func (t *Tree) Visible() []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	t.Root.resetTreeLineNumbers()
	line := 0
	return t.Root.visible(nil, &line)
}

// ProcessLineEvent runs eventHandler on the node drawn at line, as numbered by
// the last call to Visible.
func (t *Tree) ProcessLineEvent(line int, eventHandler func(node *Node)) bool {
	if t.Root == nil {
		return false
	}
	return t.Root.tryProcessNode(line, eventHandler)
}

func (t *Tree) Find(value string) *Node {
	if t.Root == nil {
		return nil
	}
	return t.Root.find(value)
}

// Activate makes node the single active node. Nodes of a non-activable tree
// are left untouched.
func (t *Tree) Activate(node *Node) bool {
	if !node.IsActivable() || node.IsDisabled() {
		return false
	}
	t.ClearActive()
	node.Actived = true
	t.ActiveNode = node
	return true
}

func (t *Tree) ClearActive() {
	t.Root.clearActive()
	t.ActiveNode = nil
}
