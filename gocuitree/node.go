package gocuitree

import (
	"github.com/gdamore/tcell/v2"

	"kargotree/treeitem"
)

type Node struct {
	Key           string
	Name          string
	Data          interface{}
	Actived       bool
	Expanded      bool
	Checked       bool
	Indeterminate bool
	Loading       bool
	Disabled      bool
	// NoCheck removes the checkbox of this node in a checkable tree.
	NoCheck bool
	// Loaded marks lazily populated nodes whose children were fetched.
	Loaded     bool
	LineNumber int
	Color      tcell.Color
	Children   []*Node

	parent *Node
	tree   *Tree
}

var _ treeitem.Node = (*Node)(nil)

func newNode(tree *Tree, key, name string, color tcell.Color, data interface{}) *Node {
	return &Node{
		Key:        key,
		Name:       name,
		Data:       data,
		Color:      color,
		LineNumber: -1,
		Children:   []*Node{},
		tree:       tree,
	}
}

func (node *Node) Parent() *Node { return node.parent }

func (node *Node) Value() string {
	if node.Key != "" {
		return node.Key
	}
	return node.Name
}

func (node *Node) Label() string { return node.Name }

func (node *Node) LabelColor() tcell.Color { return node.Color }

func (node *Node) Level() int {
	level := 0
	for p := node.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Ancestors lists the ancestors from the root down to the parent.
func (node *Node) Ancestors() []*Node {
	var chain []*Node
	for p := node.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (node *Node) Parents() []treeitem.Node {
	ancestors := node.Ancestors()
	parents := make([]treeitem.Node, len(ancestors))
	for i, p := range ancestors {
		parents[i] = p
	}
	return parents
}

func (node *Node) Path() []string {
	ancestors := node.Ancestors()
	path := make([]string, 0, len(ancestors)+1)
	for _, p := range ancestors {
		path = append(path, p.Value())
	}
	return append(path, node.Value())
}

func (node *Node) siblings() []*Node {
	if node.parent == nil {
		return []*Node{node}
	}
	return node.parent.Children
}

func (node *Node) IsFirst() bool {
	s := node.siblings()
	return len(s) > 0 && s[0] == node
}

func (node *Node) IsLast() bool {
	s := node.siblings()
	return len(s) > 0 && s[len(s)-1] == node
}

// IsLeaf reports whether the node has no children. Lazy nodes that were never
// loaded still count as branches.
func (node *Node) IsLeaf() bool {
	if node.tree != nil && node.tree.Lazy && !node.Loaded {
		return false
	}
	return len(node.Children) == 0
}

func (node *Node) IsExpanded() bool      { return node.Expanded }
func (node *Node) IsChecked() bool       { return node.Checked }
func (node *Node) IsIndeterminate() bool { return node.Indeterminate }
func (node *Node) IsActived() bool       { return node.Actived }
func (node *Node) IsLoading() bool       { return node.Loading }

func (node *Node) IsActivable() bool {
	return node.tree != nil && node.tree.Activable
}

func (node *Node) IsDisabled() bool {
	return node.Disabled || (node.tree != nil && node.tree.Disabled)
}

func (node *Node) IsCheckable() bool {
	return node.tree != nil && node.tree.Checkable && !node.NoCheck
}

func (node *Node) Model() treeitem.Model {
	return treeitem.Model{
		Value:         node.Value(),
		Label:         node.Name,
		Level:         node.Level(),
		Path:          node.Path(),
		Expanded:      node.Expanded,
		Checked:       node.Checked,
		Indeterminate: node.Indeterminate,
		Actived:       node.Actived,
		Loading:       node.Loading,
		Disabled:      node.IsDisabled(),
		Leaf:          node.IsLeaf(),
		Data:          node.Data,
	}
}

func (node *Node) resetTreeLineNumbers() {
	node.LineNumber = -1
	for _, child := range node.Children {
		child.resetTreeLineNumbers()
	}
}

func (node *Node) clearActive() {
	node.Actived = false
	for _, child := range node.Children {
		child.clearActive()
	}
}

func (node *Node) tryProcessNode(line int, nodeProcessor func(node *Node)) bool {
	if node.LineNumber == line {
		nodeProcessor(node)
		return true
	}
	for _, child := range node.Children {
		if child.tryProcessNode(line, nodeProcessor) {
			return true
		}
	}
	return false
}

// visible appends the node and, when expanded, its visible descendants,
// numbering them from *line.
func (node *Node) visible(out []*Node, line *int) []*Node {
	node.LineNumber = *line
	*line++
	out = append(out, node)
	if node.Expanded {
		for _, child := range node.Children {
			out = child.visible(out, line)
		}
	}
	return out
}

func (node *Node) find(value string) *Node {
	if node.Value() == value {
		return node
	}
	for _, child := range node.Children {
		if n := child.find(value); n != nil {
			return n
		}
	}
	return nil
}

func (node *Node) AddChildNode(key, name string, color tcell.Color, data interface{}) *Node {
	childNode := newNode(node.tree, key, name, color, data)
	childNode.parent = node
	node.Children = append(node.Children, childNode)
	node.Loaded = true
	return childNode
}

// SetChildren replaces the children of a lazily loaded node.
func (node *Node) SetChildren(children []*Node) {
	for _, c := range children {
		c.parent = node
		c.tree = node.tree
	}
	node.Children = children
	node.Loaded = true
}
