// Package treeitem renders a single row of a tree widget: its connector line,
// expand icon, label or checkbox, and trailing operations.
//
// Rendering is a pure function of a Node, the shared Scope and the row's
// Props. Nodes are owned by the tree structure; this package only reads them
// and reports click and change intents back through the Props callbacks.
package treeitem

// Node is the read-only view of a tree element consumed by the renderer.
type Node interface {
	Value() string
	Label() string
	// Level is the nesting depth, zero for roots.
	Level() int
	// Parents lists ancestors from the root down to the immediate parent.
	Parents() []Node
	// Path lists the values of the ancestors followed by the node's own.
	Path() []string

	IsFirst() bool
	IsLast() bool
	IsLeaf() bool

	IsExpanded() bool
	IsChecked() bool
	IsIndeterminate() bool
	IsActived() bool
	IsLoading() bool

	IsActivable() bool
	IsDisabled() bool
	IsCheckable() bool

	// Model returns the projection handed to scoped slot callbacks.
	Model() Model
}

// Model is the snapshot of a node exposed to customization callbacks.
type Model struct {
	Value         string
	Label         string
	Level         int
	Path          []string
	Expanded      bool
	Checked       bool
	Indeterminate bool
	Actived       bool
	Loading       bool
	Disabled      bool
	Leaf          bool
	Data          any
}
