package treeitem

import (
	"github.com/go-logr/logr"
)

// Slot is a scoped customization callback for one feature.
type Slot func(Model) *Element

// Slots holds the optional per-feature customization callbacks. A present
// slot takes priority over every other rendering path of its feature.
type Slots struct {
	Line       Slot
	Icon       Slot
	Label      Slot
	Operations Slot
}

// DisableCheck decides whether a node's checkbox is disabled, in addition to
// the node's own disabled state. The zero value never disables.
type DisableCheck struct {
	all  bool
	pred func(Node) bool
}

// DisableAllChecks disables every checkbox when b is true.
func DisableAllChecks(b bool) DisableCheck { return DisableCheck{all: b} }

// DisableCheckWhen disables the checkbox of nodes matching pred.
func DisableCheckWhen(pred func(Node) bool) DisableCheck { return DisableCheck{pred: pred} }

func (d DisableCheck) Eval(n Node) bool {
	if d.pred != nil {
		return d.pred(n)
	}
	return d.all
}

// Global carries application level defaults shared by every tree.
type Global struct {
	// FolderIcon replaces the built-in directional indicator when set.
	FolderIcon func() *Element
}

// Scope is the tree-level configuration shared by every row of a tree. It is
// read-only during rendering and safe to share between goroutines.
type Scope struct {
	Line       RenderSpec
	Icon       RenderSpec
	Label      RenderSpec
	Operations RenderSpec

	Slots        Slots
	DisableCheck DisableCheck
	// CheckProps are copied onto every checkbox; disabled is always recomputed.
	CheckProps map[string]string

	Global  Global
	Classes ClassNames
	// Ripple attaches feedback effects to activable labels. Nil disables them.
	Ripple Ripple

	Log logr.Logger
}

// NewScope returns a scope with line, icon and label enabled and the default
// class names.
func NewScope() *Scope {
	return &Scope{
		Line:    Default(),
		Icon:    Default(),
		Label:   Default(),
		Classes: NewClassNames(DefaultPrefix),
		Log:     logr.Discard(),
	}
}

func (s *Scope) logger() logr.Logger {
	if s.Log.GetSink() == nil {
		return logr.Discard()
	}
	return s.Log
}
