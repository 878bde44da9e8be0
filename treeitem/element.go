package treeitem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Element is one node of a rendered fragment. A nil *Element renders nothing.
type Element struct {
	Tag      string
	Key      string
	Text     string
	Classes  []string
	Attrs    map[string]string
	Style    map[string]string
	Children []*Element

	OnClick  func(Event)
	OnChange func(Event)

	// Ripple is set on elements that carry a visual feedback effect.
	Ripple RippleHandle
}

// El builds an element, dropping nil children.
func El(tag string, children ...*Element) *Element {
	e := &Element{Tag: tag}
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Text builds a bare text element.
func Text(s string) *Element {
	return &Element{Text: s}
}

func (e *Element) SetAttr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[name] = value
	return e
}

func (e *Element) SetStyle(name, value string) *Element {
	if e.Style == nil {
		e.Style = map[string]string{}
	}
	e.Style[name] = value
	return e
}

func (e *Element) AddClass(names ...string) *Element {
	for _, n := range names {
		if n != "" {
			e.Classes = append(e.Classes, n)
		}
	}
	return e
}

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *Element) HasClass(name string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the children of the visited element.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(*Element, int) bool, depth int) {
	if e == nil || !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the first element in depth-first order matching pred.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(el *Element, _ int) bool {
		if found != nil {
			return false
		}
		if pred(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindClass returns the first element carrying the class name.
func (e *Element) FindClass(name string) *Element {
	return e.Find(func(el *Element) bool { return el.HasClass(name) })
}

// PathTo returns the chain of elements from e down to target, both included.
func (e *Element) PathTo(target *Element) []*Element {
	if e == nil || target == nil {
		return nil
	}
	if e == target {
		return []*Element{e}
	}
	for _, c := range e.Children {
		if p := c.PathTo(target); p != nil {
			return append([]*Element{e}, p...)
		}
	}
	return nil
}

// TextContent concatenates the text of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(el *Element, _ int) bool {
		b.WriteString(el.Text)
		return true
	})
	return b.String()
}

// StyleString renders the inline style in a stable order.
func (e *Element) StyleString() string {
	if e == nil || len(e.Style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Style))
	for k := range e.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s;", k, e.Style[k]))
	}
	return strings.Join(parts, " ")
}

func (e *Element) describe() string {
	if e.Tag == "" {
		return fmt.Sprintf("%q", e.Text)
	}
	var b strings.Builder
	b.WriteString("<" + e.Tag)
	if e.Key != "" {
		fmt.Fprintf(&b, " key=%s", e.Key)
	}
	if len(e.Classes) > 0 {
		fmt.Fprintf(&b, " class=%q", strings.Join(e.Classes, " "))
	}
	names := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&b, " %s=%q", k, e.Attrs[k])
	}
	if s := e.StyleString(); s != "" {
		fmt.Fprintf(&b, " style=%q", s)
	}
	b.WriteString(">")
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	}
	return b.String()
}

// String dumps the fragment as an indented tree.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	tree := treeprint.NewWithRoot(e.describe())
	addBranches(tree, e)
	return tree.String()
}

func addBranches(branch treeprint.Tree, e *Element) {
	for _, c := range e.Children {
		if len(c.Children) == 0 {
			branch.AddNode(c.describe())
			continue
		}
		addBranches(branch.AddBranch(c.describe()), c)
	}
}
