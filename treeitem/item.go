package treeitem

import "strconv"

// Item is one rendered row. It owns the ripple handle bound to its label and
// must be closed when the row is discarded.
type Item struct {
	node  Node
	scope *Scope
	props Props

	ripple    RippleHandle
	rippleKey string
}

func NewItem(node Node, scope *Scope, props Props) *Item {
	if scope == nil {
		scope = NewScope()
	}
	return &Item{node: node, scope: scope, props: props}
}

func (it *Item) Node() Node { return it.node }

// SetProps replaces the row callbacks used by subsequent renders.
func (it *Item) SetProps(p Props) { it.props = p }

// Render builds the row fragment: line, icon, label and operations inside a
// clickable container carrying the node's value and level.
func (it *Item) Render() *Element {
	n, s := it.node, it.scope

	row := El("div",
		renderLine(n, s),
		renderIcon(n, s),
		it.renderLabel(),
		renderOperations(n, s),
	)
	row.AddClass(s.Classes.ComposeClasses(n)...)
	row.Style = ComposeStyle(n)
	row.SetAttr("data-value", n.Value())
	row.SetAttr("data-level", strconv.Itoa(n.Level()))
	row.OnClick = it.handleClick

	if log := s.logger().V(5); log.Enabled() {
		log.Info("rendered tree item", "node", n.Value(), "fragment", row.String())
	}
	return row
}

// Close releases the ripple handle, if any.
func (it *Item) Close() {
	it.bindRipple(nil)
}

// bindRipple keeps one ripple handle per label identity. A label with a new
// key gets a fresh handle; a nil label releases it.
func (it *Item) bindRipple(label *Element) {
	if label == nil || it.scope.Ripple == nil {
		if it.ripple != nil {
			it.ripple.Release()
			it.ripple, it.rippleKey = nil, ""
		}
		return
	}
	if it.ripple != nil && it.rippleKey != label.Key {
		it.ripple.Release()
		it.ripple = nil
	}
	if it.ripple == nil {
		it.ripple = it.scope.Ripple.Attach(label)
		it.rippleKey = label.Key
	}
	label.Ripple = it.ripple
}

// Render draws a one-off row. No ripple is attached since nothing would
// release it.
func Render(node Node, scope *Scope, props Props) *Element {
	if scope == nil {
		scope = NewScope()
	}
	sc := *scope
	sc.Ripple = nil
	return NewItem(node, &sc, props).Render()
}
