package treeitem

import "strconv"

// Label element keys. Activable and plain labels never share a key so the
// ripple effect is rebound when a node switches between them.
const (
	KeyActivableLabel = "1"
	KeyPlainLabel     = "2"
)

func (s *Scope) checkboxDisabled(n Node) bool {
	return s.DisableCheck.Eval(n) || n.IsDisabled()
}

func renderLabelContent(n Node, s *Scope) *Element {
	switch {
	case s.Slots.Label != nil:
		return s.Slots.Label(n.Model())
	case s.Label.IsDefault():
		return Text(n.Label())
	default:
		return Resolve(s.Label, n, s.logger())
	}
}

func (it *Item) renderLabel() *Element {
	n, s := it.node, it.scope
	content := renderLabelContent(n, s)

	classes := []string{s.Classes.Label, s.Classes.LabelStrictly}
	if activeState(n) {
		classes = append(classes, s.Classes.Actived)
	}

	if n.IsCheckable() {
		cb := El("checkbox", content).AddClass(classes...).AddClass(s.Classes.Checkbox)
		cb.SetAttr("checked", strconv.FormatBool(n.IsChecked()))
		cb.SetAttr("indeterminate", strconv.FormatBool(n.IsIndeterminate()))
		cb.SetAttr("disabled", strconv.FormatBool(n.IsDisabled()))
		cb.SetAttr("name", n.Value())
		cb.SetAttr(AttrIgnore, IgnoreExpand+","+IgnoreActive)
		cb.SetAttr("need-ripple", "true")
		for k, v := range s.CheckProps {
			cb.SetAttr(k, v)
		}
		cb.SetAttr("disabled", strconv.FormatBool(s.checkboxDisabled(n)))
		cb.OnChange = it.handleChange
		it.bindRipple(nil)
		return cb
	}

	inner := El("span", content).SetStyle("position", "relative")
	label := El("span", inner).AddClass(classes...)
	if n.IsActivable() {
		label.Key = KeyActivableLabel
		it.bindRipple(label)
	} else {
		label.Key = KeyPlainLabel
		it.bindRipple(nil)
	}
	return label
}
