package treeitem

// Operations have no built-in default; without a slot the render spec decides.
func renderOperations(n Node, s *Scope) *Element {
	var op *Element
	if s.Slots.Operations != nil {
		op = s.Slots.Operations(n.Model())
	} else {
		op = Resolve(s.Operations, n, s.logger())
	}
	if op == nil {
		return nil
	}
	wrap := El("span", op).AddClass(s.Classes.Operations)
	wrap.SetAttr(AttrIgnore, IgnoreActive+","+IgnoreExpand)
	return wrap
}
