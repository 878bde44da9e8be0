package treeitem

// Built-in icon names understood by renderers.
const (
	IconCaretRight = "caret-right-small"
	IconLoading    = "loading"
)

// Icon builds a named icon element.
func Icon(name string) *Element {
	return El("icon").SetAttr("name", name)
}

func (s *Scope) folderIcon() *Element {
	if s.Global.FolderIcon != nil {
		return s.Global.FolderIcon()
	}
	return Icon(IconCaretRight)
}

// renderIcon wraps the resolved icon in an expand trigger that does not
// activate the node.
func renderIcon(n Node, s *Scope) *Element {
	var content *Element
	isDefault := false

	switch {
	case s.Slots.Icon != nil:
		content = s.Slots.Icon(n.Model())
	case s.Icon.IsDefault():
		if !n.IsLeaf() {
			isDefault = true
			content = s.folderIcon()
			if n.IsLoading() && n.IsExpanded() {
				content = Icon(IconLoading).AddClass(s.Classes.Loading)
			}
		}
	default:
		content = Resolve(s.Icon, n, s.logger())
	}

	wrap := El("span", content).AddClass(s.Classes.TreeIcon, s.Classes.FolderIcon)
	if isDefault {
		wrap.AddClass(s.Classes.IconDefault)
	}
	wrap.SetAttr(AttrTrigger, TriggerExpand)
	wrap.SetAttr(AttrIgnore, IgnoreActive)
	return wrap
}
