package treeitem

import "strconv"

const DefaultPrefix = "t"

// ClassNames are the state and part classes emitted on rendered elements.
type ClassNames struct {
	TreeNode      string
	TreeNodeOpen  string
	Actived       string
	Disabled      string
	Line          string
	LineIsLeaf    string
	LineIsFirst   string
	TreeIcon      string
	FolderIcon    string
	IconDefault   string
	Label         string
	LabelStrictly string
	Operations    string
	Checkbox      string
	Loading       string
}

func NewClassNames(prefix string) ClassNames {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	tree := prefix + "-tree"
	return ClassNames{
		TreeNode:      tree + "__item",
		TreeNodeOpen:  tree + "__item--open",
		Actived:       prefix + "-is-active",
		Disabled:      prefix + "-is-disabled",
		Line:          tree + "__line",
		LineIsLeaf:    tree + "__line--leaf",
		LineIsFirst:   tree + "__line--first",
		TreeIcon:      tree + "__icon",
		FolderIcon:    prefix + "-folder-icon",
		IconDefault:   tree + "__icon--default",
		Label:         tree + "__label",
		LabelStrictly: tree + "__label--strictly",
		Operations:    tree + "__operations",
		Checkbox:      prefix + "-checkbox",
		Loading:       prefix + "-loading",
	}
}

// StateClasses maps each state class to whether it applies.
type StateClasses struct {
	Open     bool
	Active   bool
	Disabled bool
}

// ComposeState derives the row state. Non-activable nodes never carry the
// active state, whatever their internal flag says.
func ComposeState(n Node) StateClasses {
	return StateClasses{
		Open:     n.IsExpanded(),
		Active:   activeState(n),
		Disabled: n.IsDisabled(),
	}
}

func activeState(n Node) bool {
	if !n.IsActivable() {
		return false
	}
	return n.IsActived()
}

// ComposeClasses returns the row class list: the base class followed by the
// states that apply.
func (c ClassNames) ComposeClasses(n Node) []string {
	st := ComposeState(n)
	list := []string{c.TreeNode}
	if st.Open {
		list = append(list, c.TreeNodeOpen)
	}
	if st.Active {
		list = append(list, c.Actived)
	}
	if st.Disabled {
		list = append(list, c.Disabled)
	}
	return list
}

// ComposeStyle returns the row's depth custom property.
func ComposeStyle(n Node) map[string]string {
	return map[string]string{"--level": strconv.Itoa(n.Level())}
}
