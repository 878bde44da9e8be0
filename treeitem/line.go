package treeitem

import (
	"fmt"
	"strconv"
	"strings"
)

// LineColor is the colour token shared by every guide line shadow.
const LineColor = "var(--color)"

// Shadow is one layer of a connector line, displaced Offset indentation
// units horizontally from the node's own segment.
type Shadow struct {
	Offset int
	Y      int
	Color  string
}

func (s Shadow) String() string {
	return fmt.Sprintf("calc(%d * var(--space)) %d %s", s.Offset, s.Y, s.Color)
}

// LineShadows computes the guide line extensions drawn behind a node. The
// immediate parent is represented by the node's own segment, so only the
// ancestors above it are considered; an ancestor that is the last child of
// its parent contributes nothing.
func LineShadows(n Node) []Shadow {
	parents := n.Parents()
	if len(parents) == 0 {
		return nil
	}
	parents = parents[:len(parents)-1]

	var shadows []Shadow
	for i, p := range parents {
		if p.IsLast() {
			continue
		}
		shadows = append(shadows, Shadow{Offset: -(i + 1), Color: LineColor})
	}
	return shadows
}

// BoxShadow joins shadows into a single layered value.
func BoxShadow(shadows []Shadow) string {
	parts := make([]string, len(shadows))
	for i, s := range shadows {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// LineClasses returns the classes of a node's connector segment. Without an
// icon to make room for, the segment is widened; the first child shortens
// its upward segment only when an icon fills the gap.
func (c ClassNames) LineClasses(n Node, iconVisible bool) []string {
	list := []string{c.Line}
	if n.IsLeaf() || !iconVisible {
		list = append(list, c.LineIsLeaf)
	}
	if n.IsFirst() && iconVisible {
		list = append(list, c.LineIsFirst)
	}
	return list
}

func renderLine(n Node, s *Scope) *Element {
	if s.Slots.Line != nil {
		return s.Slots.Line(n.Model())
	}
	if !s.Line.IsDefault() {
		return Resolve(s.Line, n, s.logger())
	}
	if len(n.Parents()) == 0 {
		return nil
	}
	el := El("span").AddClass(s.Classes.LineClasses(n, s.Slots.Icon != nil || s.Icon.Enabled())...)
	el.SetStyle("--level", strconv.Itoa(n.Level()))
	el.SetStyle("box-shadow", BoxShadow(LineShadows(n)))
	return el
}
