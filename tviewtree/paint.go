// Package tviewtree draws gocuitree trees in a terminal, one treeitem
// fragment per row.
package tviewtree

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"kargotree/config"
	"kargotree/treeitem"
)

type Theme struct {
	Line       tcell.Color
	Text       tcell.Color
	Background tcell.Color
	Active     tcell.Color
	Disabled   tcell.Color
	Operations tcell.Color
}

// NewTheme parses the configured colours. The disabled colour is the text
// colour blended halfway into the background.
func NewTheme(c config.Theme) (Theme, error) {
	parse := func(name, hex string) (colorful.Color, error) {
		col, err := colorful.Hex(hex)
		return col, errors.Wrapf(err, "theme colour %s", name)
	}
	var th Theme
	var cols [5]colorful.Color
	for i, entry := range []struct{ name, hex string }{
		{"line", c.Line}, {"text", c.Text}, {"background", c.Background},
		{"active", c.Active}, {"operations", c.Operations},
	} {
		col, err := parse(entry.name, entry.hex)
		if err != nil {
			return th, err
		}
		cols[i] = col
	}
	th.Line = toTcell(cols[0])
	th.Text = toTcell(cols[1])
	th.Background = toTcell(cols[2])
	th.Active = toTcell(cols[3])
	th.Operations = toTcell(cols[4])
	th.Disabled = toTcell(cols[1].BlendLab(cols[2], 0.5).Clamped())
	return th, nil
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Segment is a run of text drawn at Col, owned by the element that receives
// clicks on it.
type Segment struct {
	Col    int
	Text   string
	Style  tcell.Style
	Target *treeitem.Element
}

func (s Segment) Width() int { return runewidth.StringWidth(s.Text) }

type Row struct {
	Element  *treeitem.Element
	Segments []Segment
}

// String returns the row as plain text, gaps filled with spaces.
func (r Row) String() string {
	var b strings.Builder
	col := 0
	for _, s := range r.sorted() {
		if s.Col < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", s.Col-col))
		b.WriteString(s.Text)
		col = s.Col + s.Width()
	}
	return strings.TrimRight(b.String(), " ")
}

func (r Row) sorted() []Segment {
	segs := append([]Segment(nil), r.Segments...)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Col < segs[j].Col })
	return segs
}

// ElementAt returns the element drawn at column x, or the row itself.
func (r Row) ElementAt(x int) *treeitem.Element {
	for _, s := range r.Segments {
		if x >= s.Col && x < s.Col+s.Width() && s.Target != nil {
			return s.Target
		}
	}
	return r.Element
}

// Draw paints the row on screen over a base-styled background, clipped to
// width.
func (r Row) Draw(screen tcell.Screen, x, y, width int, base tcell.Style) {
	for c := 0; c < width; c++ {
		screen.SetContent(x+c, y, ' ', nil, base)
	}
	for _, s := range r.Segments {
		col := s.Col
		for _, ch := range s.Text {
			w := runewidth.RuneWidth(ch)
			if col+w > width {
				break
			}
			screen.SetContent(x+col, y, ch, nil, s.Style)
			col += w
		}
	}
}

// Painter lays a rendered row out into terminal cells.
type Painter struct {
	Indent  int
	Theme   Theme
	Glyphs  config.Glyphs
	Classes treeitem.ClassNames
	// RippleDuration is how long a triggered ripple highlights its label.
	RippleDuration time.Duration
	Now            func() time.Time
}

func NewPainter(opts config.Options) (*Painter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	th, err := NewTheme(opts.Theme)
	if err != nil {
		return nil, err
	}
	return &Painter{
		Indent:         opts.Indent,
		Theme:          th,
		Glyphs:         opts.Glyphs,
		Classes:        treeitem.NewClassNames(opts.ClassPrefix),
		RippleDuration: 150 * time.Millisecond,
		Now:            time.Now,
	}, nil
}

func (p *Painter) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(p.Theme.Background)
}

// Paint lays out row, the fragment rendered for node.
func (p *Painter) Paint(node treeitem.Node, row *treeitem.Element) Row {
	out := Row{Element: row}
	level, _ := strconv.Atoi(attr(row, "data-level"))
	disabled := row.HasClass(p.Classes.Disabled)
	open := row.HasClass(p.Classes.TreeNodeOpen)
	textStyle := p.style(p.Theme.Text)
	if disabled {
		textStyle = p.style(p.Theme.Disabled)
	}

	col := level * p.Indent
	widened := false
	for _, child := range row.Children {
		switch {
		case child.HasClass(p.Classes.Line):
			widened = child.HasClass(p.Classes.LineIsLeaf)
			out.Segments = append(out.Segments, p.paintLine(node, child, level)...)
		case child.HasClass(p.Classes.TreeIcon):
			out.Segments = append(out.Segments, p.paintIcon(child, col, open, widened, textStyle))
			col += 2
		case child.HasClass(p.Classes.Operations):
			out.Segments = append(out.Segments, Segment{
				Col: col + 1, Text: child.TextContent(), Style: p.style(p.Theme.Operations), Target: child,
			})
			col += 1 + runewidth.StringWidth(child.TextContent())
		case child.Tag == "checkbox" || child.HasClass(p.Classes.Label):
			seg := p.paintLabel(child, col, labelStyle(node, textStyle, disabled))
			out.Segments = append(out.Segments, seg)
			col += seg.Width()
		default:
			// A custom line slot renders in the connector column.
			seg := Segment{Col: max(level-1, 0) * p.Indent, Text: child.TextContent(), Style: p.style(p.Theme.Line), Target: child}
			out.Segments = append(out.Segments, seg)
		}
	}
	return out
}

func (p *Painter) paintLine(node treeitem.Node, line *treeitem.Element, level int) []Segment {
	ls := p.style(p.Theme.Line)
	lineCol := (level - 1) * p.Indent
	glyph := "├"
	if node.IsLast() {
		glyph = "└"
	}
	glyph += strings.Repeat("─", p.Indent-1)
	segs := []Segment{{Col: lineCol, Text: glyph, Style: ls, Target: line}}
	for _, sh := range treeitem.LineShadows(node) {
		c := lineCol + sh.Offset*p.Indent
		if c < 0 {
			continue
		}
		segs = append(segs, Segment{Col: c, Text: "│", Style: ls, Target: line})
	}
	return segs
}

func (p *Painter) paintIcon(wrap *treeitem.Element, col int, open, widened bool, st tcell.Style) Segment {
	seg := Segment{Col: col, Style: st, Target: wrap}
	var content *treeitem.Element
	if len(wrap.Children) > 0 {
		content = wrap.Children[0]
	}
	switch {
	case content == nil:
		seg.Text = " "
		if widened {
			seg.Text = "─"
			seg.Style = p.style(p.Theme.Line)
		}
	case attr(content, "name") == treeitem.IconLoading:
		seg.Text = p.Glyphs.Loading
	case attr(content, "name") == treeitem.IconCaretRight:
		seg.Text = p.Glyphs.Collapsed
		if open {
			seg.Text = p.Glyphs.Expanded
		}
	default:
		seg.Text = content.TextContent()
	}
	if runewidth.StringWidth(seg.Text) < 2 {
		seg.Text += " "
	}
	return seg
}

func (p *Painter) paintLabel(el *treeitem.Element, col int, st tcell.Style) Segment {
	text := el.TextContent()
	target := el
	if el.Tag == "checkbox" {
		box := p.Glyphs.Unchecked
		switch {
		case attr(el, "indeterminate") == "true":
			box = p.Glyphs.Indeterminate
		case attr(el, "checked") == "true":
			box = p.Glyphs.Checked
		}
		text = box + " " + text
		if attr(el, "disabled") == "true" {
			st = p.style(p.Theme.Disabled)
		}
	} else if len(el.Children) > 0 {
		target = el.Children[0]
	}
	if el.HasClass(p.Classes.Actived) {
		st = st.Background(p.Theme.Active)
	}
	if el.Ripple != nil && el.Ripple.Active(p.Now(), p.RippleDuration) {
		st = st.Reverse(true)
	}
	return Segment{Col: col, Text: text, Style: st, Target: target}
}

// labelStyle applies a node's own label colour, if it has one.
func labelStyle(node treeitem.Node, st tcell.Style, disabled bool) tcell.Style {
	c, ok := node.(interface{ LabelColor() tcell.Color })
	if !ok || disabled || c.LabelColor() == tcell.ColorDefault {
		return st
	}
	return st.Foreground(c.LabelColor())
}

func attr(el *treeitem.Element, name string) string {
	v, _ := el.Attr(name)
	return v
}
