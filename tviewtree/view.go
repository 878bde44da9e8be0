package tviewtree

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/rivo/tview"

	"kargotree/gocuitree"
	"kargotree/treeitem"
)

type drawnRow struct {
	node *gocuitree.Node
	row  Row
}

// TreeView is a tview primitive showing the visible rows of a tree.
type TreeView struct {
	*tview.Box

	tree    *gocuitree.Tree
	scope   *treeitem.Scope
	painter *Painter
	items   map[*gocuitree.Node]*treeitem.Item

	rows   []drawnRow
	cursor int
	offset int

	expand   func(node *gocuitree.Node)
	selected func(node *gocuitree.Node)
	redraw   func()
	log      logr.Logger
}

func NewTreeView(tree *gocuitree.Tree, scope *treeitem.Scope, painter *Painter) *TreeView {
	return &TreeView{
		Box:     tview.NewBox(),
		tree:    tree,
		scope:   scope,
		painter: painter,
		items:   map[*gocuitree.Node]*treeitem.Item{},
		log:     scope.Log,
	}
}

// SetExpandFunc is called after a node was expanded, e.g. to load children.
func (t *TreeView) SetExpandFunc(fn func(node *gocuitree.Node)) *TreeView {
	t.expand = fn
	return t
}

// SetSelectedFunc is called when a node becomes active.
func (t *TreeView) SetSelectedFunc(fn func(node *gocuitree.Node)) *TreeView {
	t.selected = fn
	return t
}

// SetRedrawFunc schedules a redraw from outside the event loop, typically
// Application.Draw wrapped in QueueUpdateDraw.
func (t *TreeView) SetRedrawFunc(fn func()) *TreeView {
	t.redraw = fn
	return t
}

func (t *TreeView) item(node *gocuitree.Node) *treeitem.Item {
	it, ok := t.items[node]
	if !ok {
		it = treeitem.NewItem(node, t.scope, treeitem.Props{
			OnClick:  t.handleClick,
			OnChange: t.handleChange,
		})
		t.items[node] = it
	}
	return it
}

// render renders the visible nodes and releases the items of hidden ones.
func (t *TreeView) render() []drawnRow {
	nodes := t.tree.Visible()
	shown := make(map[*gocuitree.Node]bool, len(nodes))
	rows := make([]drawnRow, 0, len(nodes))
	for _, n := range nodes {
		shown[n] = true
		rows = append(rows, drawnRow{node: n, row: t.painter.Paint(n, t.item(n).Render())})
	}
	for n, it := range t.items {
		if !shown[n] {
			it.Close()
			delete(t.items, n)
		}
	}
	t.rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	return rows
}

func (t *TreeView) Draw(screen tcell.Screen) {
	t.Box.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	rows := t.render()

	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if height > 0 && t.cursor >= t.offset+height {
		t.offset = t.cursor - height + 1
	}

	base := tcell.StyleDefault.Background(t.painter.Theme.Background)
	for i := 0; i < height && t.offset+i < len(rows); i++ {
		r := rows[t.offset+i]
		style := base
		if t.offset+i == t.cursor && t.HasFocus() {
			style = style.Background(t.painter.Theme.Active)
		}
		r.row.Draw(screen, x, y+i, width, style)
	}
}

func (t *TreeView) handleClick(st treeitem.EventState) {
	node, ok := st.Node.(*gocuitree.Node)
	if !ok {
		return
	}
	t.log.V(4).Info("tree item clicked", "path", strings.Join(st.Path, "/"), "trigger", st.Event.Trigger, "ignore", st.Event.Ignore)
	if st.Event.Trigger == treeitem.TriggerExpand && !st.Event.Ignores(treeitem.IgnoreExpand) {
		t.toggle(node)
	}
	if !st.Event.Ignores(treeitem.IgnoreActive) && t.tree.Activate(node) && t.selected != nil {
		t.selected(node)
	}
}

func (t *TreeView) handleChange(st treeitem.EventState) {
	node, ok := st.Node.(*gocuitree.Node)
	if !ok {
		return
	}
	node.Checked = !node.Checked
	node.Indeterminate = false
}

// toggle flips a branch open or closed. Leaves never open.
func (t *TreeView) toggle(node *gocuitree.Node) {
	if node.IsLeaf() {
		return
	}
	node.Expanded = !node.Expanded
	if node.Expanded && t.expand != nil {
		t.expand(node)
	}
}

// Click dispatches a click at column x of visible row line.
func (t *TreeView) Click(line, x int) bool {
	if line < 0 || line >= len(t.rows) {
		return false
	}
	var dr *drawnRow
	t.tree.ProcessLineEvent(line, func(n *gocuitree.Node) {
		for i := range t.rows {
			if t.rows[i].node == n {
				dr = &t.rows[i]
			}
		}
	})
	if dr == nil {
		return false
	}
	t.cursor = line
	return t.dispatch(dr.row, dr.row.ElementAt(x))
}

func (t *TreeView) dispatch(row Row, target *treeitem.Element) bool {
	for _, el := range row.Element.PathTo(target) {
		if el.Ripple != nil {
			el.Ripple.Trigger()
			if t.redraw != nil {
				time.AfterFunc(t.painter.RippleDuration, t.redraw)
			}
		}
	}
	return treeitem.Dispatch(row.Element, target, treeitem.Event{Type: treeitem.EventClick})
}

// clickPart dispatches a click on the first element of the cursor row
// carrying class, falling back to the label.
func (t *TreeView) clickPart(class string) {
	if t.cursor >= len(t.rows) {
		return
	}
	row := t.rows[t.cursor].row
	target := row.Element.FindClass(class)
	if target == nil {
		target = row.Element.FindClass(t.scope.Classes.Label)
	}
	if target == nil {
		target = row.Element
	}
	t.dispatch(row, target)
}

func (t *TreeView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if len(t.rows) == 0 {
			return
		}
		cls := t.scope.Classes
		node := t.rows[t.cursor].node
		switch event.Key() {
		case tcell.KeyUp:
			t.cursor = max(t.cursor-1, 0)
		case tcell.KeyDown:
			t.cursor = min(t.cursor+1, len(t.rows)-1)
		case tcell.KeyRight:
			if !node.Expanded {
				t.clickPart(cls.TreeIcon)
			}
		case tcell.KeyLeft:
			if node.Expanded {
				t.clickPart(cls.TreeIcon)
			}
		case tcell.KeyEnter:
			t.clickPart(cls.Label)
		case tcell.KeyRune:
			if event.Rune() == ' ' {
				t.clickPart(cls.Checkbox)
			}
		}
	})
}

func (t *TreeView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !t.InRect(x, y) {
			return false, nil
		}
		if action != tview.MouseLeftClick {
			return false, nil
		}
		setFocus(t)
		rx, ry, _, _ := t.GetInnerRect()
		t.Click(y-ry+t.offset, x-rx)
		return true, nil
	})
}

// RenderText renders the visible rows of tree as plain text.
func RenderText(tree *gocuitree.Tree, scope *treeitem.Scope, painter *Painter) string {
	lines := make([]string, 0)
	for _, n := range tree.Visible() {
		lines = append(lines, painter.Paint(n, treeitem.Render(n, scope, treeitem.Props{})).String())
	}
	return strings.Join(lines, "\n")
}
