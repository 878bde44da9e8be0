package treeitem

import "strings"

// Marker attributes read by the tree's interaction policy.
const (
	AttrTrigger = "trigger"
	AttrIgnore  = "ignore"

	TriggerExpand = "expand"
	IgnoreActive  = "active"
	IgnoreExpand  = "expand"
)

const (
	EventClick  = "click"
	EventChange = "change"
)

// Event is the originating pointer or change signal.
type Event struct {
	Type   string
	X, Y   int
	Target *Element
	// Trigger and Ignore are collected from the marker attributes between the
	// target and the row.
	Trigger string
	Ignore  []string
	// Source is the raw event of the host toolkit, if any.
	Source any
}

// Ignores reports whether the event passed through a region that opts out of
// the named behavior.
func (e Event) Ignores(what string) bool {
	for _, i := range e.Ignore {
		if i == what {
			return true
		}
	}
	return false
}

// EventState is the payload delivered to click and change callbacks. Path is
// only set for clicks.
type EventState struct {
	Event Event
	Node  Node
	Path  []string
}

// Props are the per-row callbacks. Both are optional.
type Props struct {
	OnClick  func(EventState)
	OnChange func(EventState)
}

// Dispatch delivers ev, aimed at target, to the fragment rooted at root. A
// click on an element with a change handler fires the change first; the click
// then bubbles from the target up to root carrying the collected markers. It
// returns false when target is not part of the fragment.
func Dispatch(root, target *Element, ev Event) bool {
	chain := root.PathTo(target)
	if chain == nil {
		return false
	}
	ev.Target = target
	for i := len(chain) - 1; i >= 0; i-- {
		el := chain[i]
		if v, ok := el.Attr(AttrTrigger); ok && ev.Trigger == "" {
			ev.Trigger = v
		}
		if v, ok := el.Attr(AttrIgnore); ok {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" && !ev.Ignores(part) {
					ev.Ignore = append(ev.Ignore, part)
				}
			}
		}
	}

	if ev.Type == "" {
		ev.Type = EventClick
	}
	if ev.Type == EventClick {
		for i := len(chain) - 1; i >= 0; i-- {
			if h := chain[i].OnChange; h != nil {
				if !changeDisabled(chain[i]) {
					h(Event{Type: EventChange, Target: target, Source: ev.Source})
				}
				break
			}
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if ev.Type == EventChange {
			if h := chain[i].OnChange; h != nil {
				if !changeDisabled(chain[i]) {
					h(ev)
				}
				return true
			}
			continue
		}
		if h := chain[i].OnClick; h != nil {
			h(ev)
		}
	}
	return true
}

// changeDisabled reports whether el is a control whose change is suppressed.
func changeDisabled(el *Element) bool {
	v, _ := el.Attr("disabled")
	return v == "true"
}

func (it *Item) handleClick(ev Event) {
	if it.props.OnClick == nil {
		return
	}
	it.props.OnClick(EventState{Event: ev, Node: it.node, Path: it.node.Path()})
}

func (it *Item) handleChange(ev Event) {
	if it.props.OnChange == nil {
		return
	}
	ev.Type = EventChange
	it.props.OnChange(EventState{Event: ev, Node: it.node})
}
