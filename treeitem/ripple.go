package treeitem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ripple attaches a visual feedback effect to an element.
type Ripple interface {
	Attach(el *Element) RippleHandle
}

// RippleHandle is an attached effect. It must be released when the element
// it was attached to goes away or changes its interactive role.
type RippleHandle interface {
	ID() uuid.UUID
	Trigger()
	// Active reports whether the effect triggered within the last d.
	Active(now time.Time, d time.Duration) bool
	Release()
}

// RippleSet hands out ripple handles and tracks the ones still attached.
type RippleSet struct {
	mu     sync.Mutex
	active map[uuid.UUID]*rippleHandle
	now    func() time.Time
}

func NewRippleSet() *RippleSet {
	return &RippleSet{active: map[uuid.UUID]*rippleHandle{}, now: time.Now}
}

func (r *RippleSet) Attach(el *Element) RippleHandle {
	h := &rippleHandle{id: uuid.New(), set: r}
	r.mu.Lock()
	r.active[h.id] = h
	r.mu.Unlock()
	return h
}

// Len returns the number of attached handles.
func (r *RippleSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

type rippleHandle struct {
	id  uuid.UUID
	set *RippleSet

	mu      sync.Mutex
	firedAt time.Time
}

func (h *rippleHandle) ID() uuid.UUID { return h.id }

func (h *rippleHandle) Trigger() {
	h.mu.Lock()
	h.firedAt = h.set.now()
	h.mu.Unlock()
}

func (h *rippleHandle) Active(now time.Time, d time.Duration) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.firedAt.IsZero() && now.Sub(h.firedAt) < d
}

func (h *rippleHandle) Release() {
	h.set.mu.Lock()
	delete(h.set.active, h.id)
	h.set.mu.Unlock()
}
