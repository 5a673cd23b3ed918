// Package drag turns a press on a resize grip into a stream of deltas.
//
// A Window stands in for the global event target: the host feeds it every
// pointer and touch event, and a live Session listens on it for moves and
// releases. Deltas are batched per frame through a Scheduler so several
// move events within one frame produce a single update.
package drag

import "sync"

// Axis is the direction a grip resizes along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Point is a position in host coordinates.
type Point struct {
	X, Y float64
}

// On returns the coordinate of p along axis.
func (p Point) On(axis Axis) float64 {
	if axis == AxisY {
		return p.Y
	}
	return p.X
}

// EventKind identifies a global pointer or touch event.
type EventKind int

const (
	PointerMove EventKind = iota
	TouchMove
	PointerUp
	TouchEnd
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointermove"
	case TouchMove:
		return "touchmove"
	case PointerUp:
		return "pointerup"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Listener handles one dispatched event.
type Listener func(Point)

// ListenerID identifies a registration so it can be removed.
type ListenerID int

type registration struct {
	id ListenerID
	fn Listener
}

// Window is the global event target that drag sessions attach to.
// It also owns the selection lock: text selection is disabled while any
// session holds it.
type Window struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[EventKind][]registration
	locks     int
	removed   int
}

// NewWindow creates an empty event target.
func NewWindow() *Window {
	return &Window{listeners: make(map[EventKind][]registration)}
}

// AddListener registers fn for kind.
func (w *Window) AddListener(kind EventKind, fn Listener) ListenerID {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	w.listeners[kind] = append(w.listeners[kind], registration{id: w.nextID, fn: fn})
	return w.nextID
}

// RemoveListener unregisters id. It returns false if id was not registered.
func (w *Window) RemoveListener(kind EventKind, id ListenerID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	regs := w.listeners[kind]
	for i, r := range regs {
		if r.id == id {
			w.listeners[kind] = append(regs[:i:i], regs[i+1:]...)
			w.removed++
			return true
		}
	}
	return false
}

// Dispatch delivers p to every listener registered for kind, in registration
// order. Listeners may add or remove listeners while being called; a listener
// removed by an earlier one in the same dispatch is skipped.
// It returns the number of listeners called.
func (w *Window) Dispatch(kind EventKind, p Point) int {
	w.mu.Lock()
	regs := append([]registration(nil), w.listeners[kind]...)
	w.mu.Unlock()

	called := 0
	for _, r := range regs {
		if !w.registered(kind, r.id) {
			continue
		}
		r.fn(p)
		called++
	}
	return called
}

func (w *Window) registered(kind EventKind, id ListenerID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, r := range w.listeners[kind] {
		if r.id == id {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered listeners of every kind.
func (w *Window) ListenerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, regs := range w.listeners {
		n += len(regs)
	}
	return n
}

// LockSelection disables text selection until a matching UnlockSelection.
func (w *Window) LockSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.locks++
}

// UnlockSelection releases one LockSelection.
func (w *Window) UnlockSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locks > 0 {
		w.locks--
	}
}

// SelectionEnabled reports whether the host may start a text selection.
func (w *Window) SelectionEnabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.locks == 0
}
