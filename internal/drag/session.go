package drag

import (
	"sync"

	"github.com/google/uuid"
	"github.com/zhubert/dock/internal/logger"
)

// Session is one continuous press-move-release interaction.
// It exists only while its listeners are attached to the Window.
type Session struct {
	id      string // uuid, for correlating log lines
	axis    Axis
	invert  bool
	last    float64
	pending float64
	onDelta func(float64)

	window      *Window
	sched       Scheduler
	cancelFrame func()
	attached    []attachment

	stopOnce sync.Once
	stopped  bool
	onStop   func()
}

// Active reports whether the session still receives events.
func (s *Session) Active() bool {
	return !s.stopped
}

func (s *Session) move(p Point) {
	if s.stopped {
		return
	}
	cur := p.On(s.axis)
	delta := cur - s.last
	if s.invert {
		delta = -delta
	}
	s.last = cur
	if delta == 0 {
		return
	}
	s.pending += delta
	if s.cancelFrame == nil {
		s.cancelFrame = s.sched.Request(s.commit)
	}
}

// commit applies the deltas accumulated since the last frame as one update.
func (s *Session) commit() {
	s.cancelFrame = nil
	if s.stopped {
		return
	}
	delta := s.pending
	s.pending = 0
	if delta != 0 {
		s.onDelta(delta)
	}
}

// Stop detaches the session. Only the first call has any effect; a delta
// still waiting for its frame is dropped.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.stopped = true
		if s.cancelFrame != nil {
			s.cancelFrame()
			s.cancelFrame = nil
		}
		s.pending = 0

		for _, a := range s.attached {
			s.window.RemoveListener(a.kind, a.id)
		}
		s.attached = nil
		s.window.UnlockSelection()

		logger.ComponentLogger("drag").Debug("Drag session ended", "session", s.id, "axis", s.axis.String())
		if s.onStop != nil {
			s.onStop()
		}
	})
}

type attachment struct {
	kind EventKind
	id   ListenerID
}

func (s *Session) attach(kind EventKind, fn Listener) {
	s.attached = append(s.attached, attachment{kind: kind, id: s.window.AddListener(kind, fn)})
}

// Controller owns at most one Session for a single grip.
type Controller struct {
	window  *Window
	sched   Scheduler
	axis    Axis
	invert  bool
	session *Session
}

// NewController creates a controller for a grip resizing along axis. With
// invert set, moving toward lower coordinates yields positive deltas.
func NewController(w *Window, sched Scheduler, axis Axis, invert bool) *Controller {
	return &Controller{window: w, sched: sched, axis: axis, invert: invert}
}

// Begin starts a session at initial (a coordinate along the controller's
// axis). Any session still running for this controller is stopped first.
func (c *Controller) Begin(initial float64, onDelta func(float64)) *Session {
	c.Stop()

	s := &Session{
		id:      uuid.New().String(),
		axis:    c.axis,
		invert:  c.invert,
		last:    initial,
		onDelta: onDelta,
		window:  c.window,
		sched:   c.sched,
	}
	s.onStop = func() {
		if c.session == s {
			c.session = nil
		}
	}

	c.window.LockSelection()
	release := func(Point) { s.Stop() }
	s.attach(PointerMove, s.move)
	s.attach(TouchMove, s.move)
	s.attach(PointerUp, release)
	s.attach(TouchEnd, release)

	c.session = s
	logger.ComponentLogger("drag").Debug("Drag session started",
		"session", s.id,
		"axis", c.axis.String(),
		"invert", c.invert,
		"start", initial,
	)
	return s
}

// Stop ends the current session, if any.
func (c *Controller) Stop() {
	if c.session != nil {
		c.session.Stop()
	}
}

// Dragging reports whether a session is live.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Axis returns the controller's axis.
func (c *Controller) Axis() Axis {
	return c.axis
}
