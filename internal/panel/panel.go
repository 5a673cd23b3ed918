// Package panel implements the resize and collapse state machine shared by
// every surface of the dock.
//
// A Panel is either Expanded(size) or Collapsed. Section panels, the catalog
// column and the inspector column are all Panels; they differ only in their
// Config: axis, limits, whether they can collapse, and how they persist.
package panel

import (
	"math"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/geometry"
	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/store"
)

// Measure reports a live container dimension in pixels. A value <= 0 means
// the dimension is not known yet.
type Measure func() float64

// Config parameterizes a Panel.
type Config struct {
	Key   string // storage key
	Label string // accessible grip label
	Axis  drag.Axis
	// Invert flips drag and arrow-key deltas, for grips on the leading edge
	// of the panel they resize.
	Invert bool

	Collapsible   bool
	CollapsedSize float64 // size while collapsed; also the drag floor
	RestoreFloor  float64 // smallest size an un-collapse restores to
	MinSize       float64 // floor for panels that cannot collapse
	DefaultSize   float64

	FineStep   float64
	CoarseStep float64

	// Max returns the current upper bound. It is called on every clamp and
	// never cached. Nil or a non-positive result means unbounded.
	Max Measure

	Codec Codec
}

// Deps are the collaborators a Panel needs.
type Deps struct {
	Store  *store.Adapter
	Window *drag.Window
	Frames drag.Scheduler
}

// Geometry is a read-only view of a panel for renderers.
type Geometry struct {
	Size      float64
	Collapsed bool
	Dragging  bool
}

// Direction is the sign of a keyboard step.
type Direction int

const (
	Shrink Direction = -1
	Grow   Direction = 1
)

// Panel is one resizable surface.
type Panel struct {
	cfg       Config
	size      float64
	collapsed bool
	// memory is the last expanded size, used when un-collapsing.
	memory float64

	store *store.Adapter
	drag  *drag.Controller
}

// New creates a panel and loads its persisted state. Invalid or missing
// state falls back to the configured default.
func New(cfg Config, deps Deps) *Panel {
	if cfg.FineStep == 0 {
		cfg.FineStep = geometry.FineStep
	}
	if cfg.CoarseStep == 0 {
		cfg.CoarseStep = geometry.CoarseStep
	}

	p := &Panel{
		cfg:    cfg,
		store:  deps.Store,
		drag:   drag.NewController(deps.Window, deps.Frames, cfg.Axis, cfg.Invert),
		memory: cfg.DefaultSize,
	}

	loaded := cfg.Codec.Load(deps.Store, cfg.Key, State{Size: cfg.DefaultSize})
	p.adopt(loaded)
	return p
}

// adopt installs a loaded state, forcing it to satisfy the panel invariants.
func (p *Panel) adopt(s State) {
	if p.cfg.Collapsible && s.Collapsed {
		p.size = p.cfg.CollapsedSize
		p.collapsed = true
		// The pre-collapse size is not persisted; restore to the default.
		p.memory = p.cfg.DefaultSize
		return
	}
	p.collapsed = false
	p.size = geometry.Clamp(s.Size, p.restingFloor(), p.upperBound())
}

// restingFloor is the smallest size an expanded panel settles at outside
// of a drag.
func (p *Panel) restingFloor() float64 {
	if p.cfg.Collapsible {
		return p.cfg.RestoreFloor
	}
	return p.cfg.MinSize
}

// lowerBound is the clamp floor for Resize.
func (p *Panel) lowerBound() float64 {
	if p.cfg.Collapsible {
		return p.cfg.CollapsedSize
	}
	return p.cfg.MinSize
}

// upperBound recomputes the dynamic maximum.
func (p *Panel) upperBound() float64 {
	if p.cfg.Max == nil {
		return math.Inf(1)
	}
	if m := p.cfg.Max(); m > 0 {
		return m
	}
	return math.Inf(1)
}

// Resize grows the panel by delta (negative shrinks). It is a no-op while
// collapsed. A collapsible panel that reaches its collapsed size collapses.
// It returns true if the state changed.
func (p *Panel) Resize(delta float64) bool {
	if p.collapsed || delta == 0 || !geometry.Finite(delta) {
		return false
	}

	next := geometry.Clamp(p.size+delta, p.lowerBound(), p.upperBound())
	if p.cfg.Collapsible && next <= p.cfg.CollapsedSize {
		p.memory = p.size
		p.size = p.cfg.CollapsedSize
		p.collapsed = true
		logger.ComponentLogger("panel").Debug("Panel collapsed by resize", "key", p.cfg.Key, "remembered", p.memory)
		p.persist()
		return true
	}
	if next == p.size {
		return false
	}
	p.size = next
	p.persist()
	return true
}

// ToggleCollapse collapses an expanded panel or restores a collapsed one.
// Panels that cannot collapse ignore it and return false.
func (p *Panel) ToggleCollapse() bool {
	if !p.cfg.Collapsible {
		return false
	}

	if p.collapsed {
		restored := math.Max(p.memory, p.cfg.RestoreFloor)
		p.size = geometry.Clamp(restored, p.cfg.RestoreFloor, p.upperBound())
		p.collapsed = false
	} else {
		p.memory = p.size
		p.size = p.cfg.CollapsedSize
		p.collapsed = true
	}

	logger.ComponentLogger("panel").Debug("Panel toggled",
		"key", p.cfg.Key,
		"collapsed", p.collapsed,
		"size", p.size,
	)
	p.persist()
	return true
}

// KeyStep applies one keyboard step: FineStep, or CoarseStep when coarse.
func (p *Panel) KeyStep(dir Direction, coarse bool) bool {
	step := p.cfg.FineStep
	if coarse {
		step = p.cfg.CoarseStep
	}
	return p.Resize(float64(dir) * step)
}

// HandleKey maps a key press on the panel's grip to an action. Arrow keys
// along the panel's axis step it (shift for a coarse step), home and end
// jump to the bounds, and enter or space toggle collapse. It returns true
// if the key was consumed.
func (p *Panel) HandleKey(key string) bool {
	shrink, grow := keys.Left, keys.Right
	shrinkCoarse, growCoarse := keys.ShiftLeft, keys.ShiftRight
	if p.cfg.Axis == drag.AxisY {
		shrink, grow = keys.Up, keys.Down
		shrinkCoarse, growCoarse = keys.ShiftUp, keys.ShiftDown
	}
	if p.cfg.Invert {
		shrink, grow = grow, shrink
		shrinkCoarse, growCoarse = growCoarse, shrinkCoarse
	}

	switch key {
	case shrink:
		p.KeyStep(Shrink, false)
	case grow:
		p.KeyStep(Grow, false)
	case shrinkCoarse:
		p.KeyStep(Shrink, true)
	case growCoarse:
		p.KeyStep(Grow, true)
	case keys.Home:
		if !p.collapsed {
			p.Resize(p.lowerBound() - p.size)
		}
	case keys.End:
		if !p.collapsed {
			if hi := p.upperBound(); !math.IsInf(hi, 1) {
				p.Resize(hi - p.size)
			}
		}
	case keys.Enter, keys.Space:
		if !p.cfg.Collapsible {
			return false
		}
		p.ToggleCollapse()
	default:
		return false
	}
	return true
}

// BeginDrag starts a drag session at coord along the panel's axis.
func (p *Panel) BeginDrag(coord float64) {
	p.drag.Begin(coord, func(delta float64) { p.Resize(delta) })
}

// EndDrag stops the live drag session, if any.
func (p *Panel) EndDrag() {
	p.drag.Stop()
}

// Dragging reports whether a drag session is live.
func (p *Panel) Dragging() bool {
	return p.drag.Dragging()
}

// Geometry returns the current state.
func (p *Panel) Geometry() Geometry {
	return Geometry{Size: p.size, Collapsed: p.collapsed, Dragging: p.drag.Dragging()}
}

// Config returns the panel configuration.
func (p *Panel) Config() Config {
	return p.cfg
}

// Key returns the storage key.
func (p *Panel) Key() string {
	return p.cfg.Key
}

func (p *Panel) persist() {
	p.cfg.Codec.Save(p.store, p.cfg.Key, State{Size: p.size, Collapsed: p.collapsed})
}
