// Package layout composes the dock's panels into one immutable snapshot for
// the renderer.
//
// A Dock owns three stacked section panels in the left column, the catalog
// column itself and the inspector column on the right. Snapshot re-reads
// every panel and never keeps a copy of their state. Grip handlers are
// created once in NewDock, so consecutive snapshots carry the same func
// values.
package layout

import (
	"log/slog"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/panel"
)

// SectionSpec declares one stacked section.
type SectionSpec struct {
	ID            string
	Title         string
	DefaultHeight float64
	// HideGrip builds the section without a resize grip below it. It can
	// still be collapsed and restored from its header.
	HideGrip bool
}

// DefaultSections are the sections of the catalog column, top to bottom.
var DefaultSections = []SectionSpec{
	{ID: "components", Title: "Components", DefaultHeight: 260},
	{ID: "layers", Title: "Layers", DefaultHeight: 180},
	{ID: "assets", Title: "Assets", DefaultHeight: 180},
}

// StorageKeys lists every key a dock with the given sections persists to.
func StorageKeys(sections []SectionSpec) []string {
	keys := []string{panel.LeftKey, panel.RightKey}
	for _, s := range sections {
		keys = append(keys, panel.SectionKey(s.ID))
	}
	return keys
}

// Measurer reports live container dimensions in pixels. Values <= 0 mean
// not measured yet.
type Measurer interface {
	// ViewportWidth is the width of the whole dock.
	ViewportWidth() float64
	// ColumnHeight is the height available to the stacked sections.
	ColumnHeight() float64
}

// Option configures a Dock.
type Option func(*Dock)

// WithSections replaces DefaultSections.
func WithSections(sections []SectionSpec) Option {
	return func(d *Dock) {
		if len(sections) > 0 {
			d.specs = append([]SectionSpec(nil), sections...)
		}
	}
}

type entry struct {
	spec  SectionSpec
	panel *panel.Panel
	grip  Grip
}

// Dock aggregates the panels of one builder surface.
type Dock struct {
	specs    []SectionSpec
	sections map[string]*entry
	order    []string

	left, right         *panel.Panel
	leftGrip, rightGrip Grip

	anchors map[string]string
	log     *slog.Logger
}

// NewDock builds every panel, loading its persisted state from deps.Store.
func NewDock(deps panel.Deps, m Measurer, opts ...Option) *Dock {
	d := &Dock{
		specs:    DefaultSections,
		sections: make(map[string]*entry),
		log:      logger.ComponentLogger("layout"),
	}
	for _, opt := range opts {
		opt(d)
	}

	columnHeight := panel.Measure(m.ColumnHeight)
	viewport := panel.Measure(m.ViewportWidth)

	for _, spec := range d.specs {
		p := panel.NewSection(spec.ID, spec.Title, spec.DefaultHeight, columnHeight, deps)
		d.sections[spec.ID] = &entry{
			spec:  spec,
			panel: p,
			grip:  newGrip(p, SectionGripAnchor(spec.ID), "Resize "+spec.Title),
		}
		d.order = append(d.order, spec.ID)
	}

	d.left = panel.NewLeftColumn(viewport, deps)
	d.leftGrip = newGrip(d.left, AnchorLeftGrip, d.left.Config().Label)

	d.right = panel.NewRightColumn(viewport, deps)
	d.rightGrip = newGrip(d.right, AnchorRightGrip, d.right.Config().Label)

	d.anchors = buildAnchors(d.order)

	d.log.Debug("Dock created", "sections", len(d.order))
	return d
}

func newGrip(p *panel.Panel, anchor, label string) Grip {
	cfg := p.Config()
	g := Grip{
		Role:          RoleSeparator,
		Orientation:   orientationFor(cfg.Axis),
		Label:         label,
		Anchor:        anchor,
		OnPointerDown: p.BeginDrag,
		OnTouchStart:  p.BeginDrag,
		OnKeyDown:     p.HandleKey,
	}
	if cfg.Collapsible {
		g.OnToggle = func() { p.ToggleCollapse() }
	}
	return g
}

// orientationFor maps a resize axis to the separator orientation: a grip
// that resizes along y lies horizontally.
func orientationFor(axis drag.Axis) Orientation {
	if axis == drag.AxisY {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// Snapshot returns the current bindings. The returned maps and slices are
// fresh copies the caller may keep.
func (d *Dock) Snapshot() Bindings {
	b := Bindings{
		Anchors:    make(map[string]string, len(d.anchors)),
		SectionIDs: append([]string(nil), d.order...),
		Sections:   make(map[string]SectionBinding, len(d.order)),
		Left:       columnBinding(d.left, AnchorLeftPanel, "Catalog", d.leftGrip),
		Right:      columnBinding(d.right, AnchorRightPanel, "Inspector", d.rightGrip),
	}
	for k, v := range d.anchors {
		b.Anchors[k] = v
	}
	for _, id := range d.order {
		e := d.sections[id]
		g := e.panel.Geometry()
		b.Sections[id] = SectionBinding{
			ID:                 id,
			Title:              e.spec.Title,
			Anchor:             SectionAnchor(id),
			ContentAnchor:      SectionContentAnchor(id),
			Height:             g.Size,
			Collapsed:          g.Collapsed,
			SuppressTransition: g.Dragging,
			Toggle:             newToggle(e.spec.Title, SectionContentAnchor(id), g.Collapsed),
			GripVisible:        !e.spec.HideGrip,
			Grip:               e.grip,
		}
	}
	return b
}

func columnBinding(p *panel.Panel, anchor, title string, grip Grip) ColumnBinding {
	g := p.Geometry()
	c := ColumnBinding{
		Anchor:             anchor,
		Width:              g.Size,
		Collapsed:          g.Collapsed,
		Collapsible:        p.Config().Collapsible,
		SuppressTransition: g.Dragging,
		Grip:               grip,
	}
	if c.Collapsible {
		c.Toggle = newToggle(title, anchor, g.Collapsed)
	}
	return c
}

// Dragging reports whether any panel has a live drag session.
func (d *Dock) Dragging() bool {
	if d.left.Dragging() || d.right.Dragging() {
		return true
	}
	for _, e := range d.sections {
		if e.panel.Dragging() {
			return true
		}
	}
	return false
}

// Close stops every live drag session. The dock stays usable afterwards.
func (d *Dock) Close() {
	for _, id := range d.order {
		d.sections[id].panel.EndDrag()
	}
	d.left.EndDrag()
	d.right.EndDrag()
	d.log.Debug("Dock closed")
}
