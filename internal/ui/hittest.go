package ui

import (
	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/layout"
)

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TargetKind identifies what a click on a target does.
type TargetKind int

const (
	// TargetGrip starts a drag
	TargetGrip TargetKind = iota
	// TargetToggle collapses or restores a panel
	TargetToggle
)

// Target is an interactive region recorded during the last render.
type Target struct {
	Kind   TargetKind
	Anchor string
	Rect   Rect
	Grip   layout.Grip
}

// Axis returns the resize axis of the target's grip.
func (t Target) Axis() drag.Axis {
	if t.Grip.Orientation == layout.OrientationHorizontal {
		return drag.AxisY
	}
	return drag.AxisX
}

// HitTest returns the target under cell (x, y) from the last render.
// Toggles win over the grips they overlap.
func (r *Renderer) HitTest(x, y int) (Target, bool) {
	var hit Target
	found := false
	for _, t := range r.targets {
		if !t.Rect.Contains(x, y) {
			continue
		}
		if t.Kind == TargetToggle {
			return t, true
		}
		if !found {
			hit, found = t, true
		}
	}
	return hit, found
}

// Targets returns a copy of the targets recorded during the last render.
func (r *Renderer) Targets() []Target {
	return append([]Target(nil), r.targets...)
}

func (r *Renderer) addTarget(kind TargetKind, grip layout.Grip, rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	r.targets = append(r.targets, Target{Kind: kind, Anchor: grip.Anchor, Rect: rect, Grip: grip})
}

// TextAreaAt returns the selectable text area under cell (x, y) from the
// last render: the preview or the expanded inspector body.
func (r *Renderer) TextAreaAt(x, y int) (Rect, bool) {
	if _, ok := r.HitTest(x, y); ok {
		return Rect{}, false
	}
	for _, a := range r.textAreas {
		if a.Contains(x, y) {
			return a, true
		}
	}
	return Rect{}, false
}

func (r *Renderer) addTextArea(rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	r.textAreas = append(r.textAreas, rect)
}
