package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestSelection_StartExtendStop(t *testing.T) {
	var s Selection
	if s.HasSelection() || s.Active() {
		t.Fatal("zero Selection should be empty")
	}

	s.Start(5, 2, Rect{X: 4, Y: 1, W: 10, H: 5})
	if !s.Active() || s.HasSelection() {
		t.Error("a fresh selection is active but covers no cells")
	}

	s.Extend(8, 2)
	if !s.HasSelection() {
		t.Error("extending should select cells")
	}

	s.Stop()
	s.Extend(12, 4)
	if s.endCol != 8 || s.endLine != 2 {
		t.Errorf("stopped selection moved to (%d,%d)", s.endCol, s.endLine)
	}
	if !s.HasSelection() {
		t.Error("Stop should keep the selection")
	}

	s.Clear()
	if s.HasSelection() || s.Active() {
		t.Error("Clear should drop the selection")
	}
}

func TestSelection_ExtendClampsToArea(t *testing.T) {
	var s Selection
	s.Start(5, 2, Rect{X: 4, Y: 1, W: 10, H: 5})

	s.Extend(100, 100)
	if s.endCol != 14 || s.endLine != 5 {
		t.Errorf("end = (%d,%d), want (14,5)", s.endCol, s.endLine)
	}
	s.Extend(-3, -3)
	if s.endCol != 4 || s.endLine != 1 {
		t.Errorf("end = (%d,%d), want (4,1)", s.endCol, s.endLine)
	}
}

func TestSelection_Spans(t *testing.T) {
	area := Rect{X: 10, Y: 0, W: 20, H: 10}
	tests := []struct {
		name       string
		start, end [2]int
		want       []span
	}{
		{"single row", [2]int{12, 3}, [2]int{16, 3}, []span{{3, 12, 16}}},
		{"backward row", [2]int{16, 3}, [2]int{12, 3}, []span{{3, 12, 16}}},
		{"multi row", [2]int{15, 2}, [2]int{12, 4}, []span{{2, 15, 30}, {3, 10, 30}, {4, 10, 12}}},
		{"backward multi row", [2]int{12, 4}, [2]int{15, 2}, []span{{2, 15, 30}, {3, 10, 30}, {4, 10, 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			s.Start(tt.start[0], tt.start[1], area)
			s.Extend(tt.end[0], tt.end[1])
			if got := s.spans(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("spans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderer_TextAreas(t *testing.T) {
	dock, ctx := newTestDock(t)
	r := NewRenderer(ctx)
	r.Render(dock.Snapshot(), testWidth, testHeight)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"preview", 80, 20, true},
		{"inspector body", 130, 3, true},
		{"inspector toggle", 120, 1, false},
		{"left grip", 40, 20, false},
		{"right grip", 119, 20, false},
		{"section body", 10, 5, false},
		{"header", 80, 0, false},
	}
	for _, tt := range tests {
		if _, ok := r.TextAreaAt(tt.x, tt.y); ok != tt.want {
			t.Errorf("%s: TextAreaAt(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, ok, tt.want)
		}
	}
}

func TestRenderer_SelectedInspectorText(t *testing.T) {
	dock, ctx := newTestDock(t)
	r := NewRenderer(ctx)
	r.Render(dock.Snapshot(), testWidth, testHeight)

	area, ok := r.TextAreaAt(120, 2)
	if !ok {
		t.Fatal("inspector readouts should be selectable")
	}
	sel := r.Selection()
	sel.Start(120, 2, area)
	sel.Extend(testWidth, 2)
	r.Render(dock.Snapshot(), testWidth, testHeight)

	got := r.SelectedText()
	if !strings.HasPrefix(got, "Components") || !strings.HasSuffix(got, "260px") {
		t.Errorf("SelectedText() = %q, want the components readout", got)
	}
}
