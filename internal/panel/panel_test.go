package panel

import (
	"encoding/json"
	"testing"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/geometry"
	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/store"
)

type testEnv struct {
	backend *store.MemoryBackend
	window  *drag.Window
	frames  *drag.FrameQueue
	reports []store.Operation
	deps    Deps
}

func newTestEnv() *testEnv {
	env := &testEnv{
		backend: store.NewMemoryBackend(),
		window:  drag.NewWindow(),
		frames:  drag.NewFrameQueue(),
	}
	adapter := store.New(env.backend, store.WithReporter(func(op store.Operation, key string, err error) {
		env.reports = append(env.reports, op)
	}))
	env.deps = Deps{Store: adapter, Window: env.window, Frames: env.frames}
	return env
}

func (e *testEnv) stored(t *testing.T, key string) string {
	t.Helper()
	v, ok, err := e.backend.Get(key)
	if err != nil || !ok {
		t.Fatalf("nothing stored under %s (err %v)", key, err)
	}
	return string(v)
}

func fixed(v float64) Measure { return func() float64 { return v } }

func TestSection_ResizeClampsAndCollapses(t *testing.T) {
	const parent = 600.0 // dynamic max = 600 - 2*32 = 536
	tests := []struct {
		name          string
		delta         float64
		wantHeight    float64
		wantCollapsed bool
	}{
		{"grow", 40, 300, false},
		{"shrink", -60, 200, false},
		{"below restore floor stays expanded", -160, 100, false},
		{"to collapse height collapses", -228, 32, true},
		{"past collapse height collapses", -1000, 32, true},
		{"past dynamic max clamps", 1000, 536, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			p := NewSection("components", "Components", 260, fixed(parent), env.deps)

			p.Resize(tt.delta)

			g := p.Geometry()
			if g.Size != tt.wantHeight || g.Collapsed != tt.wantCollapsed {
				t.Errorf("Resize(%v) = %+v, want height %v collapsed %v", tt.delta, g, tt.wantHeight, tt.wantCollapsed)
			}
		})
	}
}

func TestSection_ResizeProperty(t *testing.T) {
	for h := 40.0; h <= 500; h += 37 {
		for d := -600.0; d <= 600; d += 53 {
			env := newTestEnv()
			p := NewSection("layers", "Layers", 180, fixed(600), env.deps)
			p.size = h // start anywhere on the expanded range

			p.Resize(d)

			want := geometry.Clamp(h+d, geometry.SectionCollapsedHeight, 536)
			g := p.Geometry()
			if g.Size != want {
				t.Fatalf("h=%v d=%v: height %v, want %v", h, d, g.Size, want)
			}
			if g.Size <= geometry.SectionCollapsedHeight && !g.Collapsed {
				t.Fatalf("h=%v d=%v: at collapse height but not collapsed", h, d)
			}
		}
	}
}

func TestSection_MaxIsRecomputedEveryCall(t *testing.T) {
	env := newTestEnv()
	parent := 600.0
	p := NewSection("assets", "Assets", 180, func() float64 { return parent }, env.deps)

	p.Resize(1000)
	if p.Geometry().Size != 536 {
		t.Fatalf("height = %v, want 536", p.Geometry().Size)
	}

	parent = 400
	p.Resize(8)
	if p.Geometry().Size != 336 {
		t.Errorf("height = %v, want 336 after the container shrank", p.Geometry().Size)
	}
}

func TestSection_UnknownParentIsUnbounded(t *testing.T) {
	env := newTestEnv()
	p := NewSection("assets", "Assets", 180, fixed(0), env.deps)

	p.Resize(5000)
	if p.Geometry().Size != 5180 {
		t.Errorf("height = %v, want 5180 with no known parent", p.Geometry().Size)
	}
}

func TestSection_TinyParentStaysBounded(t *testing.T) {
	for _, parent := range []float64{40, 64} {
		env := newTestEnv()
		p := NewSection("components", "Components", 260, fixed(parent), env.deps)

		p.Resize(1000)

		if g := p.Geometry(); g.Size != geometry.SectionCollapsedHeight || !g.Collapsed {
			t.Errorf("parent %v: Resize(1000) = %+v, want collapsed at 32", parent, g)
		}
	}
}

func TestPanel_LoadClampsToLiveMax(t *testing.T) {
	env := newTestEnv()
	env.backend.Set(LeftKey, []byte("900"))
	env.backend.Set(SectionKey("layers"), []byte(`{"height":700,"collapsed":false}`))

	left := NewLeftColumn(fixed(1000), env.deps)
	if got := left.Geometry().Size; got != 680 {
		t.Errorf("left width = %v, want clamped to 680", got)
	}

	section := NewSection("layers", "Layers", 180, fixed(600), env.deps)
	if got := section.Geometry().Size; got != 536 {
		t.Errorf("section height = %v, want clamped to 536", got)
	}
}

func TestSection_ToggleRoundTrip(t *testing.T) {
	env := newTestEnv()
	p := NewSection("components", "Components", 260, fixed(900), env.deps)

	p.ToggleCollapse()
	if g := p.Geometry(); g.Size != 32 || !g.Collapsed {
		t.Fatalf("after collapse = %+v, want 32 collapsed", g)
	}
	if got := env.stored(t, SectionKey("components")); got != `{"height":32,"collapsed":true}` {
		t.Errorf("stored = %s", got)
	}

	p.ToggleCollapse()
	if g := p.Geometry(); g.Size != 260 || g.Collapsed {
		t.Fatalf("after restore = %+v, want 260 expanded", g)
	}
	if got := env.stored(t, SectionKey("components")); got != `{"height":260,"collapsed":false}` {
		t.Errorf("stored = %s", got)
	}
}

func TestSection_RestoreFloorGuardsSmallMemory(t *testing.T) {
	env := newTestEnv()
	p := NewSection("layers", "Layers", 180, fixed(900), env.deps)

	p.Resize(-100) // 80: expanded below the restore floor
	p.ToggleCollapse()
	p.ToggleCollapse()

	if g := p.Geometry(); g.Size != geometry.SectionRestoreFloor || g.Collapsed {
		t.Errorf("restored = %+v, want restore floor %v", g, geometry.SectionRestoreFloor)
	}
}

func TestSection_DragCollapseRemembersPreviousHeight(t *testing.T) {
	env := newTestEnv()
	p := NewSection("layers", "Layers", 180, fixed(900), env.deps)

	p.Resize(-200)
	if !p.Geometry().Collapsed {
		t.Fatal("dragging below the floor should collapse")
	}
	if p.Resize(50) {
		t.Error("Resize should be a no-op while collapsed")
	}

	p.ToggleCollapse()
	if g := p.Geometry(); g.Size != 180 {
		t.Errorf("restored = %+v, want the pre-drag 180", g)
	}
}

func TestSection_KeyboardSteps(t *testing.T) {
	env := newTestEnv()
	p := NewSection("components", "Components", 260, fixed(900), env.deps)

	steps := []struct {
		key  string
		want float64
	}{
		{keys.Down, 268},
		{keys.ShiftDown, 292},
		{keys.Up, 284},
		{keys.ShiftUp, 260},
	}
	for _, s := range steps {
		if !p.HandleKey(s.key) {
			t.Fatalf("HandleKey(%q) not consumed", s.key)
		}
		if got := p.Geometry().Size; got != s.want {
			t.Errorf("after %q height = %v, want %v", s.key, got, s.want)
		}
	}

	if p.HandleKey(keys.Left) {
		t.Error("a vertical grip should ignore left")
	}

	p.HandleKey(keys.Enter)
	if !p.Geometry().Collapsed {
		t.Error("enter should collapse")
	}
	p.HandleKey(keys.Space)
	if p.Geometry().Collapsed || p.Geometry().Size != 260 {
		t.Errorf("space should restore, got %+v", p.Geometry())
	}
}

func TestSection_HomeAndEnd(t *testing.T) {
	env := newTestEnv()
	p := NewSection("components", "Components", 260, fixed(600), env.deps)

	p.HandleKey(keys.End)
	if got := p.Geometry().Size; got != 536 {
		t.Errorf("end: height = %v, want 536", got)
	}
	p.HandleKey(keys.Home)
	if !p.Geometry().Collapsed {
		t.Error("home should shrink to the collapse height and collapse")
	}
}

func TestSection_LoadNormalizesStoredState(t *testing.T) {
	tests := []struct {
		name          string
		stored        string
		wantHeight    float64
		wantCollapsed bool
		wantReports   int
	}{
		{"valid", `{"height":210,"collapsed":false}`, 210, false, 0},
		{"collapsed ignores stored height", `{"height":500,"collapsed":true}`, 32, true, 0},
		{"expanded below floor lifted", `{"height":50,"collapsed":false}`, 120, false, 0},
		{"missing field", `{"height":210}`, 260, false, 1},
		{"wrong type", `{"height":"tall","collapsed":false}`, 260, false, 1},
		{"negative", `{"height":-5,"collapsed":false}`, 260, false, 1},
		{"bare number", `210`, 260, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.backend.Set(SectionKey("components"), []byte(tt.stored))

			p := NewSection("components", "Components", 260, fixed(900), env.deps)

			g := p.Geometry()
			if g.Size != tt.wantHeight || g.Collapsed != tt.wantCollapsed {
				t.Errorf("loaded %+v, want height %v collapsed %v", g, tt.wantHeight, tt.wantCollapsed)
			}
			if len(env.reports) != tt.wantReports {
				t.Errorf("reports = %d, want %d", len(env.reports), tt.wantReports)
			}
		})
	}
}

func TestSection_RestoreAfterReloadUsesDefault(t *testing.T) {
	env := newTestEnv()
	env.backend.Set(SectionKey("assets"), []byte(`{"height":32,"collapsed":true}`))

	p := NewSection("assets", "Assets", 180, fixed(900), env.deps)
	p.ToggleCollapse()

	if g := p.Geometry(); g.Size != 180 || g.Collapsed {
		t.Errorf("restored = %+v, want default 180", g)
	}
}

func TestLeftColumn_DragScenario(t *testing.T) {
	env := newTestEnv()
	viewport := 1280.0
	p := NewLeftColumn(func() float64 { return viewport }, env.deps)

	if got := p.Geometry().Size; got != 320 {
		t.Fatalf("initial width = %v, want default 320", got)
	}

	p.BeginDrag(320)
	if !p.Geometry().Dragging {
		t.Error("Dragging should be set while a session is live")
	}
	env.window.Dispatch(drag.PointerMove, drag.Point{X: 330})
	env.window.Dispatch(drag.PointerMove, drag.Point{X: 350})
	env.window.Dispatch(drag.PointerMove, drag.Point{X: 345})
	env.frames.Flush()
	env.window.Dispatch(drag.PointerUp, drag.Point{X: 345})

	g := p.Geometry()
	if g.Size != 345 {
		t.Errorf("width = %v, want 345", g.Size)
	}
	if g.Dragging {
		t.Error("Dragging should clear on release")
	}
	if got := env.stored(t, LeftKey); got != "345" {
		t.Errorf("stored = %s, want bare 345", got)
	}
	if g.Size < geometry.LeftMinWidth || g.Size > viewport-geometry.LeftReserve {
		t.Errorf("width %v outside [160, %v]", g.Size, viewport-geometry.LeftReserve)
	}
}

func TestLeftColumn_Bounds(t *testing.T) {
	env := newTestEnv()
	viewport := 1000.0
	p := NewLeftColumn(func() float64 { return viewport }, env.deps)

	p.Resize(-1000)
	if got := p.Geometry().Size; got != geometry.LeftMinWidth {
		t.Errorf("width = %v, want min 160", got)
	}
	if p.Geometry().Collapsed {
		t.Error("the catalog column never collapses")
	}
	if p.ToggleCollapse() {
		t.Error("ToggleCollapse should be refused")
	}
	if p.HandleKey(keys.Enter) {
		t.Error("enter should not be consumed by a non-collapsible grip")
	}

	p.Resize(1000)
	if got := p.Geometry().Size; got != 680 {
		t.Errorf("width = %v, want viewport-reserve 680", got)
	}

	viewport = 300 // narrower than min + reserve
	p.Resize(-8)
	if got := p.Geometry().Size; got != geometry.LeftMinWidth {
		t.Errorf("width = %v, want min when viewport is tiny", got)
	}
}

func TestLeftColumn_KeyboardUsesHorizontalArrows(t *testing.T) {
	env := newTestEnv()
	p := NewLeftColumn(fixed(1600), env.deps)

	p.HandleKey(keys.Right)
	p.HandleKey(keys.ShiftRight)
	p.HandleKey(keys.Left)
	if got := p.Geometry().Size; got != 320+8+24-8 {
		t.Errorf("width = %v, want 344", got)
	}
	if p.HandleKey(keys.Up) {
		t.Error("a horizontal grip should ignore up")
	}
}

func TestRightColumn_InvertedDrag(t *testing.T) {
	env := newTestEnv()
	p := NewRightColumn(fixed(1600), env.deps)

	p.BeginDrag(1280)
	env.window.Dispatch(drag.PointerMove, drag.Point{X: 1250}) // toward the canvas
	env.frames.Flush()
	p.EndDrag()

	if got := p.Geometry().Size; got != 350 {
		t.Errorf("width = %v, want 350", got)
	}
	var rec geometry.CollapsibleColumnWidth
	if err := json.Unmarshal([]byte(env.stored(t, RightKey)), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Width != 350 || rec.Collapsed {
		t.Errorf("stored = %+v", rec)
	}
}

func TestRightColumn_InvertedKeys(t *testing.T) {
	env := newTestEnv()
	p := NewRightColumn(fixed(1600), env.deps)

	p.HandleKey(keys.Left)
	if got := p.Geometry().Size; got != 328 {
		t.Errorf("left arrow should widen the inspector, got %v", got)
	}
	p.HandleKey(keys.ShiftRight)
	if got := p.Geometry().Size; got != 304 {
		t.Errorf("shift+right should narrow by 24, got %v", got)
	}
}

func TestRightColumn_CollapseKeepsStrip(t *testing.T) {
	env := newTestEnv()
	p := NewRightColumn(fixed(1600), env.deps)

	p.ToggleCollapse()
	if g := p.Geometry(); g.Size != geometry.RightCollapsedWidth || !g.Collapsed {
		t.Errorf("collapsed = %+v, want 40px strip", g)
	}
	p.ToggleCollapse()
	if g := p.Geometry(); g.Size != 320 || g.Collapsed {
		t.Errorf("restored = %+v, want 320", g)
	}
}

func TestRightColumn_InvalidStoredShape(t *testing.T) {
	env := newTestEnv()
	env.backend.Set(RightKey, []byte(`{"width":"abc","collapsed":false}`))

	p := NewRightColumn(fixed(1600), env.deps)

	if g := p.Geometry(); g.Size != 320 || g.Collapsed {
		t.Errorf("loaded %+v, want fallback {320 false}", g)
	}
	if len(env.reports) != 1 || env.reports[0] != store.OpRead {
		t.Errorf("reports = %v, want exactly one read", env.reports)
	}
}

func TestPanel_UnchangedResizeDoesNotPersist(t *testing.T) {
	env := newTestEnv()
	p := NewLeftColumn(fixed(1000), env.deps)

	p.Resize(-1000)
	env.backend.Delete(LeftKey)
	if p.Resize(-8) {
		t.Error("Resize at the floor should report no change")
	}
	if _, ok, _ := env.backend.Get(LeftKey); ok {
		t.Error("no-op resize should not write")
	}
}

func TestPanel_DragAfterCollapseIgnoresDeltas(t *testing.T) {
	env := newTestEnv()
	p := NewSection("components", "Components", 260, fixed(900), env.deps)

	p.BeginDrag(500)
	env.window.Dispatch(drag.PointerMove, drag.Point{Y: 200}) // -300
	env.frames.Flush()
	env.window.Dispatch(drag.PointerMove, drag.Point{Y: 260}) // +60
	env.frames.Flush()
	p.EndDrag()

	if g := p.Geometry(); !g.Collapsed || g.Size != 32 {
		t.Errorf("geometry = %+v, want collapsed", g)
	}
	if env.window.ListenerCount() != 0 {
		t.Error("EndDrag should detach all listeners")
	}
}
