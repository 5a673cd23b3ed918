package layout

import (
	"reflect"
	"testing"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/store"
)

type fakeMeasurer struct {
	width, height float64
}

func (m *fakeMeasurer) ViewportWidth() float64 { return m.width }
func (m *fakeMeasurer) ColumnHeight() float64  { return m.height }

type harness struct {
	backend *store.MemoryBackend
	window  *drag.Window
	frames  *drag.FrameQueue
	measure *fakeMeasurer
	deps    panel.Deps
}

func newHarness() *harness {
	h := &harness{
		backend: store.NewMemoryBackend(),
		window:  drag.NewWindow(),
		frames:  drag.NewFrameQueue(),
		measure: &fakeMeasurer{width: 1280, height: 720},
	}
	h.deps = panel.Deps{Store: store.New(h.backend), Window: h.window, Frames: h.frames}
	return h
}

func funcPointer(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func TestDock_DefaultSnapshot(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	b := d.Snapshot()

	wantIDs := []string{"components", "layers", "assets"}
	if !reflect.DeepEqual(b.SectionIDs, wantIDs) {
		t.Fatalf("SectionIDs = %v, want %v", b.SectionIDs, wantIDs)
	}
	if got := b.Sections["components"].Height; got != 260 {
		t.Errorf("components height = %v, want 260", got)
	}
	if got := b.Sections["layers"].Height; got != 180 {
		t.Errorf("layers height = %v, want 180", got)
	}
	if b.Left.Width != 320 || b.Left.Collapsible {
		t.Errorf("left = %+v, want 320 non-collapsible", b.Left)
	}
	if b.Right.Width != 320 || b.Right.Collapsed || !b.Right.Collapsible {
		t.Errorf("right = %+v, want 320 expanded collapsible", b.Right)
	}
	if b.Anchors["leftGrip"] != AnchorLeftGrip {
		t.Errorf("leftGrip anchor = %q", b.Anchors["leftGrip"])
	}
	if b.Anchors["section.layers.grip"] != "dock-section-layers-grip" {
		t.Errorf("section grip anchor = %q", b.Anchors["section.layers.grip"])
	}
}

func TestDock_GripProps(t *testing.T) {
	h := newHarness()
	b := NewDock(h.deps, h.measure).Snapshot()

	sec := b.Sections["assets"].Grip
	if sec.Role != RoleSeparator || sec.Orientation != OrientationHorizontal {
		t.Errorf("section grip = %s/%s, want separator/horizontal", sec.Role, sec.Orientation)
	}
	if sec.Label != "Resize Assets" {
		t.Errorf("section label = %q", sec.Label)
	}
	if sec.OnToggle == nil {
		t.Error("section grip should be toggleable")
	}

	if b.Left.Grip.Orientation != OrientationVertical {
		t.Errorf("left orientation = %s", b.Left.Grip.Orientation)
	}
	if b.Left.Grip.OnToggle != nil {
		t.Error("left grip must not offer a toggle")
	}
	if b.Right.Grip.Label != "Resize inspector" {
		t.Errorf("right label = %q", b.Right.Grip.Label)
	}
}

func TestDock_HandlersAreStableAcrossSnapshots(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	first := d.Snapshot()
	first.Sections["layers"].Grip.OnToggle()
	second := d.Snapshot()

	for _, id := range first.SectionIDs {
		a, b := first.Sections[id].Grip, second.Sections[id].Grip
		if funcPointer(a.OnPointerDown) != funcPointer(b.OnPointerDown) ||
			funcPointer(a.OnKeyDown) != funcPointer(b.OnKeyDown) ||
			funcPointer(a.OnToggle) != funcPointer(b.OnToggle) {
			t.Errorf("section %s handlers changed between snapshots", id)
		}
	}
	if funcPointer(first.Right.Grip.OnToggle) != funcPointer(second.Right.Grip.OnToggle) {
		t.Error("right toggle changed between snapshots")
	}
}

func TestDock_SnapshotIsIndependent(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	b := d.Snapshot()
	b.SectionIDs[0] = "mutated"
	b.Anchors["root"] = "mutated"
	delete(b.Sections, "layers")

	again := d.Snapshot()
	if again.SectionIDs[0] != "components" || again.Anchors["root"] != AnchorRoot {
		t.Error("mutating a snapshot leaked into the dock")
	}
	if _, ok := again.Sections["layers"]; !ok {
		t.Error("layers binding missing after caller mutation")
	}
	if b.Sections["components"].Collapsed {
		t.Fatal("unexpected initial collapse")
	}

	again.Sections["components"].Grip.OnToggle()
	if !d.Snapshot().Sections["components"].Collapsed {
		t.Error("toggle should be visible in the next snapshot")
	}
	if b.Sections["components"].Collapsed {
		t.Error("old snapshot should not change")
	}
}

func TestDock_SectionToggleScenario(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	toggle := d.Snapshot().Sections["components"].Grip.OnToggle

	toggle()
	s := d.Snapshot().Sections["components"]
	if s.Height != 32 || !s.Collapsed {
		t.Fatalf("collapsed = %+v", s)
	}

	toggle()
	s = d.Snapshot().Sections["components"]
	if s.Height != 260 || s.Collapsed {
		t.Fatalf("restored = %+v", s)
	}
}

func TestDock_DragSetsSuppressTransition(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	d.Snapshot().Left.Grip.OnPointerDown(320)
	b := d.Snapshot()
	if !b.Left.SuppressTransition || !d.Dragging() {
		t.Error("left should suppress transitions while dragging")
	}
	if b.Right.SuppressTransition || b.Sections["components"].SuppressTransition {
		t.Error("only the dragged panel suppresses transitions")
	}

	h.window.Dispatch(drag.PointerMove, drag.Point{X: 340})
	h.frames.Flush()
	h.window.Dispatch(drag.PointerUp, drag.Point{X: 340})

	b = d.Snapshot()
	if b.Left.SuppressTransition || d.Dragging() {
		t.Error("release should end the drag")
	}
	if b.Left.Width != 340 {
		t.Errorf("left width = %v, want 340", b.Left.Width)
	}
}

func TestDock_TouchStartDrags(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	d.Snapshot().Sections["layers"].Grip.OnTouchStart(400)
	h.window.Dispatch(drag.TouchMove, drag.Point{Y: 440})
	h.frames.Flush()
	h.window.Dispatch(drag.TouchEnd, drag.Point{Y: 440})

	if got := d.Snapshot().Sections["layers"].Height; got != 220 {
		t.Errorf("layers height = %v, want 220", got)
	}
}

func TestDock_KeyDownRoutesToPanel(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	right := d.Snapshot().Right.Grip
	if !right.OnKeyDown(keys.Left) {
		t.Fatal("left arrow should be consumed by the inspector grip")
	}
	if got := d.Snapshot().Right.Width; got != 328 {
		t.Errorf("right width = %v, want 328", got)
	}
	if right.OnKeyDown("x") {
		t.Error("unrelated key should not be consumed")
	}
}

func TestDock_SectionMaxFollowsColumnHeight(t *testing.T) {
	h := newHarness()
	h.measure.height = 500
	d := NewDock(h.deps, h.measure)

	d.Snapshot().Sections["components"].Grip.OnKeyDown(keys.End)
	if got := d.Snapshot().Sections["components"].Height; got != 436 {
		t.Errorf("height = %v, want 436", got)
	}
}

func TestDock_LoadsPersistedState(t *testing.T) {
	h := newHarness()
	h.backend.Set(panel.LeftKey, []byte(`400`))
	h.backend.Set(panel.RightKey, []byte(`{"width":300,"collapsed":true}`))
	h.backend.Set(panel.SectionKey("assets"), []byte(`{"height":150,"collapsed":false}`))

	b := NewDock(h.deps, h.measure).Snapshot()

	if b.Left.Width != 400 {
		t.Errorf("left = %v, want 400", b.Left.Width)
	}
	if b.Right.Width != 40 || !b.Right.Collapsed {
		t.Errorf("right = %+v, want collapsed strip", b.Right)
	}
	if b.Sections["assets"].Height != 150 {
		t.Errorf("assets = %v, want 150", b.Sections["assets"].Height)
	}
}

func TestDock_CloseTearsDownDrags(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	d.Snapshot().Right.Grip.OnPointerDown(900)
	if h.window.ListenerCount() == 0 {
		t.Fatal("drag should attach listeners")
	}
	h.window.Dispatch(drag.PointerMove, drag.Point{X: 880})

	d.Close()

	if h.window.ListenerCount() != 0 {
		t.Errorf("listeners = %d after Close", h.window.ListenerCount())
	}
	if !h.window.SelectionEnabled() {
		t.Error("selection should be re-enabled")
	}
	h.frames.Flush()
	if got := d.Snapshot().Right.Width; got != 320 {
		t.Errorf("pending delta applied after Close: width %v", got)
	}
	d.Close()
}

func TestDock_WithSections(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure, WithSections([]SectionSpec{
		{ID: "one", Title: "One", DefaultHeight: 200},
		{ID: "two", Title: "Two", DefaultHeight: 150},
	}))

	b := d.Snapshot()
	if !reflect.DeepEqual(b.SectionIDs, []string{"one", "two"}) {
		t.Errorf("SectionIDs = %v", b.SectionIDs)
	}
	if got := len(b.Grips()); got != 4 {
		t.Errorf("grips = %d, want 4", got)
	}
}

func TestDock_ToggleProps(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure)

	b := d.Snapshot()
	want := Toggle{Expanded: true, Controls: "dock-section-layers-content", Title: "Collapse Layers"}
	if got := b.Sections["layers"].Toggle; got != want {
		t.Errorf("expanded toggle = %+v, want %+v", got, want)
	}
	if got := b.Right.Toggle; got != (Toggle{Expanded: true, Controls: AnchorRightPanel, Title: "Collapse Inspector"}) {
		t.Errorf("right toggle = %+v", got)
	}
	if b.Left.Toggle != (Toggle{}) {
		t.Errorf("catalog column cannot collapse, toggle = %+v", b.Left.Toggle)
	}

	b.Sections["layers"].Grip.OnToggle()
	b.Right.Grip.OnToggle()

	b = d.Snapshot()
	want = Toggle{Expanded: false, Controls: "dock-section-layers-content", Title: "Expand Layers"}
	if got := b.Sections["layers"].Toggle; got != want {
		t.Errorf("collapsed toggle = %+v, want %+v", got, want)
	}
	if got := b.Right.Toggle; got.Expanded || got.Title != "Expand Inspector" {
		t.Errorf("collapsed right toggle = %+v", got)
	}
}

func TestDock_HiddenGripLeavesFocusOrder(t *testing.T) {
	h := newHarness()
	d := NewDock(h.deps, h.measure, WithSections([]SectionSpec{
		{ID: "one", Title: "One", DefaultHeight: 200},
		{ID: "two", Title: "Two", DefaultHeight: 150, HideGrip: true},
	}))

	b := d.Snapshot()
	if !b.Sections["one"].GripVisible || b.Sections["two"].GripVisible {
		t.Errorf("GripVisible = %v, %v; want true, false", b.Sections["one"].GripVisible, b.Sections["two"].GripVisible)
	}
	for _, g := range b.Grips() {
		if g.Anchor == SectionGripAnchor("two") {
			t.Error("a hidden grip must not take focus")
		}
	}
	if got := len(b.Grips()); got != 3 {
		t.Errorf("grips = %d, want 3", got)
	}

	// The section still collapses from its header.
	b.Sections["two"].Grip.OnToggle()
	if !d.Snapshot().Sections["two"].Collapsed {
		t.Error("section without a grip should still collapse")
	}
}

func TestBindings_GripsFocusOrder(t *testing.T) {
	h := newHarness()
	b := NewDock(h.deps, h.measure).Snapshot()

	var anchors []string
	for _, g := range b.Grips() {
		anchors = append(anchors, g.Anchor)
	}
	want := []string{
		"dock-section-components-grip",
		"dock-section-layers-grip",
		"dock-section-assets-grip",
		AnchorLeftGrip,
		AnchorRightGrip,
	}
	if !reflect.DeepEqual(anchors, want) {
		t.Errorf("grip order = %v, want %v", anchors, want)
	}
}

func TestStorageKeys(t *testing.T) {
	got := StorageKeys(DefaultSections)
	want := []string{
		"dock.left.width",
		"dock.right",
		"dock.section.components",
		"dock.section.layers",
		"dock.section.assets",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StorageKeys = %v, want %v", got, want)
	}
}
