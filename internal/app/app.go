package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/layout"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/store"
	"github.com/zhubert/dock/internal/ui"
)

// noFocus is the focus index when no grip has keyboard focus.
const noFocus = -1

// Options configures a Model.
type Options struct {
	Config *config.Config
	Store  *store.Adapter
	// Sections overrides layout.DefaultSections.
	Sections []layout.SectionSpec
}

// Model is the main Bubble Tea model. It owns the drag event hub, the frame
// queue and the dock, and routes terminal input into grip handlers.
type Model struct {
	config   *config.Config
	ctx      *ui.ViewContext
	renderer *ui.Renderer
	keys     KeyMap

	window   *drag.Window
	frames   *drag.FrameQueue
	deps     panel.Deps
	dockOpts []layout.Option
	dock     *layout.Dock

	width  int
	height int
	focus  int

	// frameScheduled is true while a FrameMsg tick is in flight.
	frameScheduled bool
	closed         bool
	// persistTheme saves theme switches to the config file.
	persistTheme bool
}

// LayoutChangedMsg is sent when the persisted layout was changed outside
// this program.
type LayoutChangedMsg struct{}

// New creates a new app model
func New(opts Options) *Model {
	cfg := opts.Config
	persistTheme := cfg != nil
	if cfg == nil {
		cfg = config.Default("")
	}
	st := opts.Store
	if st == nil {
		st = store.New(store.NewMemoryBackend(), store.WithReporter(store.LogReporter))
	}

	ui.SetThemeByName(cfg.GetTheme())

	cellW, cellH := cfg.CellSize()
	ctx := ui.NewViewContext(cellW, cellH)

	m := &Model{
		config:   cfg,
		ctx:      ctx,
		renderer: ui.NewRenderer(ctx),
		keys:     DefaultKeyMap(),
		window:   drag.NewWindow(),
		frames:   drag.NewFrameQueue(),

		persistTheme: persistTheme,
	}
	m.deps = panel.Deps{Store: st, Window: m.window, Frames: m.frames}
	if len(opts.Sections) > 0 {
		m.dockOpts = append(m.dockOpts, layout.WithSections(opts.Sections))
	}
	m.dock = layout.NewDock(m.deps, ctx, m.dockOpts...)
	m.setFocus(noFocus)
	m.renderer.Footer().SetKeyMap(m.keys)

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Dock returns the dock being driven.
func (m *Model) Dock() *layout.Dock {
	return m.dock
}

// FocusedGrip returns the anchor of the grip with keyboard focus, or "".
func (m *Model) FocusedGrip() string {
	grips := m.dock.Snapshot().Grips()
	if m.focus < 0 || m.focus >= len(grips) {
		return ""
	}
	return grips[m.focus].Anchor
}

// Close tears down live drag sessions. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.dock.Close()
	logger.ComponentLogger("app").Debug("App closed")
}

// reloadLayout rebuilds the dock from the store. Live drags are left alone;
// the next external change after release picks the edit up.
func (m *Model) reloadLayout() {
	if m.dock.Dragging() {
		logger.ComponentLogger("app").Debug("Layout change ignored during drag")
		return
	}
	m.dock.Close()
	m.dock = layout.NewDock(m.deps, m.ctx, m.dockOpts...)
	logger.ComponentLogger("app").Debug("Layout reloaded from store")
}
