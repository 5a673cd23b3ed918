package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/app"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/store"
	"github.com/zhubert/dock/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// MoveDelay is the delay between drag motion frames (default: 30ms)
	MoveDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		KeyDelay:         100 * time.Millisecond,
		MoveDelay:        30 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config  ExecutorConfig
	model   *app.Model
	backend *store.MemoryBackend
	frames  []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup tears down the model after Run completes.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
}

// Backend returns the in-memory layout store the scenario ran against.
func (e *Executor) Backend() *store.MemoryBackend {
	return e.backend
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	// Initialize the model
	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	// Ensure cleanup is called when we're done
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	// Execute each step
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	e.backend = store.NewMemoryBackend()
	for key, raw := range scenario.Setup.Layout {
		if err := e.backend.Set(key, []byte(raw)); err != nil {
			return err
		}
	}

	e.model = app.New(app.Options{
		Store: store.New(e.backend, store.WithReporter(store.LogReporter)),
	})
	if scenario.Setup.Theme != "" {
		ui.SetThemeByName(scenario.Setup.Theme)
	}

	// Set size
	e.model.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	// Render once so the hit targets exist before the first click.
	e.model.RenderToString()

	logger.ComponentLogger("demo").Debug("Scenario ready", "name", scenario.Name, "width", scenario.Width, "height", scenario.Height)
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.send(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepClick:
		e.send(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.send(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepDrag:
		e.drag(index, step)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// drag presses at the start cell, moves in even steps to the end cell and
// releases there. Each motion is followed by a frame so the batched delta
// lands before the next one, as it would at display speed.
func (e *Executor) drag(index int, step Step) {
	e.send(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})

	moves := max(step.Moves, 1)
	for i := 1; i <= moves; i++ {
		x := step.X + (step.ToX-step.X)*i/moves
		y := step.Y + (step.ToY-step.Y)*i/moves
		e.send(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
		e.send(app.FrameMsg(time.Time{}))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.MoveDelay)
		}
	}

	e.send(tea.MouseReleaseMsg{X: step.ToX, Y: step.ToY, Button: tea.MouseLeft})
}

func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

func (e *Executor) send(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
	// Keep hit targets in step with the layout.
	e.model.RenderToString()
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "shift+up":
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModShift}
	case "shift+down":
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift}
	case "shift+left":
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}
	case "shift+right":
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
