// Package demo provides infrastructure for generating demos of the dock.
// It drives the real app model with scripted key presses and mouse drags
// over an in-memory layout store, so recordings are deterministic and never
// touch the user's saved layout.
package demo

import (
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepClick sends a primary button press and release at a cell.
	StepClick
	// StepDrag presses at one cell, moves to another and releases.
	StepDrag
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the current frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepClick and StepDrag: the press position in cells
	X, Y int

	// For StepDrag: the release position and how many motion events lead
	// there
	ToX, ToY int
	Moves    int

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Layout seeds the store with raw JSON values by key, for example
	// {"dock.left.width": "280"}.
	Layout map[string]string

	// Theme is the starting theme name
	Theme string
}

// DefaultSetup returns a minimal setup for demos: default sizes, dark theme.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Theme: "dark",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for _, step := range s.Steps {
		if step.Type == StepDrag && step.Moves < 0 {
			return &ValidationError{Field: "Steps", Message: "drag moves must not be negative"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Click creates a click step at cell (x, y).
func Click(x, y int) Step {
	return Step{
		Type: StepClick,
		X:    x,
		Y:    y,
	}
}

// Drag creates a drag from (x, y) to (toX, toY) in the given number of
// motion events. Zero moves means a single jump.
func Drag(x, y, toX, toY, moves int) Step {
	return Step{
		Type:  StepDrag,
		X:     x,
		Y:     y,
		ToX:   toX,
		ToY:   toY,
		Moves: moves,
	}
}

// DragWithDesc creates a drag step with a description.
func DragWithDesc(x, y, toX, toY, moves int, description string) Step {
	s := Drag(x, y, toX, toY, moves)
	s.Description = description
	return s
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
