package demo

import (
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  bool
	}{
		{"valid", Scenario{Name: "ok"}, false},
		{"missing name", Scenario{}, true},
		{"negative drag moves", Scenario{Name: "bad", Steps: []Step{{Type: StepDrag, Moves: -1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScenarioValidateDefaults(t *testing.T) {
	s := &Scenario{Name: "defaults"}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	if s.Width != 120 || s.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", s.Width, s.Height)
	}
	if s.Setup == nil || s.Setup.Theme != "dark" {
		t.Errorf("Setup = %+v, want the default setup", s.Setup)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "required"}
	if got := err.Error(); got != "validation error: Name: required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"wait", Wait(time.Second), Step{Type: StepWait, Duration: time.Second}},
		{"key", Key("tab"), Step{Type: StepKey, Key: "tab"}},
		{"key with desc", KeyWithDesc("tab", "next"), Step{Type: StepKey, Key: "tab", Description: "next"}},
		{"click", Click(3, 4), Step{Type: StepClick, X: 3, Y: 4}},
		{"drag", Drag(1, 2, 3, 4, 5), Step{Type: StepDrag, X: 1, Y: 2, ToX: 3, ToY: 4, Moves: 5}},
		{"drag with desc", DragWithDesc(1, 2, 3, 4, 5, "d"), Step{Type: StepDrag, X: 1, Y: 2, ToX: 3, ToY: 4, Moves: 5, Description: "d"}},
		{"annotate", Annotate("hi"), Step{Type: StepAnnotate, Annotation: "hi"}},
		{"capture", Capture(), Step{Type: StepCapture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("got %+v, want %+v", tt.step, tt.want)
			}
		})
	}
}
