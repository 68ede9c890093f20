package lview

import (
	"encoding/json"
	"fmt"
)

// testStep is one scripted action. Pointer coordinates are screen space
// (top-left origin), the same space a real mouse reports.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// stepActions maps a script action to what it does to the engine. "wait"
// is handled by the runner itself.
var stepActions = map[string]func(e *Engine, st testStep){
	"click":      func(e *Engine, st testStep) { e.InjectClick(st.X, st.Y) },
	"press":      func(e *Engine, st testStep) { e.InjectPress(st.X, st.Y) },
	"move":       func(e *Engine, st testStep) { e.InjectMove(st.X, st.Y) },
	"release":    func(e *Engine, st testStep) { e.InjectRelease(st.X, st.Y) },
	"screenshot": func(e *Engine, st testStep) { e.Screenshot(st.Label) },
	"drag": func(e *Engine, st testStep) {
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
}

// TestRunner replays a JSON script of pointer actions, waits, and
// screenshots against an Engine, one step per idle frame.
//
// A script looks like:
//
//	{"steps": [
//	    {"action": "click", "x": 60, "y": 560},
//	    {"action": "wait", "frames": 10},
//	    {"action": "screenshot", "label": "after-play"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses and validates a script. Every step must name a
// known action.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("lview: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("lview: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := stepActions[st.Action]; !ok && st.Action != "wait" {
			return nil, fmt.Errorf("lview: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the engine. It advances at the start of
// every Update, before the pointer is sampled. Pass nil to detach.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether the script has run to completion.
func (r *TestRunner) Done() bool {
	return r.done
}

// idle reports whether the runner may start the next step this frame.
// Queued pointer events and pending wait frames both hold it back.
func (r *TestRunner) idle(e *Engine) bool {
	if e.PendingInjections() > 0 {
		return false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return false
	}
	return true
}

func (r *TestRunner) step(e *Engine) {
	if r.done || !r.idle(e) {
		return
	}
	if r.cursor == len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	if st.Action == "wait" {
		// The current frame is the first waited frame.
		r.waitCount = max(st.Frames-1, 0)
	} else {
		stepActions[st.Action](e, st)
	}

	if r.cursor == len(r.steps) && r.waitCount == 0 && e.PendingInjections() == 0 {
		r.done = true
	}
}
