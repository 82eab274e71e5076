package touchview

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: tap
    x: 100
    y: 200
  - action: wait
    frames: 3
  - action: pinch
    from: [{x: 100, y: 100}, {x: 200, y: 100}]
    to: [{x: 50, y: 100}, {x: 250, y: 100}]
    frames: 4
`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.Len() != 3 {
		t.Fatalf("expected 3 steps, got %d", runner.Len())
	}
	if runner.steps[0].Action != "tap" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if len(runner.steps[2].From) != 2 || runner.steps[2].To[1].X != 250 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_JSON(t *testing.T) {
	data := []byte(`{"steps": [{"action": "wheel", "x": 10, "y": 20, "deltaY": -50}]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := runner.steps[0]; st.Action != "wheel" || st.DeltaY != -50 || st.Y != 20 {
		t.Errorf("step = %+v", st)
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "steps: [\n"},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
		{"pinch missing points", `{"steps": [{"action": "pinch", "from": [{"x": 1, "y": 1}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Tap(t *testing.T) {
	e, _ := newTestEngine(FixedSurface{})
	sim := NewSimulator(e, t0)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "tap", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step: tap queues press+release.
	runner.Step(sim)
	if sim.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", sim.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while events are pending")
	}

	sim.Step()
	sim.Step()

	runner.Step(sim)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerRun(t *testing.T) {
	e, r := newTestEngine(FixedSurface{})
	sim := NewSimulator(e, t0)

	runner, err := LoadScript([]byte(`
steps:
  - action: doubletap
    x: 40
    y: 40
  - action: wait
    frames: 30
  - action: drag
    fromX: 100
    fromY: 100
    toX: 160
    toY: 100
    frames: 4
  - action: wheel
    x: 0
    y: 0
    deltaY: -100
  - action: hold
    x: 10
    y: 10
    frames: 40
  - action: reset
`))
	if err != nil {
		t.Fatal(err)
	}

	frames := runner.Run(sim, 1000)
	if !runner.Done() {
		t.Fatalf("runner not done after %d frames", frames)
	}
	if sim.Pending() != 0 {
		t.Errorf("pending = %d after run", sim.Pending())
	}
	if len(r.doubleTaps) != 1 {
		t.Errorf("doubleTaps = %v, want 1", r.doubleTaps)
	}
	if len(r.longPresses) != 1 {
		t.Errorf("longPresses = %v, want 1", r.longPresses)
	}
	if e.Scale() != 1 || e.Position() != (Vec2{}) {
		t.Errorf("final transform: scale %v position %v", e.Scale(), e.Position())
	}
	last := r.zooms[len(r.zooms)-1]
	if last != [3]float64{1, 0, 0} {
		t.Errorf("last zoom = %v, want reset", last)
	}
}

func TestRunnerRun_MaxFrames(t *testing.T) {
	e, _ := newTestEngine(FixedSurface{})
	sim := NewSimulator(e, t0)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if n := runner.Run(sim, 10); n != 10 {
		t.Errorf("Run stepped %d frames, want 10", n)
	}
	if runner.Done() {
		t.Error("runner should not finish within 10 frames")
	}
}
