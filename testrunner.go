package touchview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptPoint is a point in a gesture script.
type scriptPoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `yaml:"action" json:"action"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty" json:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty" json:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty" json:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty" json:"toY,omitempty"`
	DeltaY float64 `yaml:"deltaY,omitempty" json:"deltaY,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`
	// Pinch endpoints: From[0]/To[0] for the first touch, From[1]/To[1]
	// for the second.
	From []scriptPoint `yaml:"from,omitempty" json:"from,omitempty"`
	To   []scriptPoint `yaml:"to,omitempty" json:"to,omitempty"`
}

// script is the top-level structure of a gesture script.
type script struct {
	Steps []scriptStep `yaml:"steps" json:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "doubletap": true, "hold": true, "drag": true,
	"pinch": true, "wheel": true, "wait": true, "reset": true,
}

// Runner sequences scripted gestures into a Simulator, one step each time
// the simulator's queue drains.
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML gesture script. JSON is valid YAML, so JSON
// scripts load too.
func LoadScript(data []byte) (*Runner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "pinch" && (len(st.From) != 2 || len(st.To) != 2) {
			return nil, fmt.Errorf("parse gesture script: step %d: pinch needs two from and two to points", i)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

// Len returns the number of steps in the script.
func (r *Runner) Len() int { return len(r.steps) }

// Done reports whether all steps have been executed and their input
// consumed.
func (r *Runner) Done() bool {
	return r.done
}

// Step advances the runner by one frame of sim. Call it once per frame
// before Simulator.Step.
func (r *Runner) Step(sim *Simulator) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if sim.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		sim.InjectTap(st.X, st.Y)
	case "doubletap":
		sim.InjectTap(st.X, st.Y)
		sim.InjectTap(st.X, st.Y)
	case "hold":
		sim.InjectHold(st.X, st.Y, st.Frames)
	case "drag":
		sim.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		sim.InjectPinch(
			Vec2{X: st.From[0].X, Y: st.From[0].Y}, Vec2{X: st.From[1].X, Y: st.From[1].Y},
			Vec2{X: st.To[0].X, Y: st.To[0].Y}, Vec2{X: st.To[1].X, Y: st.To[1].Y},
			st.Frames,
		)
	case "wheel":
		sim.InjectWheel(st.X, st.Y, st.DeltaY)
	case "reset":
		sim.InjectReset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && sim.Pending() == 0 {
		r.done = true
	}
}

// Run steps r and sim together until the script finishes or maxFrames
// frames have run. It returns the number of frames stepped.
func (r *Runner) Run(sim *Simulator, maxFrames int) int {
	n := 0
	for !r.done && n < maxFrames {
		r.Step(sim)
		sim.Step()
		n++
	}
	for sim.Pending() > 0 && n < maxFrames {
		sim.Step()
		n++
	}
	return n
}
