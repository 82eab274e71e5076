package touchview

import "time"

// DefaultFrameDuration is the simulated time between Simulator frames.
const DefaultFrameDuration = 16 * time.Millisecond

type syntheticKind uint8

const (
	synthIdle syntheticKind = iota
	synthTouchStart
	synthTouchMove
	synthTouchEnd
	synthWheel
	synthReset
)

// syntheticEvent is one queued frame of input. Touches are client
// coordinates, exactly what a real EventSource would deliver.
type syntheticEvent struct {
	kind    syntheticKind
	touches []Touch
	wheel   WheelEvent
}

// Simulator drives an Engine from a queue of synthetic input on a simulated
// clock: each Step advances the clock by one frame, dispatches at most one
// queued event, then calls Engine.Update.
type Simulator struct {
	engine *Engine
	now    time.Time
	frame  time.Duration
	queue  []syntheticEvent
	frames int
}

// NewSimulator creates a simulator for e whose clock starts at start.
func NewSimulator(e *Engine, start time.Time) *Simulator {
	return &Simulator{engine: e, now: start, frame: DefaultFrameDuration}
}

// SetFrameDuration changes the simulated time per frame. Non-positive values
// are ignored.
func (s *Simulator) SetFrameDuration(d time.Duration) {
	if d > 0 {
		s.frame = d
	}
}

// Engine returns the driven engine.
func (s *Simulator) Engine() *Engine { return s.engine }

// Now returns the simulated clock.
func (s *Simulator) Now() time.Time { return s.now }

// Frames returns how many frames have been stepped.
func (s *Simulator) Frames() int { return s.frames }

// Pending returns the number of queued events.
func (s *Simulator) Pending() int { return len(s.queue) }

// InjectTouchStart queues a touchstart with the given active touches.
func (s *Simulator) InjectTouchStart(touches ...Touch) {
	s.queue = append(s.queue, syntheticEvent{kind: synthTouchStart, touches: touches})
}

// InjectTouchMove queues a touchmove with the given active touches.
func (s *Simulator) InjectTouchMove(touches ...Touch) {
	s.queue = append(s.queue, syntheticEvent{kind: synthTouchMove, touches: touches})
}

// InjectTouchEnd queues a touchend with the touches that remain.
func (s *Simulator) InjectTouchEnd(remaining ...Touch) {
	s.queue = append(s.queue, syntheticEvent{kind: synthTouchEnd, touches: remaining})
}

// InjectWheel queues a wheel event at (x, y).
func (s *Simulator) InjectWheel(x, y, deltaY float64) {
	s.queue = append(s.queue, syntheticEvent{kind: synthWheel, wheel: WheelEvent{DeltaY: deltaY, X: x, Y: y}})
}

// InjectReset queues a call to Engine.Reset.
func (s *Simulator) InjectReset() {
	s.queue = append(s.queue, syntheticEvent{kind: synthReset})
}

// InjectWait queues frames with no input.
func (s *Simulator) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		s.queue = append(s.queue, syntheticEvent{kind: synthIdle})
	}
}

// InjectTap queues a touch press followed by a release at (x, y). Consumes
// two frames.
func (s *Simulator) InjectTap(x, y float64) {
	s.InjectTouchStart(Touch{ID: 0, X: x, Y: y})
	s.InjectTouchEnd()
}

// InjectHold queues a press at (x, y), frames-2 idle frames and a release.
// Minimum frames is 2.
func (s *Simulator) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectTouchStart(Touch{ID: 0, X: x, Y: y})
	s.InjectWait(frames - 2)
	s.InjectTouchEnd()
}

// InjectDrag queues a single-touch drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, a final move to
// (toX, toY) and a release. The sequence consumes frames+1 frames. Minimum
// frames is 2.
func (s *Simulator) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectTouchStart(Touch{ID: 0, X: fromX, Y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectTouchMove(Touch{ID: 0, X: fromX + (toX-fromX)*t, Y: fromY + (toY-fromY)*t})
	}
	s.InjectTouchMove(Touch{ID: 0, X: toX, Y: toY})
	s.InjectTouchEnd()
}

// InjectPinch queues a two-touch pinch moving touch a from a0 to a1 and
// touch b from b0 to b1 over frames moves, then lifts b and finally a.
// Minimum frames is 1.
func (s *Simulator) InjectPinch(a0, b0, a1, b1 Vec2, frames int) {
	if frames < 1 {
		frames = 1
	}
	s.InjectTouchStart(Touch{ID: 0, X: a0.X, Y: a0.Y}, Touch{ID: 1, X: b0.X, Y: b0.Y})
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectTouchMove(
			Touch{ID: 0, X: a0.X + (a1.X-a0.X)*t, Y: a0.Y + (a1.Y-a0.Y)*t},
			Touch{ID: 1, X: b0.X + (b1.X-b0.X)*t, Y: b0.Y + (b1.Y-b0.Y)*t},
		)
	}
	s.InjectTouchEnd(Touch{ID: 0, X: a1.X, Y: a1.Y})
	s.InjectTouchEnd()
}

// Step advances one frame. It reports whether a queued event was consumed.
func (s *Simulator) Step() bool {
	s.now = s.now.Add(s.frame)
	s.frames++

	consumed := false
	if len(s.queue) > 0 {
		evt := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue[len(s.queue)-1] = syntheticEvent{}
		s.queue = s.queue[:len(s.queue)-1]
		s.dispatch(evt)
		consumed = true
	}
	s.engine.Update(s.now)
	return consumed
}

// Drain steps until the queue is empty and returns the number of frames.
func (s *Simulator) Drain() int {
	n := 0
	for len(s.queue) > 0 {
		s.Step()
		n++
	}
	return n
}

// Advance steps idle frames until at least d of simulated time has passed.
func (s *Simulator) Advance(d time.Duration) {
	end := s.now.Add(d)
	for s.now.Before(end) {
		s.Step()
	}
}

func (s *Simulator) dispatch(evt syntheticEvent) {
	e := s.engine
	switch evt.kind {
	case synthTouchStart:
		e.TouchStart(TouchEvent{Touches: evt.touches, Time: s.now})
	case synthTouchMove:
		e.TouchMove(TouchEvent{Touches: evt.touches, Time: s.now})
	case synthTouchEnd:
		e.TouchEnd(TouchEvent{Touches: evt.touches, Time: s.now})
	case synthWheel:
		w := evt.wheel
		w.Time = s.now
		e.Wheel(w)
	case synthReset:
		e.Reset()
	}
}
