package touchview

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// --- Interaction state ---

type pinchOrigin struct {
	initialDist  float64
	initialScale float64
}

// interactionState is only meaningful for the gesture in progress; each
// field is rewritten when the next gesture begins.
type interactionState struct {
	gesture        GestureState
	lastTapTime    time.Time // zero when no tap can pair into a double-tap
	lastTapPos     Vec2
	touchStartTime time.Time
	panOrigin      Vec2
	pinch          pinchOrigin // valid while gesture == StatePinching
	longPress      longPressTimer
}

// Engine recognizes pan, pinch, double-tap, long-press and wheel-zoom
// gestures on a single surface and owns the resulting view transform.
//
// An Engine is not safe for concurrent use. All methods must be called from
// the goroutine that dispatches input, typically the host's frame loop.
type Engine struct {
	id       string
	cfg      Config
	log      logrus.FieldLogger
	surface  Surface
	handlers handlerRegistry

	state interactionState
	view  ViewTransform

	detach    []func()
	closed    bool
	resetting bool

	resetAnim *resetAnim
}

// New creates an engine for the given surface. A nil surface behaves like an
// unmounted element: state is tracked but no callbacks that need surface
// coordinates fire.
func New(surface Surface, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	id := uuid.NewString()
	return &Engine{
		id:      id,
		cfg:     cfg,
		log:     cfg.Logger.WithField("engine", id),
		surface: surface,
		view:    ViewTransform{Scale: 1},
	}
}

// ID returns the engine's unique instance identifier.
func (e *Engine) ID() string { return e.id }

// Config returns the configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// Scale returns the current zoom factor, always within [MinZoom, MaxZoom].
func (e *Engine) Scale() float64 { return e.view.Scale }

// Position returns the accumulated pan offset in pixels.
func (e *Engine) Position() Vec2 { return e.view.Position }

// Transform returns the current scale and position together.
func (e *Engine) Transform() ViewTransform { return e.view }

// State returns the active gesture.
func (e *Engine) State() GestureState { return e.state.gesture }

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool { return e.closed }

// Attach registers the engine as a listener on src. Every attachment is
// undone by Close.
func (e *Engine) Attach(src EventSource) {
	if e.closed || src == nil {
		return
	}
	e.detach = append(e.detach, src.Listen(e))
}

// Close removes all listeners and cancels the pending long-press and any
// running reset animation. After Close no callback fires from input or
// Update. Close is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for _, fn := range e.detach {
		if fn != nil {
			fn()
		}
	}
	e.detach = nil
	e.cancelLongPress()
	e.resetAnim = nil
	e.state.gesture = StateNone
	e.log.Debug("closed")
}

// Reset sets scale to 1 and position to the origin, then fires OnZoom(1, 0, 0)
// and OnPan(0, 0) even when nothing changed. Scale stays within
// [MinZoom, MaxZoom]: when 1 lies outside that range, Reset uses the nearest
// limit and OnZoom reports it. A Reset issued from inside one of those
// callbacks is ignored.
func (e *Engine) Reset() {
	if e.resetting {
		return
	}
	e.resetting = true
	defer func() { e.resetting = false }()

	e.resetAnim = nil
	e.view.Scale = e.clampScale(1)
	e.view.Position = Vec2{}
	e.log.Debug("reset")
	e.fireZoom(e.view.Scale, 0, 0)
	e.firePan(0, 0)
}

// Update advances the long-press timer and the reset animation to now.
// Hosts call it once per frame.
func (e *Engine) Update(now time.Time) {
	if e.closed {
		return
	}
	e.fireDueTimers(now)
	e.stepResetAnim(now)
}

// --- Helpers ---

func (e *Engine) setState(next GestureState) {
	if e.state.gesture == next {
		return
	}
	e.log.WithFields(logrus.Fields{
		"from": e.state.gesture.String(),
		"to":   next.String(),
	}).Debug("gesture transition")
	e.state.gesture = next
}

// clampScale restricts v to [MinZoom, MaxZoom]. NaN leaves the current scale
// untouched.
func (e *Engine) clampScale(v float64) float64 {
	if math.IsNaN(v) {
		return e.view.Scale
	}
	return math.Max(e.cfg.MinZoom, math.Min(v, e.cfg.MaxZoom))
}

// resolve converts client coordinates to surface-relative coordinates.
// ok is false when the surface is missing or unmounted.
func (e *Engine) resolve(x, y float64) (rx, ry float64, ok bool) {
	if e.surface == nil {
		return 0, 0, false
	}
	b, ok := e.surface.Bounds()
	if !ok {
		return 0, 0, false
	}
	rx, ry = b.Relative(x, y)
	return rx, ry, true
}

func distance(a, b Touch) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func midpoint(a, b Touch) (float64, float64) {
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}
