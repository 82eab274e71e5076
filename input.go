package touchview

import (
	"math"
	"time"
)

// --- Touch start ---

// TouchStart handles a touchstart. ev.Touches lists every touch now on the
// surface. It returns true for multi-touch and detected double-taps.
func (e *Engine) TouchStart(ev TouchEvent) bool {
	if e.closed || len(ev.Touches) == 0 {
		return false
	}
	e.fireDueTimers(ev.Time)
	e.resetAnim = nil

	if len(ev.Touches) >= 2 {
		e.beginPinch(ev.Touches[0], ev.Touches[1])
		return true
	}

	t := ev.Touches[0]
	e.state.touchStartTime = ev.Time

	if e.isDoubleTap(t, ev.Time) {
		// Clearing the last tap stops a third tap from pairing with the second.
		e.state.lastTapTime = time.Time{}
		e.cancelLongPress()
		if rx, ry, ok := e.resolve(t.X, t.Y); ok {
			e.log.WithField("x", rx).WithField("y", ry).Debug("double tap")
			e.fireDoubleTap(rx, ry)
		}
		return true
	}

	e.state.lastTapTime = ev.Time
	e.state.lastTapPos = Vec2{X: t.X, Y: t.Y}
	e.state.panOrigin = Vec2{X: t.X, Y: t.Y}
	e.setState(StatePanning)
	e.armLongPress(ev.Time, t.X, t.Y)
	return false
}

// isDoubleTap reports whether a single touch at t pairs with the last tap.
func (e *Engine) isDoubleTap(t Touch, now time.Time) bool {
	if e.state.lastTapTime.IsZero() {
		return false
	}
	elapsed := now.Sub(e.state.lastTapTime)
	if elapsed < 0 || elapsed >= e.cfg.DoubleTapDelay {
		return false
	}
	dist := math.Hypot(t.X-e.state.lastTapPos.X, t.Y-e.state.lastTapPos.Y)
	return dist < DoubleTapRadius
}

// beginPinch anchors a pinch on the current distance between a and b. Pinch
// pre-empts any pan in progress.
func (e *Engine) beginPinch(a, b Touch) {
	e.cancelLongPress()
	e.state.lastTapTime = time.Time{}
	e.state.pinch = pinchOrigin{
		initialDist:  distance(a, b),
		initialScale: e.view.Scale,
	}
	e.setState(StatePinching)
}

// --- Touch move ---

// TouchMove handles a touchmove. Any movement cancels a pending long-press.
// It returns true while a pan or pinch is active.
func (e *Engine) TouchMove(ev TouchEvent) bool {
	if e.closed {
		return false
	}
	e.fireDueTimers(ev.Time)
	e.cancelLongPress()

	switch e.state.gesture {
	case StatePinching:
		if len(ev.Touches) >= 2 {
			e.pinchMove(ev.Touches[0], ev.Touches[1])
		}
		return true
	case StatePanning:
		if len(ev.Touches) == 1 {
			e.panMove(ev.Touches[0])
		}
		return true
	default:
		return false
	}
}

func (e *Engine) pinchMove(a, b Touch) {
	dist := distance(a, b)
	p := e.state.pinch
	if p.initialDist == 0 {
		// Touches began on the same point: no scale change this frame, and
		// the pinch is anchored once they separate.
		if dist > 0 {
			e.state.pinch = pinchOrigin{initialDist: dist, initialScale: e.view.Scale}
		}
		return
	}

	e.view.Scale = e.clampScale(p.initialScale * (dist / p.initialDist))

	mx, my := midpoint(a, b)
	if ox, oy, ok := e.resolve(mx, my); ok {
		e.fireZoom(e.view.Scale, ox, oy)
	}
}

func (e *Engine) panMove(t Touch) {
	dx := t.X - e.state.panOrigin.X
	dy := t.Y - e.state.panOrigin.Y
	if math.Abs(dx) <= PanThreshold && math.Abs(dy) <= PanThreshold {
		return
	}
	e.state.panOrigin = Vec2{X: t.X, Y: t.Y}
	e.view.Position.X += dx
	e.view.Position.Y += dy
	e.firePan(dx, dy)
}

// --- Touch end ---

// TouchEnd handles a touchend or touchcancel. ev.Touches lists the touches
// that remain. Lifting one finger of a pinch hands off to a pan anchored on
// the remaining finger without reporting a delta.
func (e *Engine) TouchEnd(ev TouchEvent) bool {
	if e.closed {
		return false
	}
	e.fireDueTimers(ev.Time)
	e.cancelLongPress()

	prev := e.state.gesture
	switch n := len(ev.Touches); {
	case n == 0:
		if prev != StateNone {
			e.log.WithField("held", ev.Time.Sub(e.state.touchStartTime)).Debug("touches released")
		}
		e.setState(StateNone)
	case n == 1 && prev == StatePinching:
		t := ev.Touches[0]
		e.state.panOrigin = Vec2{X: t.X, Y: t.Y}
		e.setState(StatePanning)
	case n >= 2 && prev == StatePinching:
		// A third finger lifted: keep pinching from the current scale.
		e.state.pinch = pinchOrigin{
			initialDist:  distance(ev.Touches[0], ev.Touches[1]),
			initialScale: e.view.Scale,
		}
	}
	return prev != StateNone
}

// --- Wheel ---

// Wheel zooms by -DeltaY*WheelZoomStep around the cursor. It always returns
// true so the host suppresses page scrolling over the surface.
func (e *Engine) Wheel(ev WheelEvent) bool {
	if e.closed {
		return false
	}
	e.fireDueTimers(ev.Time)
	e.resetAnim = nil

	e.view.Scale = e.clampScale(e.view.Scale - ev.DeltaY*WheelZoomStep)
	if ox, oy, ok := e.resolve(ev.X, ev.Y); ok {
		e.fireZoom(e.view.Scale, ox, oy)
	}
	return true
}
