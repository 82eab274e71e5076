package touchview

import "time"

// longPressTimer is a deadline rather than a runtime timer so that it fires
// on the input goroutine, in order with the events around it.
type longPressTimer struct {
	armed    bool
	deadline time.Time
	x, y     float64 // client coordinates of the pressing touch
}

// armLongPress replaces any outstanding long-press timer.
func (e *Engine) armLongPress(now time.Time, x, y float64) {
	e.state.longPress = longPressTimer{
		armed:    true,
		deadline: now.Add(e.cfg.LongPressDelay),
		x:        x,
		y:        y,
	}
}

func (e *Engine) cancelLongPress() {
	e.state.longPress = longPressTimer{}
}

// LongPressPending reports whether a long-press timer is armed.
func (e *Engine) LongPressPending() bool {
	return e.state.longPress.armed
}

// fireDueTimers fires the long-press timer if its deadline is at or before
// now. Input handlers call it with the event time first, so a timer that
// expired between frames fires before the event that follows it.
func (e *Engine) fireDueTimers(now time.Time) {
	lp := e.state.longPress
	if !lp.armed || now.Before(lp.deadline) {
		return
	}
	e.cancelLongPress()
	rx, ry, ok := e.resolve(lp.x, lp.y)
	if !ok {
		return
	}
	e.log.WithField("x", rx).WithField("y", ry).Debug("long press")
	e.fireLongPress(rx, ry)
}
