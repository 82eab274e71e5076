package touchview

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetAnim holds the tweens of an animated reset.
type resetAnim struct {
	scale *gween.Tween
	x     *gween.Tween
	y     *gween.Tween

	last time.Time // time of the previous step; zero until the first Update
}

// ResetAnimated eases the view back to scale 1 and the origin over duration
// seconds. Each Update fires OnZoom(scale, 0, 0) and an incremental OnPan;
// the final frame performs a Reset so observers receive the same signals as
// an instant reset. A new touch or wheel input cancels the animation where
// it stands. A non-positive duration resets immediately.
func (e *Engine) ResetAnimated(duration float32, fn ease.TweenFunc) {
	if e.closed {
		return
	}
	if duration <= 0 {
		e.Reset()
		return
	}
	if fn == nil {
		fn = ease.OutCubic
	}
	e.resetAnim = &resetAnim{
		scale: gween.New(float32(e.view.Scale), 1, duration, fn),
		x:     gween.New(float32(e.view.Position.X), 0, duration, fn),
		y:     gween.New(float32(e.view.Position.Y), 0, duration, fn),
	}
	e.log.WithField("duration", duration).Debug("animated reset")
}

// Animating reports whether an animated reset is in progress.
func (e *Engine) Animating() bool {
	return e.resetAnim != nil
}

// stepResetAnim advances the animation by the time since its previous step.
// The first Update after ResetAnimated starts the animation's own clock, so
// a gap in Update calls before the animation began is never counted.
func (e *Engine) stepResetAnim(now time.Time) {
	a := e.resetAnim
	if a == nil {
		return
	}
	var dt float32
	switch {
	case a.last.IsZero():
		a.last = now
	case now.After(a.last):
		dt = float32(now.Sub(a.last).Seconds())
		a.last = now
	}

	s, doneS := a.scale.Update(dt)
	x, doneX := a.x.Update(dt)
	y, doneY := a.y.Update(dt)

	if doneS && doneX && doneY {
		e.resetAnim = nil
		// Report the last stretch as a delta so summed pans land on the
		// origin, then reset.
		e.movePosition(0, 0)
		e.Reset()
		return
	}

	e.view.Scale = e.clampScale(float64(s))
	e.fireZoom(e.view.Scale, 0, 0)
	if e.resetAnim != a {
		// A callback reset or replaced the animation.
		return
	}
	e.movePosition(float64(x), float64(y))
}

// movePosition moves the pan offset to (x, y) and fires the delta.
func (e *Engine) movePosition(x, y float64) {
	dx := x - e.view.Position.X
	dy := y - e.view.Position.Y
	if dx == 0 && dy == 0 {
		return
	}
	e.view.Position = Vec2{X: x, Y: y}
	e.firePan(dx, dy)
}
