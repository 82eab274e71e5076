// Package ebiteninput feeds Ebitengine touch and wheel input into a
// touchview engine.
//
// Ebitengine exposes input as per-tick state rather than events, so [Source]
// polls it once per tick and turns the differences between ticks into
// touchstart, touchmove and touchend events:
//
//	src := ebiteninput.New()
//	engine.Attach(src)
//
//	func (g *Game) Update() error {
//		now := time.Now()
//		g.src.Poll(now)
//		g.engine.Update(now)
//		return nil
//	}
package ebiteninput

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/touchview"
)

// WheelLineHeight converts Ebitengine wheel offsets (lines, positive up) to
// browser-style DeltaY (pixels, positive down).
const WheelLineHeight = 100.0

type listenerEntry struct {
	id uint32
	l  touchview.Listener
}

// Source is a touchview.EventSource backed by Ebitengine input polling.
// The preventDefault results of listeners are ignored; Ebitengine has no
// default gesture handling to suppress.
type Source struct {
	listeners []listenerEntry
	nextID    uint32

	prev  []touchview.Touch
	cur   []touchview.Touch
	idBuf []ebiten.TouchID
}

// New creates a Source with no listeners.
func New() *Source {
	return &Source{}
}

// Listen registers l and returns a function that removes it.
func (s *Source) Listen(l touchview.Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, l: l})
	return func() {
		for i := range s.listeners {
			if s.listeners[i].id == id {
				s.listeners = slices.Delete(s.listeners, i, i+1)
				return
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (s *Source) Listeners() int { return len(s.listeners) }

// Poll reads the current touch and wheel state from Ebitengine and
// dispatches the resulting events. Call it once per ebiten.Game.Update.
func (s *Source) Poll(now time.Time) {
	s.idBuf = ebiten.AppendTouchIDs(s.idBuf[:0])
	s.cur = s.cur[:0]
	for _, tid := range s.idBuf {
		tx, ty := ebiten.TouchPosition(tid)
		s.cur = append(s.cur, touchview.Touch{ID: int(tid), X: float64(tx), Y: float64(ty)})
	}
	s.Feed(now, s.cur)

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		cx, cy := ebiten.CursorPosition()
		s.FeedWheel(now, float64(cx), float64(cy), yoff)
	}
}

// Feed dispatches the transition from the previous frame's touches to cur.
// Releases are dispatched first, then new touches, then movement.
func (s *Source) Feed(now time.Time, cur []touchview.Touch) {
	cur = slices.Clone(cur)
	slices.SortFunc(cur, func(a, b touchview.Touch) int { return a.ID - b.ID })

	d := diffTouches(s.prev, cur)
	if d.ended {
		s.dispatch(func(l touchview.Listener) {
			l.TouchEnd(touchview.TouchEvent{Touches: d.remaining, Time: now})
		})
	}
	if d.started {
		s.dispatch(func(l touchview.Listener) {
			l.TouchStart(touchview.TouchEvent{Touches: cur, Time: now})
		})
	} else if d.moved {
		s.dispatch(func(l touchview.Listener) {
			l.TouchMove(touchview.TouchEvent{Touches: cur, Time: now})
		})
	}
	s.prev = append(s.prev[:0], cur...)
}

// FeedWheel dispatches a wheel event at (x, y) for an Ebitengine vertical
// wheel offset.
func (s *Source) FeedWheel(now time.Time, x, y, yoff float64) {
	ev := touchview.WheelEvent{DeltaY: -yoff * WheelLineHeight, X: x, Y: y, Time: now}
	s.dispatch(func(l touchview.Listener) { l.Wheel(ev) })
}

func (s *Source) dispatch(fn func(touchview.Listener)) {
	for _, e := range slices.Clone(s.listeners) {
		fn(e.l)
	}
}

// frameDiff describes how the set of touches changed between two frames.
type frameDiff struct {
	ended     bool              // a touch from the previous frame is gone
	started   bool              // a touch not in the previous frame appeared
	moved     bool              // a surviving touch changed position
	remaining []touchview.Touch // surviving touches at their current positions
}

func diffTouches(prev, cur []touchview.Touch) frameDiff {
	var d frameDiff
	for _, c := range cur {
		p, ok := findTouch(prev, c.ID)
		if !ok {
			d.started = true
			continue
		}
		d.remaining = append(d.remaining, c)
		if p.X != c.X || p.Y != c.Y {
			d.moved = true
		}
	}
	for _, p := range prev {
		if _, ok := findTouch(cur, p.ID); !ok {
			d.ended = true
			break
		}
	}
	return d
}

func findTouch(ts []touchview.Touch, id int) (touchview.Touch, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return touchview.Touch{}, false
}
