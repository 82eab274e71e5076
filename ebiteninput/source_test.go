package ebiteninput

import (
	"testing"
	"time"

	"github.com/phanxgames/touchview"
)

var t0 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type call struct {
	kind    string
	touches []touchview.Touch
	deltaY  float64
}

// recordingListener records every dispatched event.
type recordingListener struct {
	calls []call
}

func (r *recordingListener) TouchStart(ev touchview.TouchEvent) bool {
	r.calls = append(r.calls, call{kind: "start", touches: ev.Touches})
	return false
}

func (r *recordingListener) TouchMove(ev touchview.TouchEvent) bool {
	r.calls = append(r.calls, call{kind: "move", touches: ev.Touches})
	return false
}

func (r *recordingListener) TouchEnd(ev touchview.TouchEvent) bool {
	r.calls = append(r.calls, call{kind: "end", touches: ev.Touches})
	return false
}

func (r *recordingListener) Wheel(ev touchview.WheelEvent) bool {
	r.calls = append(r.calls, call{kind: "wheel", deltaY: ev.DeltaY})
	return true
}

func kinds(calls []call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.kind
	}
	return out
}

func equalKinds(got []call, want ...string) bool {
	k := kinds(got)
	if len(k) != len(want) {
		return false
	}
	for i := range k {
		if k[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDiffTouches(t *testing.T) {
	a := touchview.Touch{ID: 1, X: 10, Y: 10}
	aMoved := touchview.Touch{ID: 1, X: 12, Y: 10}
	b := touchview.Touch{ID: 2, X: 50, Y: 50}

	tests := []struct {
		name                  string
		prev, cur             []touchview.Touch
		ended, started, moved bool
		remaining             int
	}{
		{"nothing", nil, nil, false, false, false, 0},
		{"press", nil, []touchview.Touch{a}, false, true, false, 0},
		{"hold still", []touchview.Touch{a}, []touchview.Touch{a}, false, false, false, 1},
		{"move", []touchview.Touch{a}, []touchview.Touch{aMoved}, false, false, true, 1},
		{"second finger", []touchview.Touch{a}, []touchview.Touch{a, b}, false, true, false, 1},
		{"lift one", []touchview.Touch{a, b}, []touchview.Touch{b}, true, false, false, 1},
		{"release all", []touchview.Touch{a}, nil, true, false, false, 0},
		{"swap fingers", []touchview.Touch{a}, []touchview.Touch{b}, true, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diffTouches(tt.prev, tt.cur)
			if d.ended != tt.ended || d.started != tt.started || d.moved != tt.moved {
				t.Errorf("diff = %+v, want ended=%v started=%v moved=%v", d, tt.ended, tt.started, tt.moved)
			}
			if len(d.remaining) != tt.remaining {
				t.Errorf("remaining = %v, want %d touches", d.remaining, tt.remaining)
			}
		})
	}
}

func TestFeedSequence(t *testing.T) {
	src := New()
	rec := &recordingListener{}
	src.Listen(rec)

	a := touchview.Touch{ID: 1, X: 10, Y: 10}
	b := touchview.Touch{ID: 2, X: 90, Y: 10}

	src.Feed(t0, []touchview.Touch{a})
	src.Feed(t0, []touchview.Touch{a}) // no change
	src.Feed(t0, []touchview.Touch{{ID: 1, X: 20, Y: 10}})
	src.Feed(t0, []touchview.Touch{{ID: 1, X: 20, Y: 10}, b})
	src.Feed(t0, []touchview.Touch{b})
	src.Feed(t0, nil)

	if !equalKinds(rec.calls, "start", "move", "start", "end", "end") {
		t.Fatalf("calls = %v", kinds(rec.calls))
	}
	if len(rec.calls[2].touches) != 2 {
		t.Errorf("second start should list both touches, got %v", rec.calls[2].touches)
	}
	if rem := rec.calls[3].touches; len(rem) != 1 || rem[0].ID != 2 {
		t.Errorf("end should list the remaining touch, got %v", rem)
	}
	if len(rec.calls[4].touches) != 0 {
		t.Errorf("final end should list no touches, got %v", rec.calls[4].touches)
	}
}

func TestFeedSortsByID(t *testing.T) {
	src := New()
	rec := &recordingListener{}
	src.Listen(rec)

	input := []touchview.Touch{{ID: 5, X: 1}, {ID: 3, X: 2}}
	src.Feed(t0, input)
	got := rec.calls[0].touches
	if got[0].ID != 3 || got[1].ID != 5 {
		t.Errorf("touches not sorted: %v", got)
	}
	if input[0].ID != 5 {
		t.Error("Feed must not reorder the caller's slice")
	}
}

func TestFeedWheel(t *testing.T) {
	src := New()
	rec := &recordingListener{}
	src.Listen(rec)
	src.FeedWheel(t0, 3, 4, 1)
	if len(rec.calls) != 1 || rec.calls[0].deltaY != -100 {
		t.Errorf("calls = %+v, want one wheel with deltaY -100", rec.calls)
	}
}

func TestListenDetach(t *testing.T) {
	src := New()
	rec1 := &recordingListener{}
	rec2 := &recordingListener{}
	detach := src.Listen(rec1)
	src.Listen(rec2)
	if src.Listeners() != 2 {
		t.Fatalf("Listeners = %d, want 2", src.Listeners())
	}
	detach()
	detach()
	if src.Listeners() != 1 {
		t.Fatalf("Listeners = %d, want 1", src.Listeners())
	}
	src.FeedWheel(t0, 0, 0, 1)
	if len(rec1.calls) != 0 || len(rec2.calls) != 1 {
		t.Errorf("detached listener received events: %d / %d", len(rec1.calls), len(rec2.calls))
	}
}

func TestSourceDrivesEngine(t *testing.T) {
	var zooms []float64
	e := touchview.New(touchview.FixedSurface{Width: 640, Height: 480}, touchview.Config{
		OnZoom: func(s, _, _ float64) { zooms = append(zooms, s) },
	})
	src := New()
	e.Attach(src)

	src.Feed(t0, []touchview.Touch{{ID: 1, X: 100, Y: 100}, {ID: 2, X: 200, Y: 100}})
	src.Feed(t0.Add(16*time.Millisecond), []touchview.Touch{{ID: 1, X: 50, Y: 100}, {ID: 2, X: 250, Y: 100}})
	if e.Scale() != 2 {
		t.Errorf("Scale = %v, want 2", e.Scale())
	}
	src.Feed(t0.Add(32*time.Millisecond), []touchview.Touch{{ID: 2, X: 250, Y: 100}})
	if e.State() != touchview.StatePanning {
		t.Errorf("State = %v, want panning", e.State())
	}

	e.Close()
	if src.Listeners() != 0 {
		t.Error("Close should detach the engine from the source")
	}
	src.FeedWheel(t0, 0, 0, 1)
	if len(zooms) != 1 {
		t.Errorf("zooms = %v, want 1", zooms)
	}
}
