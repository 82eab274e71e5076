package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/touchview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []touchview.Event
	GestureEventType.Subscribe(world, func(w donburi.World, e touchview.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(touchview.Event{
		Type:    touchview.EventZoom,
		Scale:   2.0,
		OriginX: 100,
		OriginY: 200,
	})
	sink.EmitEvent(touchview.Event{Type: touchview.EventPan, DeltaX: 5, DeltaY: -3})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %v", received)
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != touchview.EventZoom || e0.Scale != 2.0 || e0.OriginX != 100 || e0.OriginY != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != touchview.EventPan || e1.DeltaX != 5 || e1.DeltaY != -3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e touchview.Event) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e touchview.Event) {
		count2++
	})

	sink.EmitEvent(touchview.Event{Type: touchview.EventDoubleTap})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_EngineIntegration(t *testing.T) {
	world := donburi.NewWorld()
	cfg := touchview.DefaultConfig()
	cfg.Sink = NewDonburiSink(world)
	engine := touchview.New(touchview.FixedSurface{Width: 800, Height: 600}, cfg)

	var types []touchview.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e touchview.Event) {
		types = append(types, e.Type)
	})

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	engine.Wheel(touchview.WheelEvent{DeltaY: -10, X: 10, Y: 10, Time: t0})
	engine.Reset()
	GestureEventType.ProcessEvents(world)

	want := []touchview.EventType{touchview.EventZoom, touchview.EventZoom, touchview.EventPan}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}
