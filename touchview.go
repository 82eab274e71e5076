package touchview

import "time"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in client (screen) coordinates. The
// origin is the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Relative converts client coordinates to coordinates relative to the
// rectangle's top-left corner.
func (r Rect) Relative(x, y float64) (float64, float64) {
	return x - r.X, y - r.Y
}

// Touch is a single active contact point in client coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent carries every touch currently on the surface. For touch-end
// events Touches holds the touches that remain after the release.
type TouchEvent struct {
	Touches []Touch
	Time    time.Time
}

// WheelEvent is a scroll-wheel input at the cursor position. DeltaY follows
// the browser convention: positive values scroll down (zoom out).
type WheelEvent struct {
	DeltaY float64
	X, Y   float64
	Time   time.Time
}

// Surface resolves the bounding box of the element the engine is attached
// to. ok is false when the element is not mounted.
type Surface interface {
	Bounds() (r Rect, ok bool)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() (Rect, bool)

// Bounds calls f.
func (f SurfaceFunc) Bounds() (Rect, bool) { return f() }

// FixedSurface is a Surface that is always mounted at the given rectangle.
type FixedSurface Rect

// Bounds returns the fixed rectangle.
func (s FixedSurface) Bounds() (Rect, bool) { return Rect(s), true }

// Listener receives raw input dispatched by an EventSource. Each method
// reports whether the host should suppress the platform's default handling
// (scrolling, page zoom) for that event.
type Listener interface {
	TouchStart(ev TouchEvent) bool
	TouchMove(ev TouchEvent) bool
	TouchEnd(ev TouchEvent) bool
	Wheel(ev WheelEvent) bool
}

// EventSource is the element that emits touch and wheel input. Listen
// registers l and returns a function that removes it again.
type EventSource interface {
	Listen(l Listener) (detach func())
}

// GestureState is the engine's active gesture. The states are mutually
// exclusive.
type GestureState uint8

const (
	StateNone     GestureState = iota // no gesture in progress
	StatePanning                      // single-touch drag
	StatePinching                     // two-touch zoom
)

// String returns the lower-case state name.
func (s GestureState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StatePanning:
		return "panning"
	case StatePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// EventType identifies which callback an Event mirrors.
type EventType uint8

const (
	EventZoom      EventType = iota // scale changed (pinch, wheel, reset)
	EventPan                        // position moved by a delta
	EventDoubleTap                  // two taps in quick succession
	EventLongPress                  // single touch held without moving
)

// String returns the lower-case event name.
func (t EventType) String() string {
	switch t {
	case EventZoom:
		return "zoom"
	case EventPan:
		return "pan"
	case EventDoubleTap:
		return "doubletap"
	case EventLongPress:
		return "longpress"
	default:
		return "unknown"
	}
}

// Event carries the parameters of one callback invocation for an EventSink.
type Event struct {
	Type EventType
	// Zoom fields (valid for EventZoom)
	Scale   float64
	OriginX float64
	OriginY float64
	// Pan fields (valid for EventPan)
	DeltaX float64
	DeltaY float64
	// Tap fields (valid for EventDoubleTap and EventLongPress), relative to
	// the surface bounds.
	X float64
	Y float64
}

// EventSink is the interface for optional ECS integration. When set in
// Config, every callback invocation is also forwarded as an Event.
type EventSink interface {
	EmitEvent(event Event)
}
