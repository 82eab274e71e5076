package touchview

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMinZoom        = 0.5
	DefaultMaxZoom        = 3.0
	DefaultDoubleTapDelay = 300 * time.Millisecond
	DefaultLongPressDelay = 500 * time.Millisecond

	// DoubleTapRadius is the maximum distance in pixels between two taps
	// that still counts as a double-tap.
	DoubleTapRadius = 50.0
	// PanThreshold is the per-axis movement in pixels a single touch must
	// exceed before a pan delta is reported.
	PanThreshold = 5.0
	// WheelZoomStep is the scale change per unit of wheel DeltaY.
	WheelZoomStep = 0.01
)

// Config is supplied once to New and never changes for the engine's
// lifetime. Zero-valued fields take their defaults.
//
// Callers must supply MinZoom <= MaxZoom; the engine does not check it.
// A MinZoom of 0 means "use DefaultMinZoom", so a minimum of exactly 0
// cannot be configured; use a small positive value instead.
type Config struct {
	MinZoom        float64
	MaxZoom        float64
	DoubleTapDelay time.Duration
	LongPressDelay time.Duration

	// OnZoom fires with the new scale and the zoom origin relative to the
	// surface.
	OnZoom func(scale, originX, originY float64)
	// OnPan fires with the incremental offset since the previous pan.
	OnPan func(deltaX, deltaY float64)
	// OnDoubleTap fires with the second tap's position relative to the surface.
	OnDoubleTap func(x, y float64)
	// OnLongPress fires once when a single touch is held for LongPressDelay.
	OnLongPress func(x, y float64)

	// Sink, if set, receives an Event for every callback invocation.
	Sink EventSink
	// Logger receives debug output about gesture transitions. Nil discards.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a Config with every option at its default.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.MinZoom == 0 {
		c.MinZoom = DefaultMinZoom
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = DefaultMaxZoom
	}
	if c.DoubleTapDelay == 0 {
		c.DoubleTapDelay = DefaultDoubleTapDelay
	}
	if c.LongPressDelay == 0 {
		c.LongPressDelay = DefaultLongPressDelay
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	return c
}
