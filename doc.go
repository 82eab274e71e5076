// Package touchview is a multi-touch gesture engine for zoomable,
// pannable canvases such as a seating plan.
//
// An [Engine] listens to a single surface and classifies its input into
// pan, pinch, double-tap, long-press and wheel-zoom gestures. It owns the
// resulting [ViewTransform] (scale and pan offset) which the renderer reads
// every frame, and pushes every change to callbacks.
//
// # Quick start
//
//	engine := touchview.New(touchview.FixedSurface{Width: 640, Height: 480}, touchview.Config{
//		OnZoom: func(scale, ox, oy float64) { /* repaint */ },
//		OnPan:  func(dx, dy float64) { /* repaint */ },
//	})
//	engine.Attach(source) // any EventSource, e.g. ebiteninput.Source
//	defer engine.Close()
//
// Call [Engine.Update] once per frame so long-press timers and animated
// resets advance. The engine is single-threaded: dispatch input and call
// Update from the same goroutine.
//
// # Gestures
//
// One touch pans in increments once it moves more than [PanThreshold]
// pixels on either axis. Two touches pinch; the scale is the initial scale
// times the ratio of current to initial finger distance, clamped to
// [Config.MinZoom, Config.MaxZoom]. Lifting one finger of a pinch hands off
// to a pan on the remaining finger. Two taps within [Config.DoubleTapDelay]
// and [DoubleTapRadius] pixels fire OnDoubleTap; a touch held still for
// [Config.LongPressDelay] fires OnLongPress. Wheel input zooms by
// -DeltaY*[WheelZoomStep] around the cursor.
//
// # Unmounted surfaces
//
// When the [Surface] reports no bounds, callbacks that need
// surface-relative coordinates are skipped while the engine keeps tracking
// state. No gesture path returns an error or panics.
//
// # Testing
//
// [Simulator] drives an engine from queued synthetic input on a simulated
// clock, and [LoadScript] replays YAML or JSON gesture scripts through it.
// The ecs sub-module forwards gesture events into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package touchview
