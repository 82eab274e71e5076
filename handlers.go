package touchview

// --- Handler registry ---

type zoomHandler struct {
	id uint32
	fn func(scale, originX, originY float64)
}

type pointHandler struct {
	id uint32
	fn func(x, y float64)
}

type handlerRegistry struct {
	zoom      []zoomHandler
	pan       []pointHandler
	doubleTap []pointHandler
	longPress []pointHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this observer so it no longer fires. Removing twice,
// or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventZoom:
		h.reg.zoom = removeZoomHandler(h.reg.zoom, h.id)
	case EventPan:
		h.reg.pan = removePointHandler(h.reg.pan, h.id)
	case EventDoubleTap:
		h.reg.doubleTap = removePointHandler(h.reg.doubleTap, h.id)
	case EventLongPress:
		h.reg.longPress = removePointHandler(h.reg.longPress, h.id)
	}
}

func removeZoomHandler(s []zoomHandler, id uint32) []zoomHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zoomHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePointHandler(s []pointHandler, id uint32) []pointHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Observer registration ---

// OnZoom registers an observer for scale changes. It fires after
// Config.OnZoom.
func (e *Engine) OnZoom(fn func(scale, originX, originY float64)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.zoom = append(e.handlers.zoom, zoomHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventZoom}
}

// OnPan registers an observer for pan deltas. It fires after Config.OnPan.
func (e *Engine) OnPan(fn func(deltaX, deltaY float64)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.pan = append(e.handlers.pan, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventPan}
}

// OnDoubleTap registers an observer for double-taps.
func (e *Engine) OnDoubleTap(fn func(x, y float64)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.doubleTap = append(e.handlers.doubleTap, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventDoubleTap}
}

// OnLongPress registers an observer for long-presses.
func (e *Engine) OnLongPress(fn func(x, y float64)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.longPress = append(e.handlers.longPress, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventLongPress}
}

// --- Event dispatch ---

// Observers are snapshotted before iterating so a callback that removes a
// handle does not disturb the loop.

func (e *Engine) fireZoom(scale, originX, originY float64) {
	if e.cfg.OnZoom != nil {
		e.cfg.OnZoom(scale, originX, originY)
	}
	for _, h := range append([]zoomHandler(nil), e.handlers.zoom...) {
		h.fn(scale, originX, originY)
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.EmitEvent(Event{Type: EventZoom, Scale: scale, OriginX: originX, OriginY: originY})
	}
}

func (e *Engine) firePan(deltaX, deltaY float64) {
	if e.cfg.OnPan != nil {
		e.cfg.OnPan(deltaX, deltaY)
	}
	for _, h := range append([]pointHandler(nil), e.handlers.pan...) {
		h.fn(deltaX, deltaY)
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.EmitEvent(Event{Type: EventPan, DeltaX: deltaX, DeltaY: deltaY})
	}
}

func (e *Engine) fireDoubleTap(x, y float64) {
	if e.cfg.OnDoubleTap != nil {
		e.cfg.OnDoubleTap(x, y)
	}
	for _, h := range append([]pointHandler(nil), e.handlers.doubleTap...) {
		h.fn(x, y)
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.EmitEvent(Event{Type: EventDoubleTap, X: x, Y: y})
	}
}

func (e *Engine) fireLongPress(x, y float64) {
	if e.cfg.OnLongPress != nil {
		e.cfg.OnLongPress(x, y)
	}
	for _, h := range append([]pointHandler(nil), e.handlers.longPress...) {
		h.fn(x, y)
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.EmitEvent(Event{Type: EventLongPress, X: x, Y: y})
	}
}
