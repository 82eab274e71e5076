package ecs

import (
	"github.com/phanxgames/touchview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries one touchview.Event per engine callback. Systems
// subscribe to it and see each zoom, pan, double-tap or long-press in the
// order the engine fired them.
var GestureEventType = events.NewEventType[touchview.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a sink that queues every gesture on world under
// GestureEventType. Nothing reaches subscribers until the world's event
// queue is processed, so set it as Config.Sink and drain once per tick.
func NewDonburiSink(world donburi.World) touchview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event touchview.Event) {
	GestureEventType.Publish(s.world, event)
}
