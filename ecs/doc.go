// Package ecs bridges touchview gesture callbacks into an ECS world.
//
// [NewDonburiSink] publishes every zoom, pan, double-tap and long-press as a
// typed [Donburi] event. Subscribe to [GestureEventType] in your systems and
// drain the queue once per tick with ProcessEvents.
//
// Usage:
//
//	cfg := touchview.DefaultConfig()
//	cfg.Sink = ecs.NewDonburiSink(world)
//	engine := touchview.New(surface, cfg)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
