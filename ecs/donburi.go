package ecs

import (
	"github.com/phanxgames/hitgraph"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EntityNode is implemented by scene nodes that are backed by an ECS entity.
type EntityNode interface {
	Entity() donburi.Entity
}

// DispatchEvent is published once per dispatch that hit a node.
type DispatchEvent struct {
	hitgraph.DispatchRecord

	// Entity is the target's entity, or donburi.Null when the target does
	// not implement EntityNode.
	Entity donburi.Entity
}

// DispatchEventType is the Donburi event type for hitgraph dispatches.
// Subscribe to this in your ECS systems to receive them.
var DispatchEventType = events.NewEventType[DispatchEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Dispatches are published to DispatchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) hitgraph.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitDispatch(record hitgraph.DispatchRecord) {
	ev := DispatchEvent{DispatchRecord: record, Entity: donburi.Null}
	if en, ok := record.Target.(EntityNode); ok {
		ev.Entity = en.Entity()
	}
	DispatchEventType.Publish(s.world, ev)
}
