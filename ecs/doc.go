// Package ecs provides ECS adapters for hitgraph dispatch.
//
// The primary adapter is [NewDonburiStore], which bridges completed hitgraph
// dispatches (click, wheel, pointer transitions) into a [Donburi] world as
// typed events. Subscribe to [DispatchEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	dispatcher.SetEventSink(store)
//
// Nodes that implement [EntityNode] have their entity attached to each
// event, so systems can look up components without keeping a node map.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
