// Package hitgraph is a pointer-event dispatch layer for retained-mode 2D
// scene graphs.
//
// The scene graph itself (shapes, transforms, rendering) belongs to an
// external graphics engine. hitgraph only keeps a [Registry] of nodes that
// want events, resolves native pointer, mouse and wheel events to the
// front-most hit node, and delivers a synthetic [Event] up the registered
// ancestor chain with DOM-style target, currentTarget and stopPropagation.
//
// # Quick start
//
//	reg := hitgraph.NewRegistry()
//	d := hitgraph.NewDispatcher(reg, hitgraph.Rect{Width: 400, Height: 400})
//
//	circle := hitgraph.NewArea("dot", hitgraph.HitCircle{Radius: 50}, 200, 200)
//	reg.Register(circle, hitgraph.Handlers{
//		OnClick: func(e *hitgraph.Event) { fmt.Println("clicked at", e.Point) },
//	}, nil)
//
//	d.Dispatch(hitgraph.EventClick, hitgraph.NativeEvent{ClientX: 200, ClientY: 200})
//
// # Nodes
//
// A [Node] is any comparable value, normally a pointer to an engine object.
// hitgraph talks to it only through optional capabilities: [Visibility],
// [PointContainer] and [Stacker]. A node that cannot test containment is
// never hit. The ggshape subpackage provides nodes backed by gogpu/gg paths;
// [Area] is a minimal built-in node.
//
// # Coordinate spaces
//
// Hit testing runs in surface space (origin at the surface's top-left).
// Handlers receive [Event.Point] in scene space (origin at the surface
// center). See [ToSurfaceSpace] and [ToSceneSpace].
//
// # Input and zoom
//
// [Input] turns per-frame pointer samples into pointerdown, pointerup,
// click, contextmenu and dblclick. [EbitenInput] feeds it from
// [Ebitengine]. [ZUI] is a wheel-zoom and drag-pan controller animated
// with [gween]. The ecs submodule bridges dispatches into a [Donburi] world
// and the telemetry submodule records them as OpenTelemetry spans; both
// plug in through [EventSink].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package hitgraph
