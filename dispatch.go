package hitgraph

import (
	"errors"
	"fmt"
	"time"
)

// maxAncestorDepth bounds the ancestor walk so a malformed registry cannot
// hang dispatch.
const maxAncestorDepth = 256

var (
	// ErrAncestorCycle reports a parent chain that loops back on itself.
	ErrAncestorCycle = errors.New("hitgraph: ancestor chain contains a cycle")
	// ErrAncestorDepth reports a parent chain longer than the walk allows.
	ErrAncestorDepth = errors.New("hitgraph: ancestor chain too deep")
)

// AncestorChain returns node followed by its registered parents, nearest
// first. The walk stops at a node with no registered parent. If the chain
// loops or runs past the depth limit, the prefix collected so far is
// returned together with an error wrapping ErrAncestorCycle or
// ErrAncestorDepth.
func AncestorChain(reg *Registry, node Node) ([]Node, error) {
	return reg.appendChain(nil, node)
}

func (r *Registry) appendChain(buf []Node, node Node) ([]Node, error) {
	links, err := r.snapshotChain(nil, node)
	for _, l := range links {
		buf = append(buf, l.node)
	}
	return buf, err
}

// DispatchResult summarizes a single dispatch.
type DispatchResult struct {
	// Target is the resolved hit node, or nil when nothing was hit.
	Target Node
	// Invoked counts handlers that ran (including ones that panicked).
	Invoked int
	// Stopped is true when a handler called StopPropagation.
	Stopped bool
}

// DispatchRecord describes a completed dispatch for an EventSink.
type DispatchRecord struct {
	Kind    EventKind
	Target  Node
	Point   Vec2 // scene space
	Native  NativeEvent
	Invoked int
	Stopped bool
}

// EventSink is the interface for optional bridges (ECS, recorders). When set
// on a Dispatcher, every dispatch that resolved a target is reported.
type EventSink interface {
	EmitDispatch(record DispatchRecord)
}

type listener struct {
	id uint32
	fn func(EventKind, NativeEvent)
}

// CallbackHandle allows removing a registered raw listener.
type CallbackHandle struct {
	id uint32
	d  *Dispatcher
}

// Remove unregisters the listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	var kept []listener
	for _, l := range h.d.listeners {
		if l.id != h.id {
			kept = append(kept, l)
		}
	}
	h.d.listeners = kept
}

// Dispatcher resolves native events to registered nodes and delivers them
// along the ancestor chain. It also owns the per-pointer hover and capture
// state. A Dispatcher is driven from a single event loop and is not safe for
// concurrent use; its Registry is.
type Dispatcher struct {
	reg     *Registry
	surface Surface
	debug   bool

	hover     map[int]Node
	captured  map[int]Node
	listeners []listener
	nextID    uint32
	sink      EventSink
}

// NewDispatcher creates a dispatcher for the given registry and surface.
func NewDispatcher(reg *Registry, surface Surface) *Dispatcher {
	if reg == nil {
		panic("hitgraph: NewDispatcher with nil registry")
	}
	if surface == nil {
		panic("hitgraph: NewDispatcher with nil surface")
	}
	return &Dispatcher{
		reg:      reg,
		surface:  surface,
		hover:    make(map[int]Node),
		captured: make(map[int]Node),
	}
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Surface returns the dispatcher's surface.
func (d *Dispatcher) Surface() Surface {
	return d.surface
}

// SetEventSink sets the optional dispatch bridge. Pass nil to clear it.
func (d *Dispatcher) SetEventSink(sink EventSink) {
	d.sink = sink
}

// SetDebugMode enables or disables per-dispatch timing logs and chain depth
// warnings. Output goes to Logger at Debug and Warn level.
func (d *Dispatcher) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Listen registers a raw listener that sees every native event passed to
// Dispatch, before hit testing and whether or not anything is hit.
func (d *Dispatcher) Listen(fn func(EventKind, NativeEvent)) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})
	return CallbackHandle{id: id, d: d}
}

// CapturePointer routes all events for pointerID to node, bypassing hit
// testing, until ReleasePointer or the next pointerup/pointercancel.
func (d *Dispatcher) CapturePointer(pointerID int, node Node) {
	if node == nil {
		d.ReleasePointer(pointerID)
		return
	}
	checkNode(node, "CapturePointer")
	d.captured[pointerID] = node
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (d *Dispatcher) ReleasePointer(pointerID int) {
	delete(d.captured, pointerID)
}

// Hovered returns the node pointerID currently hovers, or nil.
func (d *Dispatcher) Hovered(pointerID int) Node {
	return d.hover[pointerID]
}

// ClearHover forgets the hovered node for pointerID without firing events.
func (d *Dispatcher) ClearHover(pointerID int) {
	delete(d.hover, pointerID)
}

// Leave fires pointerout and pointerleave for the node ev.PointerID hovers,
// if any, and clears its hover state.
func (d *Dispatcher) Leave(ev NativeEvent) {
	d.updateHover(ev.PointerID, nil, ev, d.surface.Bounds())
}

// TargetAt returns the node an event would be delivered to: the captured
// node for its pointer, else the front-most hit, else nil.
func (d *Dispatcher) TargetAt(ev NativeEvent) Node {
	return d.resolveTarget(ev, d.surface.Bounds())
}

func (d *Dispatcher) resolveTarget(ev NativeEvent, bounds Rect) Node {
	if n, ok := d.captured[ev.PointerID]; ok {
		if d.reg.Contains(n) {
			return n
		}
		delete(d.captured, ev.PointerID)
	}
	p := ToSurfaceSpace(ev, bounds)
	hits := d.reg.appendHits(nil, p.X, p.Y)
	if len(hits) == 0 {
		return nil
	}
	return hits[0]
}

// Dispatch delivers a native event of the given kind. The target is the
// front-most registered node under the pointer; handlers run on the target
// and then on each registered ancestor until one calls StopPropagation.
// Hitting nothing is a silent no-op.
//
// Pointer moves also update hover state, firing pointerout, pointerleave,
// pointerover and pointerenter before the move itself. Pointer up and cancel
// release any capture; cancel also clears hover.
func (d *Dispatcher) Dispatch(kind EventKind, ev NativeEvent) DispatchResult {
	var stats dispatchStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	for _, l := range d.listeners {
		l.fn(kind, ev)
	}

	bounds := d.surface.Bounds()
	target := d.resolveTarget(ev, bounds)

	if d.debug {
		stats.resolveTime = time.Since(t0)
		t0 = time.Now()
	}

	if kind == EventPointerMove {
		d.updateHover(ev.PointerID, target, ev, bounds)
	}

	var res DispatchResult
	if target != nil {
		res = d.deliver(kind, ev, target, bounds)
	}

	switch kind {
	case EventPointerUp:
		d.ReleasePointer(ev.PointerID)
	case EventPointerCancel:
		d.ReleasePointer(ev.PointerID)
		d.updateHover(ev.PointerID, nil, ev, bounds)
	}

	if d.debug {
		stats.deliverTime = time.Since(t0)
		stats.invoked = res.Invoked
		d.debugLog(kind, res.Target, stats)
	}
	return res
}

// deliver builds the synthetic event and walks the ancestor chain of target.
// Non-bubbling kinds only reach target. Handlers come from a snapshot taken
// before the first one runs; registry changes made by handlers apply from
// the next dispatch. A target that is no longer registered receives nothing.
func (d *Dispatcher) deliver(kind EventKind, ev NativeEvent, target Node, bounds Rect) DispatchResult {
	var chain []chainLink
	if kind.Bubbles() {
		var err error
		chain, err = d.reg.snapshotChain(nil, target)
		if err != nil {
			Logger().Error("hitgraph: malformed ancestor chain",
				"event", kind.String(), "target", fmt.Sprintf("%v", target), "err", err)
		}
		if d.debug {
			debugCheckChainDepth(len(chain), target)
		}
	} else {
		chain = []chainLink{d.reg.snapshotNode(target)}
	}
	if len(chain) == 0 || !chain[0].registered {
		return DispatchResult{}
	}

	e := &Event{
		Kind:   kind,
		Native: ev,
		Target: target,
		Point:  ToSceneSpace(ev, bounds),
	}
	res := DispatchResult{Target: target}
	for _, l := range chain {
		if d.invoke(l, e) {
			res.Invoked++
		}
		if e.stopped {
			res.Stopped = true
			break
		}
	}

	if d.sink != nil {
		d.sink.EmitDispatch(DispatchRecord{
			Kind:    kind,
			Target:  target,
			Point:   e.Point,
			Native:  ev,
			Invoked: res.Invoked,
			Stopped: res.Stopped,
		})
	}
	return res
}

// invoke runs the link's handler for e.Kind, if any. A panicking handler is
// logged and treated as having run; bubbling continues.
func (d *Dispatcher) invoke(l chainLink, e *Event) (ran bool) {
	fn := l.handlers.For(e.Kind)
	if fn == nil {
		return false
	}
	node := l.node
	e.CurrentTarget = node
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("hitgraph: handler panicked",
				"event", e.Kind.String(), "node", fmt.Sprintf("%v", node), "panic", r)
		}
	}()
	ran = true
	fn(e)
	return ran
}

// updateHover diffs the hovered node for pointerID against target and fires
// the transition events.
func (d *Dispatcher) updateHover(pointerID int, target Node, ev NativeEvent, bounds Rect) {
	prev := d.hover[pointerID]
	if prev == target {
		return
	}
	if target == nil {
		delete(d.hover, pointerID)
	} else {
		d.hover[pointerID] = target
	}

	var prevChain, nextChain []Node
	if prev != nil {
		prevChain, _ = d.reg.appendChain(nil, prev)
	}
	if target != nil {
		nextChain, _ = d.reg.appendChain(nil, target)
	}

	if prev != nil {
		d.deliver(EventPointerOut, ev, prev, bounds)
		// Innermost first.
		for _, n := range prevChain {
			if !containsNode(nextChain, n) {
				d.deliver(EventPointerLeave, ev, n, bounds)
			}
		}
	}
	if target != nil {
		d.deliver(EventPointerOver, ev, target, bounds)
		// Outermost first.
		for i := len(nextChain) - 1; i >= 0; i-- {
			if n := nextChain[i]; !containsNode(prevChain, n) {
				d.deliver(EventPointerEnter, ev, n, bounds)
			}
		}
	}
}

func containsNode(s []Node, n Node) bool {
	for _, c := range s {
		if c == n {
			return true
		}
	}
	return false
}
