package hitgraph

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// recorder collects "kind target@current" strings for every handler call.
type recorder struct {
	calls []string
}

func (r *recorder) handler(e *Event) {
	r.calls = append(r.calls, fmt.Sprintf("%s %s@%s", e.Kind, nameOf(e.Target), nameOf(e.CurrentTarget)))
}

// all returns a handler set with every kind wired to the recorder.
func (r *recorder) all() Handlers {
	var h Handlers
	for k := EventKind(0); k < numEventKinds; k++ {
		h.Set(k, r.handler)
	}
	return h
}

func (r *recorder) reset() { r.calls = nil }

func nameOf(n Node) string {
	if a, ok := n.(*Area); ok {
		return a.Name
	}
	return fmt.Sprintf("%v", n)
}

func newTestDispatcher(w, h float64) (*Registry, *Dispatcher) {
	reg := NewRegistry()
	return reg, NewDispatcher(reg, Rect{Width: w, Height: h})
}

func at(x, y float64) NativeEvent {
	return NativeEvent{ClientX: x, ClientY: y}
}

// --- Ancestor chain ---

func TestAncestorChain(t *testing.T) {
	reg := NewRegistry()
	root := NewArea("root", nil, 0, 0)
	mid := NewArea("mid", nil, 0, 0)
	leaf := NewArea("leaf", nil, 0, 0)
	reg.Register(root, Handlers{}, nil)
	reg.Register(mid, Handlers{}, root)
	reg.Register(leaf, Handlers{}, mid)

	chain, err := AncestorChain(reg, leaf)
	if err != nil {
		t.Fatalf("AncestorChain: %v", err)
	}
	want := []Node{leaf, mid, root}
	if !reflect.DeepEqual(chain, want) {
		t.Errorf("chain = %v, want %v", chain, want)
	}
}

func TestAncestorChainCycle(t *testing.T) {
	reg := NewRegistry()
	a := NewArea("a", nil, 0, 0)
	b := NewArea("b", nil, 0, 0)
	reg.Register(a, Handlers{}, b)
	reg.Register(b, Handlers{}, a)

	chain, err := AncestorChain(reg, a)
	if !errors.Is(err, ErrAncestorCycle) {
		t.Fatalf("expected ErrAncestorCycle, got %v", err)
	}
	if len(chain) != 2 || chain[0] != Node(a) || chain[1] != Node(b) {
		t.Errorf("chain prefix = %v, want [a b]", chain)
	}
}

func TestAncestorChainSelfParent(t *testing.T) {
	reg := NewRegistry()
	a := NewArea("a", nil, 0, 0)
	reg.Register(a, Handlers{}, a)

	chain, err := AncestorChain(reg, a)
	if !errors.Is(err, ErrAncestorCycle) {
		t.Fatalf("expected ErrAncestorCycle, got %v", err)
	}
	if len(chain) != 1 {
		t.Errorf("chain = %v, want [a]", chain)
	}
}

func TestAncestorChainDepth(t *testing.T) {
	reg := NewRegistry()
	var parent Node
	var last *Area
	for i := 0; i < maxAncestorDepth+10; i++ {
		n := NewArea(fmt.Sprintf("n%d", i), nil, 0, 0)
		reg.Register(n, Handlers{}, parent)
		parent = n
		last = n
	}
	chain, err := AncestorChain(reg, last)
	if !errors.Is(err, ErrAncestorDepth) {
		t.Fatalf("expected ErrAncestorDepth, got %v", err)
	}
	if len(chain) != maxAncestorDepth {
		t.Errorf("len(chain) = %d, want %d", len(chain), maxAncestorDepth)
	}
}

// --- Bubbling ---

func TestDispatchBubblesInnermostFirst(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	mid := NewArea("mid", nil, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(mid, rec.all(), root)
	reg.Register(leaf, rec.all(), mid)

	res := d.Dispatch(EventClick, at(50, 50))

	want := []string{"click leaf@leaf", "click leaf@mid", "click leaf@root"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if res.Target != Node(leaf) || res.Invoked != 3 || res.Stopped {
		t.Errorf("result = %+v", res)
	}
}

func TestDispatchSkipsAncestorsWithoutHandler(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	mid := NewArea("mid", nil, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(mid, Handlers{OnWheel: rec.handler}, root)
	reg.Register(leaf, Handlers{}, mid)

	res := d.Dispatch(EventClick, at(50, 50))
	want := []string{"click leaf@root"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if res.Invoked != 1 {
		t.Errorf("Invoked = %d, want 1", res.Invoked)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	mid := NewArea("mid", nil, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(mid, Handlers{OnClick: func(e *Event) {
		rec.handler(e)
		e.StopPropagation()
	}}, root)
	reg.Register(leaf, rec.all(), mid)

	res := d.Dispatch(EventClick, at(50, 50))
	want := []string{"click leaf@leaf", "click leaf@mid"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if !res.Stopped || res.Invoked != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestDispatchMissIsNoop(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	reg.Register(NewArea("a", HitRect{Width: 10, Height: 10}, 0, 0), rec.all(), nil)

	res := d.Dispatch(EventClick, at(300, 300))
	if res.Target != nil || res.Invoked != 0 || len(rec.calls) != 0 {
		t.Errorf("miss should invoke nothing, got %+v calls=%v", res, rec.calls)
	}
}

func TestDispatchCircleScenario(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	circle := NewArea("circle", HitCircle{Radius: 50}, 200, 200)

	var points []Vec2
	reg.Register(circle, Handlers{OnClick: func(e *Event) {
		points = append(points, e.Point)
	}}, nil)

	d.Dispatch(EventClick, at(200, 200))
	if len(points) != 1 || points[0] != (Vec2{0, 0}) {
		t.Fatalf("points = %v, want [{0 0}]", points)
	}

	d.Dispatch(EventClick, at(230, 160))
	if len(points) != 2 || points[1] != (Vec2{30, -40}) {
		t.Errorf("points = %v, want second point {30 -40}", points)
	}

	if res := d.Dispatch(EventClick, at(0, 0)); res.Invoked != 0 {
		t.Errorf("corner click invoked %d handlers", res.Invoked)
	}
	if len(points) != 2 {
		t.Errorf("corner click should not reach the circle")
	}
}

func TestDispatchSurfaceOffset(t *testing.T) {
	reg := NewRegistry()
	d := NewDispatcher(reg, Rect{X: 100, Y: 50, Width: 200, Height: 200})
	a := NewArea("a", HitRect{Width: 20, Height: 20}, 0, 0)

	var got Vec2
	reg.Register(a, Handlers{OnPointerDown: func(e *Event) { got = e.Point }}, nil)

	if res := d.Dispatch(EventPointerDown, at(5, 5)); res.Target != nil {
		t.Fatal("client point left of the surface should miss")
	}
	if res := d.Dispatch(EventPointerDown, at(110, 60)); res.Target != Node(a) {
		t.Fatal("expected hit in surface space")
	}
	if got != (Vec2{-90, -90}) {
		t.Errorf("Point = %v, want {-90 -90}", got)
	}
}

func TestDispatchFrontMostTarget(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	back := NewArea("back", HitRect{Width: 100, Height: 100}, 0, 0)
	front := NewArea("front", HitRect{Width: 100, Height: 100}, 0, 0)
	front.Z = 1
	reg.Register(front, rec.all(), nil)
	reg.Register(back, rec.all(), nil)

	d.Dispatch(EventClick, at(10, 10))
	want := []string{"click front@front"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchReRegisterReplaces(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	a := NewArea("a", HitRect{Width: 100, Height: 100}, 0, 0)

	var first, second int
	reg.Register(a, Handlers{OnClick: func(*Event) { first++ }}, nil)
	reg.Register(a, Handlers{OnClick: func(*Event) { second++ }}, nil)

	d.Dispatch(EventClick, at(10, 10))
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestDispatchAfterUnregister(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", HitRect{Width: 400, Height: 400}, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	leaf.Z = 1
	reg.Register(root, rec.all(), nil)
	reg.Register(leaf, rec.all(), root)

	reg.Unregister(leaf)
	res := d.Dispatch(EventClick, at(10, 10))
	if res.Target != Node(root) {
		t.Errorf("target = %v, want root", res.Target)
	}
	want := []string{"click root@root"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchNonBubblingKind(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(leaf, rec.all(), root)

	d.Dispatch(EventPointerEnter, at(10, 10))
	want := []string{"pointerenter leaf@leaf"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchCycleLogsAndDelivers(t *testing.T) {
	buf := captureLogs(t)
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	a := NewArea("a", HitRect{Width: 100, Height: 100}, 0, 0)
	b := NewArea("b", nil, 0, 0)
	reg.Register(a, rec.all(), b)
	reg.Register(b, rec.all(), a)

	res := d.Dispatch(EventClick, at(10, 10))
	want := []string{"click a@a", "click a@b"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if res.Invoked != 2 {
		t.Errorf("Invoked = %d, want 2", res.Invoked)
	}
	if !strings.Contains(buf.String(), "malformed ancestor chain") {
		t.Errorf("expected cycle to be logged, got: %s", buf.String())
	}
}

func TestDispatchHandlerPanicContinues(t *testing.T) {
	buf := captureLogs(t)
	reg, d := newTestDispatcher(400, 400)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	leaf := NewArea("leaf", HitRect{Width: 100, Height: 100}, 0, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(leaf, Handlers{OnClick: func(*Event) { panic("boom") }}, root)

	res := d.Dispatch(EventClick, at(10, 10))
	want := []string{"click leaf@root"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if res.Invoked != 2 {
		t.Errorf("Invoked = %d, want 2", res.Invoked)
	}
	if !strings.Contains(buf.String(), "handler panicked") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected panic to be logged, got: %s", buf.String())
	}
}

func TestDispatchHandlerMayMutateRegistry(t *testing.T) {
	reg, d := newTestDispatcher(400, 400)
	a := NewArea("a", HitRect{Width: 100, Height: 100}, 0, 0)
	b := NewArea("b", HitRect{Width: 100, Height: 100}, 200, 200)
	reg.Register(a, Handlers{OnClick: func(*Event) {
		reg.Unregister(a)
		reg.Register(b, Handlers{}, nil)
	}}, nil)

	d.Dispatch(EventClick, at(10, 10))
	if _, ok := reg.Lookup(a); ok {
		t.Error("a should have unregistered itself")
	}
	if _, ok := reg.Lookup(b); !ok {
		t.Error("b should have been registered from the handler")
	}
}

func TestDispatchUsesHandlersFromBeforeBubbling(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(reg *Registry, parent *Area, rec *recorder)
		first  []string
		second []string
	}{
		{
			name:   "ancestor unregistered",
			mutate: func(reg *Registry, parent *Area, _ *recorder) { reg.Unregister(parent) },
			first:  []string{"child", "parent"},
			second: []string{"child"},
		},
		{
			name: "ancestor re-registered",
			mutate: func(reg *Registry, parent *Area, rec *recorder) {
				reg.Register(parent, Handlers{OnClick: func(*Event) {
					rec.calls = append(rec.calls, "parent-new")
				}}, nil)
			},
			first:  []string{"child", "parent"},
			second: []string{"child", "parent-new"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, d := newTestDispatcher(100, 100)
			var rec recorder
			parent := NewArea("parent", nil, 0, 0)
			child := NewArea("child", HitRect{Width: 100, Height: 100}, 0, 0)
			mutated := false
			reg.Register(parent, Handlers{OnClick: func(*Event) {
				rec.calls = append(rec.calls, "parent")
			}}, nil)
			reg.Register(child, Handlers{OnClick: func(*Event) {
				rec.calls = append(rec.calls, "child")
				if !mutated {
					mutated = true
					tt.mutate(reg, parent, &rec)
				}
			}}, parent)

			d.Dispatch(EventClick, at(50, 50))
			if !reflect.DeepEqual(rec.calls, tt.first) {
				t.Errorf("same dispatch calls = %v, want %v", rec.calls, tt.first)
			}

			rec.reset()
			d.Dispatch(EventClick, at(50, 50))
			if !reflect.DeepEqual(rec.calls, tt.second) {
				t.Errorf("next dispatch calls = %v, want %v", rec.calls, tt.second)
			}
		})
	}
}

func TestNewDispatcherNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil surface")
		}
	}()
	NewDispatcher(NewRegistry(), nil)
}

// --- Hover ---

func TestHoverTransitions(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	root := NewArea("root", nil, 0, 0)
	left := NewArea("left", HitRect{Width: 90, Height: 100}, 0, 0)
	right := NewArea("right", HitRect{Width: 90, Height: 100}, 110, 0)
	reg.Register(root, rec.all(), nil)
	reg.Register(left, rec.all(), root)
	reg.Register(right, rec.all(), root)

	d.Dispatch(EventPointerMove, at(50, 50))
	want := []string{
		"pointerover left@left", "pointerover left@root",
		"pointerenter root@root", "pointerenter left@left",
		"pointermove left@left", "pointermove left@root",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("enter left:\n got %v\nwant %v", rec.calls, want)
	}
	if d.Hovered(0) != Node(left) {
		t.Errorf("Hovered = %v, want left", d.Hovered(0))
	}

	rec.reset()
	d.Dispatch(EventPointerMove, at(60, 50))
	want = []string{"pointermove left@left", "pointermove left@root"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("move within left:\n got %v\nwant %v", rec.calls, want)
	}

	rec.reset()
	d.Dispatch(EventPointerMove, at(150, 50))
	want = []string{
		"pointerout left@left", "pointerout left@root",
		"pointerleave left@left",
		"pointerover right@right", "pointerover right@root",
		"pointerenter right@right",
		"pointermove right@right", "pointermove right@root",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("left to right:\n got %v\nwant %v", rec.calls, want)
	}

	rec.reset()
	d.Dispatch(EventPointerMove, at(100, 50))
	want = []string{
		"pointerout right@right", "pointerout right@root",
		"pointerleave right@right", "pointerleave root@root",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("right to gap:\n got %v\nwant %v", rec.calls, want)
	}
	if d.Hovered(0) != nil {
		t.Errorf("Hovered = %v, want nil", d.Hovered(0))
	}
}

func TestHoverPerPointer(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	b := NewArea("b", HitRect{Width: 90, Height: 100}, 110, 0)
	reg.Register(a, Handlers{}, nil)
	reg.Register(b, Handlers{}, nil)

	d.Dispatch(EventPointerMove, NativeEvent{ClientX: 10, ClientY: 10, PointerID: 1})
	d.Dispatch(EventPointerMove, NativeEvent{ClientX: 150, ClientY: 10, PointerID: 2})
	if d.Hovered(1) != Node(a) || d.Hovered(2) != Node(b) {
		t.Errorf("hovered = %v, %v", d.Hovered(1), d.Hovered(2))
	}
}

func TestHoverClearedOnCancel(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	reg.Register(a, rec.all(), nil)

	d.Dispatch(EventPointerMove, at(10, 10))
	rec.reset()
	d.Dispatch(EventPointerCancel, at(10, 10))

	want := []string{"pointercancel a@a", "pointerout a@a", "pointerleave a@a"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if d.Hovered(0) != nil {
		t.Error("cancel should clear hover")
	}
}

func TestLeave(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	reg.Register(a, rec.all(), nil)

	d.Dispatch(EventPointerMove, at(10, 10))
	rec.reset()
	d.Leave(at(10, 10))
	want := []string{"pointerout a@a", "pointerleave a@a"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}

	rec.reset()
	d.Leave(at(10, 10))
	if len(rec.calls) != 0 {
		t.Errorf("second Leave should be a no-op, got %v", rec.calls)
	}
}

// --- Capture ---

func TestPointerCapture(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	b := NewArea("b", HitRect{Width: 90, Height: 100}, 110, 0)
	reg.Register(a, rec.all(), nil)
	reg.Register(b, rec.all(), nil)

	d.CapturePointer(0, a)
	if got := d.TargetAt(at(150, 50)); got != Node(a) {
		t.Errorf("TargetAt while captured = %v, want a", got)
	}
	d.Dispatch(EventPointerDown, at(150, 50))
	d.Dispatch(EventPointerUp, at(150, 50))
	d.Dispatch(EventPointerDown, at(150, 50))

	want := []string{"pointerdown a@a", "pointerup a@a", "pointerdown b@b"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestPointerCaptureOtherPointerUnaffected(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	b := NewArea("b", HitRect{Width: 90, Height: 100}, 110, 0)
	reg.Register(a, Handlers{}, nil)
	reg.Register(b, Handlers{}, nil)

	d.CapturePointer(1, a)
	if got := d.TargetAt(NativeEvent{ClientX: 150, ClientY: 50, PointerID: 2}); got != Node(b) {
		t.Errorf("TargetAt for other pointer = %v, want b", got)
	}
	d.CapturePointer(1, nil)
	if got := d.TargetAt(NativeEvent{ClientX: 150, ClientY: 50, PointerID: 1}); got != Node(b) {
		t.Errorf("TargetAt after release = %v, want b", got)
	}
}

func TestPointerCaptureDroppedWhenNodeUnregistered(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	c := NewArea("c", HitRect{Width: 200, Height: 100}, 0, 0)
	reg.Register(a, rec.all(), nil)
	reg.Register(c, Handlers{OnPointerMove: rec.handler}, nil)

	d.CapturePointer(0, a)
	reg.Unregister(a)

	res := d.Dispatch(EventPointerMove, at(150, 50))
	if res.Target != Node(c) {
		t.Errorf("Target = %v, want c", nameOf(res.Target))
	}
	want := []string{"pointermove c@c"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}

	// The capture is gone for good, even if a comes back.
	reg.Register(a, rec.all(), nil)
	if got := d.TargetAt(at(50, 50)); got != Node(c) {
		t.Errorf("TargetAt = %v, want c", nameOf(got))
	}
}

func TestUnregisteredHoverGetsNoTransitions(t *testing.T) {
	reg, d := newTestDispatcher(200, 100)
	var rec recorder
	var sink sliceSink
	a := NewArea("a", HitRect{Width: 90, Height: 100}, 0, 0)
	b := NewArea("b", HitRect{Width: 90, Height: 100}, 110, 0)
	reg.Register(a, rec.all(), nil)
	reg.Register(b, rec.all(), nil)

	d.Dispatch(EventPointerMove, at(50, 50))
	reg.Unregister(a)
	rec.reset()
	d.SetEventSink(&sink)

	d.Dispatch(EventPointerMove, at(150, 50))
	want := []string{"pointerover b@b", "pointerenter b@b", "pointermove b@b"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	for _, r := range sink.records {
		if r.Target == Node(a) {
			t.Errorf("sink got a record for unregistered a: %+v", r)
		}
	}
}

// --- Listeners and sinks ---

func TestListenSeesEveryEvent(t *testing.T) {
	_, d := newTestDispatcher(100, 100)
	var kinds []EventKind
	h := d.Listen(func(k EventKind, _ NativeEvent) { kinds = append(kinds, k) })

	d.Dispatch(EventWheel, at(500, 500))
	d.Dispatch(EventClick, at(10, 10))
	if len(kinds) != 2 || kinds[0] != EventWheel || kinds[1] != EventClick {
		t.Errorf("kinds = %v", kinds)
	}

	h.Remove()
	d.Dispatch(EventClick, at(10, 10))
	if len(kinds) != 2 {
		t.Errorf("listener fired after Remove: %v", kinds)
	}
	CallbackHandle{}.Remove()
}

func TestListenRemoveKeepsOthers(t *testing.T) {
	_, d := newTestDispatcher(100, 100)
	var a, b int
	ha := d.Listen(func(EventKind, NativeEvent) { a++ })
	d.Listen(func(EventKind, NativeEvent) { b++ })

	ha.Remove()
	d.Dispatch(EventClick, at(1, 1))
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
}

type sliceSink struct {
	records []DispatchRecord
}

func (s *sliceSink) EmitDispatch(r DispatchRecord) {
	s.records = append(s.records, r)
}

func TestEventSink(t *testing.T) {
	reg, d := newTestDispatcher(100, 100)
	a := NewArea("a", HitRect{Width: 50, Height: 50}, 0, 0)
	reg.Register(a, Handlers{OnClick: func(*Event) {}}, nil)

	var sink sliceSink
	d.SetEventSink(&sink)
	d.Dispatch(EventClick, at(90, 90))
	d.Dispatch(EventClick, at(25, 25))

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	r := sink.records[0]
	if r.Kind != EventClick || r.Target != Node(a) || r.Invoked != 1 || r.Point != (Vec2{-25, -25}) {
		t.Errorf("record = %+v", r)
	}

	d.SetEventSink(nil)
	d.Dispatch(EventClick, at(25, 25))
	if len(sink.records) != 1 {
		t.Error("cleared sink should not receive records")
	}
}
