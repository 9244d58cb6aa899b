package hitgraph

import (
	"math"
	"time"
)

const (
	defaultDoubleClickInterval = 500 * time.Millisecond
	defaultDoubleClickDistance = 4.0 // pixels
)

// PointerSample is the state of one pointer for one frame, in client
// coordinates.
type PointerSample struct {
	PointerID        int
	ClientX, ClientY float64
	Pressed          bool
	Button           MouseButton
	Modifiers        KeyModifiers
}

// --- Per-pointer state ---

type pointerState struct {
	seen    bool
	down    bool
	lastX   float64
	lastY   float64
	button  MouseButton // button captured at press time
	hitNode Node        // target at press time

	lastClickNode Node
	lastClickAt   time.Time
	lastClickX    float64
	lastClickY    float64
}

// Input turns per-frame pointer samples into native events and feeds them
// to a Dispatcher. It recognizes click, context menu and double click from
// press/release pairs. Input is driven from a single event loop.
type Input struct {
	d        *Dispatcher
	pointers map[int]*pointerState

	// DoubleClickInterval is the longest gap between two clicks that still
	// counts as a double click.
	DoubleClickInterval time.Duration
	// DoubleClickDistance is how far apart, in pixels, two clicks may be.
	DoubleClickDistance float64
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	injectQueue []syntheticPointerEvent
}

// NewInput creates an Input that dispatches through d.
func NewInput(d *Dispatcher) *Input {
	return &Input{
		d:                   d,
		pointers:            make(map[int]*pointerState),
		DoubleClickInterval: defaultDoubleClickInterval,
		DoubleClickDistance: defaultDoubleClickDistance,
		Now:                 time.Now,
	}
}

// Dispatcher returns the dispatcher events are sent to.
func (in *Input) Dispatcher() *Dispatcher {
	return in.d
}

func (in *Input) pointer(id int) *pointerState {
	ps, ok := in.pointers[id]
	if !ok {
		ps = &pointerState{}
		in.pointers[id] = ps
	}
	return ps
}

// Feed runs the pointer state machine for one sample.
func (in *Input) Feed(s PointerSample) {
	ps := in.pointer(s.PointerID)
	ev := NativeEvent{
		ClientX:   s.ClientX,
		ClientY:   s.ClientY,
		PointerID: s.PointerID,
		Button:    s.Button,
		Modifiers: s.Modifiers,
	}
	if ps.down {
		// Keep the button from press start for the whole interaction.
		ev.Button = ps.button
	}

	if !ps.seen || s.ClientX != ps.lastX || s.ClientY != ps.lastY {
		ps.seen = true
		ps.lastX = s.ClientX
		ps.lastY = s.ClientY
		in.d.Dispatch(EventPointerMove, ev)
	}

	switch {
	case s.Pressed && !ps.down:
		ps.down = true
		ps.button = s.Button
		res := in.d.Dispatch(EventPointerDown, ev)
		ps.hitNode = res.Target
	case !s.Pressed && ps.down:
		res := in.d.Dispatch(EventPointerUp, ev)
		if ps.hitNode != nil && ps.hitNode == res.Target {
			in.fireClick(ps, ev, res.Target)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

// fireClick dispatches click or contextmenu, then dblclick when the click
// pairs with the previous one.
func (in *Input) fireClick(ps *pointerState, ev NativeEvent, target Node) {
	if ev.Button == MouseButtonRight {
		in.d.Dispatch(EventContextMenu, ev)
		return
	}
	in.d.Dispatch(EventClick, ev)

	now := in.Now()
	dx := ev.ClientX - ps.lastClickX
	dy := ev.ClientY - ps.lastClickY
	if ps.lastClickNode != nil && ps.lastClickNode == target &&
		now.Sub(ps.lastClickAt) <= in.DoubleClickInterval &&
		math.Sqrt(dx*dx+dy*dy) <= in.DoubleClickDistance {
		in.d.Dispatch(EventDoubleClick, ev)
		ps.lastClickNode = nil
		return
	}
	ps.lastClickNode = target
	ps.lastClickAt = now
	ps.lastClickX = ev.ClientX
	ps.lastClickY = ev.ClientY
}

// Wheel dispatches a wheel event.
func (in *Input) Wheel(ev NativeEvent) {
	in.d.Dispatch(EventWheel, ev)
}

// Cancel aborts the interaction of pointerID: pointercancel is dispatched if
// the pointer was down, and its press state is dropped so no click follows.
func (in *Input) Cancel(pointerID int) {
	ps, ok := in.pointers[pointerID]
	if !ok || !ps.down {
		return
	}
	in.d.Dispatch(EventPointerCancel, NativeEvent{
		ClientX:   ps.lastX,
		ClientY:   ps.lastY,
		PointerID: pointerID,
		Button:    ps.button,
	})
	ps.down = false
	ps.hitNode = nil
}

// Forget drops all state for pointerID, e.g. when a touch ends. A pointer
// that is still down is cancelled first; a hovering one leaves its node.
func (in *Input) Forget(pointerID int) {
	in.Cancel(pointerID)
	if ps, ok := in.pointers[pointerID]; ok {
		in.d.Leave(NativeEvent{ClientX: ps.lastX, ClientY: ps.lastY, PointerID: pointerID})
		delete(in.pointers, pointerID)
	}
}

// Down reports whether pointerID is currently pressed.
func (in *Input) Down(pointerID int) bool {
	ps, ok := in.pointers[pointerID]
	return ok && ps.down
}
