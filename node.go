package hitgraph

// Node is an opaque handle to a scene-graph shape or group owned by the
// graphics engine. Identity is by value equality, so nodes are normally
// pointers. The dispatch layer only touches a node through the optional
// capability interfaces below.
type Node any

// Visibility is implemented by nodes that can be hidden. Hidden nodes are
// never hit.
type Visibility interface {
	Visible() bool
}

// PointContainer is implemented by nodes that can test point containment.
// Coordinates are in surface space (origin at the surface's top-left).
type PointContainer interface {
	ContainsPoint(x, y float64) bool
}

// Stacker is implemented by nodes that know their visual stacking order.
// Higher values are in front.
type Stacker interface {
	ZIndex() int
}

// HandlerFunc is a user callback for a single event kind.
type HandlerFunc func(*Event)

// Handlers holds one optional callback per event kind. Nil fields cost
// nothing.
type Handlers struct {
	OnClick         HandlerFunc
	OnContextMenu   HandlerFunc
	OnDoubleClick   HandlerFunc
	OnWheel         HandlerFunc
	OnPointerDown   HandlerFunc
	OnPointerUp     HandlerFunc
	OnPointerOver   HandlerFunc
	OnPointerOut    HandlerFunc
	OnPointerEnter  HandlerFunc
	OnPointerLeave  HandlerFunc
	OnPointerMove   HandlerFunc
	OnPointerCancel HandlerFunc
}

// For returns the callback registered for kind, or nil.
func (h *Handlers) For(kind EventKind) HandlerFunc {
	switch kind {
	case EventClick:
		return h.OnClick
	case EventContextMenu:
		return h.OnContextMenu
	case EventDoubleClick:
		return h.OnDoubleClick
	case EventWheel:
		return h.OnWheel
	case EventPointerDown:
		return h.OnPointerDown
	case EventPointerUp:
		return h.OnPointerUp
	case EventPointerOver:
		return h.OnPointerOver
	case EventPointerOut:
		return h.OnPointerOut
	case EventPointerEnter:
		return h.OnPointerEnter
	case EventPointerLeave:
		return h.OnPointerLeave
	case EventPointerMove:
		return h.OnPointerMove
	case EventPointerCancel:
		return h.OnPointerCancel
	}
	return nil
}

// Set stores fn as the callback for kind, replacing any previous one.
func (h *Handlers) Set(kind EventKind, fn HandlerFunc) {
	switch kind {
	case EventClick:
		h.OnClick = fn
	case EventContextMenu:
		h.OnContextMenu = fn
	case EventDoubleClick:
		h.OnDoubleClick = fn
	case EventWheel:
		h.OnWheel = fn
	case EventPointerDown:
		h.OnPointerDown = fn
	case EventPointerUp:
		h.OnPointerUp = fn
	case EventPointerOver:
		h.OnPointerOver = fn
	case EventPointerOut:
		h.OnPointerOut = fn
	case EventPointerEnter:
		h.OnPointerEnter = fn
	case EventPointerLeave:
		h.OnPointerLeave = fn
	case EventPointerMove:
		h.OnPointerMove = fn
	case EventPointerCancel:
		h.OnPointerCancel = fn
	}
}

// Empty reports whether no callback is set.
func (h *Handlers) Empty() bool {
	for k := EventKind(0); k < numEventKinds; k++ {
		if h.For(k) != nil {
			return false
		}
	}
	return true
}

// Registration associates a node with its handlers and its bubbling parent.
// A nil Parent ends bubbling at Node.
type Registration struct {
	Node     Node
	Handlers Handlers
	Parent   Node
}

// Event is the synthetic event passed to handlers. Target is fixed for the
// whole dispatch; CurrentTarget is the node whose handler is running. The
// same Event value is reused along the ancestor walk, so handlers must not
// retain it after returning.
type Event struct {
	Kind          EventKind
	Native        NativeEvent
	Target        Node
	CurrentTarget Node
	// Point is in scene space (origin at the surface center).
	Point Vec2

	stopped bool
}

// StopPropagation prevents handlers on further ancestors from running.
// It has no effect outside the current dispatch.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}
