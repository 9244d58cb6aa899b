package hitgraph

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bounds returns r, so a fixed rectangle can serve as a Surface.
func (r Rect) Bounds() Rect {
	return r
}

// EventKind identifies a kind of pointer event. The set is closed; handlers
// are stored against their kind in Handlers.
type EventKind uint8

const (
	EventClick         EventKind = iota // press then release over the same node
	EventContextMenu                    // secondary-button click
	EventDoubleClick                    // two clicks on the same node in quick succession
	EventWheel                          // scroll wheel or trackpad scroll
	EventPointerDown                    // pointer button pressed
	EventPointerUp                      // pointer button released
	EventPointerOver                    // pointer moved onto a node (bubbles)
	EventPointerOut                     // pointer moved off a node (bubbles)
	EventPointerEnter                   // pointer entered a node or its descendants (no bubbling)
	EventPointerLeave                   // pointer left a node and its descendants (no bubbling)
	EventPointerMove                    // pointer moved
	EventPointerCancel                  // the platform aborted the pointer interaction

	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	EventClick:         "click",
	EventContextMenu:   "contextmenu",
	EventDoubleClick:   "dblclick",
	EventWheel:         "wheel",
	EventPointerDown:   "pointerdown",
	EventPointerUp:     "pointerup",
	EventPointerOver:   "pointerover",
	EventPointerOut:    "pointerout",
	EventPointerEnter:  "pointerenter",
	EventPointerLeave:  "pointerleave",
	EventPointerMove:   "pointermove",
	EventPointerCancel: "pointercancel",
}

// String returns the DOM-style event name, e.g. "pointerdown".
func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return "unknown"
}

// Bubbles reports whether events of this kind walk the ancestor chain.
// Enter and leave are delivered to each affected node individually.
func (k EventKind) Bubbles() bool {
	return k != EventPointerEnter && k != EventPointerLeave
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// NativeEvent is a raw pointer, mouse or wheel event as delivered by the
// platform. Client coordinates are relative to the window, not the surface.
type NativeEvent struct {
	ClientX, ClientY float64
	PointerID        int
	Button           MouseButton
	Modifiers        KeyModifiers
	// Wheel deltas (valid for EventWheel).
	DeltaX, DeltaY float64
}
