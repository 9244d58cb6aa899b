package hitgraph

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport receives the view transform computed by a ZUI. The engine maps
// content to scene space as scene = content*scale + (tx, ty).
type Viewport interface {
	SetViewTransform(scale, tx, ty float64)
}

// zoomAnim holds active tweens for an animated zoom or pan.
type zoomAnim struct {
	scale, x, y         *gween.Tween
	doneS, doneX, doneY bool
}

// ZUI is a zoom/pan controller. It listens to raw pointer and wheel events,
// keeps a view transform and forwards every change to a Viewport.
// All points are in scene space.
type ZUI struct {
	// Scale is the zoom factor (1.0 = no zoom).
	Scale float64
	// X and Y translate content in scene space after scaling.
	X, Y float64

	// MinScale and MaxScale clamp Scale.
	MinScale, MaxScale float64
	// WheelFactor is the zoom multiplier per unit of wheel delta.
	WheelFactor float64
	// PanButton is the button that drags the view.
	PanButton MouseButton
	// PanEnabled and WheelEnabled switch the gestures on or off.
	PanEnabled, WheelEnabled bool

	surface  Surface
	viewport Viewport

	panning   bool
	panPoint  int
	lastPoint Vec2

	anim *zoomAnim
}

// NewZUI creates a controller for the given surface forwarding to viewport.
// viewport may be nil.
func NewZUI(surface Surface, viewport Viewport) *ZUI {
	return &ZUI{
		Scale:        1,
		MinScale:     0.1,
		MaxScale:     10,
		WheelFactor:  1.1,
		PanButton:    MouseButtonLeft,
		PanEnabled:   true,
		WheelEnabled: true,
		surface:      surface,
		viewport:     viewport,
	}
}

// Attach subscribes the controller to d's raw event stream.
func (z *ZUI) Attach(d *Dispatcher) CallbackHandle {
	return d.Listen(z.HandleEvent)
}

// HandleEvent updates the view for a raw event: wheel zooms about the
// pointer, a press with PanButton starts a pan that follows pointer moves
// until release or cancel.
func (z *ZUI) HandleEvent(kind EventKind, ev NativeEvent) {
	p := ToSceneSpace(ev, z.surface.Bounds())
	switch kind {
	case EventWheel:
		if !z.WheelEnabled || ev.DeltaY == 0 {
			return
		}
		z.ZoomAt(math.Pow(z.WheelFactor, ev.DeltaY), p.X, p.Y)
	case EventPointerDown:
		if z.PanEnabled && ev.Button == z.PanButton && !z.panning {
			z.panning = true
			z.panPoint = ev.PointerID
			z.lastPoint = p
		}
	case EventPointerMove:
		if z.panning && ev.PointerID == z.panPoint {
			z.Pan(p.X-z.lastPoint.X, p.Y-z.lastPoint.Y)
			z.lastPoint = p
		}
	case EventPointerUp, EventPointerCancel:
		if z.panning && ev.PointerID == z.panPoint {
			z.panning = false
		}
	}
}

// Panning reports whether a drag pan is in progress.
func (z *ZUI) Panning() bool {
	return z.panning
}

// ZoomAt multiplies Scale by factor, keeping the content under the
// scene-space point (px, py) fixed. The result is clamped.
func (z *ZUI) ZoomAt(factor, px, py float64) {
	if factor <= 0 {
		return
	}
	next := z.clampScale(z.Scale * factor)
	if next == z.Scale {
		return
	}
	ratio := next / z.Scale
	z.X = px - (px-z.X)*ratio
	z.Y = py - (py-z.Y)*ratio
	z.Scale = next
	z.anim = nil
	z.apply()
}

// Pan translates the view by (dx, dy) in scene space.
func (z *ZUI) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	z.X += dx
	z.Y += dy
	z.anim = nil
	z.apply()
}

// ZoomTo animates to the given scale, centered on the content point
// (cx, cy), over duration seconds. Advance the animation with Update.
func (z *ZUI) ZoomTo(scale, cx, cy float64, duration float32, easeFn ease.TweenFunc) {
	scale = z.clampScale(scale)
	z.animateTo(scale, -cx*scale, -cy*scale, duration, easeFn)
}

// PanTo animates the view so the content point (cx, cy) ends up at the
// scene origin, keeping the current scale.
func (z *ZUI) PanTo(cx, cy float64, duration float32, easeFn ease.TweenFunc) {
	z.animateTo(z.Scale, -cx*z.Scale, -cy*z.Scale, duration, easeFn)
}

func (z *ZUI) animateTo(scale, x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	z.anim = &zoomAnim{
		scale: gween.New(float32(z.Scale), float32(scale), duration, easeFn),
		x:     gween.New(float32(z.X), float32(x), duration, easeFn),
		y:     gween.New(float32(z.Y), float32(y), duration, easeFn),
	}
}

// Animating reports whether a ZoomTo or PanTo animation is running.
func (z *ZUI) Animating() bool {
	return z.anim != nil
}

// Update advances a running animation by dt seconds.
func (z *ZUI) Update(dt float32) {
	a := z.anim
	if a == nil {
		return
	}
	if !a.doneS {
		val, done := a.scale.Update(dt)
		z.Scale = float64(val)
		a.doneS = done
	}
	if !a.doneX {
		val, done := a.x.Update(dt)
		z.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.y.Update(dt)
		z.Y = float64(val)
		a.doneY = done
	}
	if a.doneS && a.doneX && a.doneY {
		z.anim = nil
	}
	z.apply()
}

// Reset returns to scale 1 with no translation.
func (z *ZUI) Reset() {
	z.Scale = 1
	z.X, z.Y = 0, 0
	z.anim = nil
	z.panning = false
	z.apply()
}

// ContentToView maps a content point to scene space.
func (z *ZUI) ContentToView(cx, cy float64) (float64, float64) {
	return cx*z.Scale + z.X, cy*z.Scale + z.Y
}

// ViewToContent maps a scene-space point to content coordinates.
func (z *ZUI) ViewToContent(vx, vy float64) (float64, float64) {
	return (vx - z.X) / z.Scale, (vy - z.Y) / z.Scale
}

func (z *ZUI) clampScale(s float64) float64 {
	if z.MinScale > 0 && s < z.MinScale {
		s = z.MinScale
	}
	if z.MaxScale > 0 && s > z.MaxScale {
		s = z.MaxScale
	}
	return s
}

func (z *ZUI) apply() {
	if z.viewport != nil {
		z.viewport.SetViewTransform(z.Scale, z.X, z.Y)
	}
}
