// Package ggshape provides hitgraph nodes backed by gogpu/gg geometry.
//
// A [Shape] owns a [gg.Path] and an affine transform; point containment uses
// the path's non-zero winding test, so it matches what gg fills. A [Group]
// has no geometry and is never hit, but can be registered as a bubbling
// parent. Geometry is in surface space, the frame hitgraph hit-tests in.
//
// Shapes can be updated from a declarative property bag with [Shape.Apply],
// which maps each property name through an explicit per-kind setter table.
package ggshape

import (
	"math"

	"github.com/gogpu/gg"
)

// Kind identifies the geometry a Shape was built from.
type Kind uint8

const (
	KindCircle  Kind = iota // circle from center and radius
	KindEllipse             // ellipse from center and radii
	KindRect                // axis-aligned rectangle
	KindPath                // arbitrary user path
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	}
	return "unknown"
}

// Shape is a hit-testable scene node. It implements hitgraph.Visibility,
// hitgraph.PointContainer and hitgraph.Stacker.
type Shape struct {
	Name string

	kind Kind

	// Geometry parameters. Circles use rx as the radius.
	cx, cy, rx, ry float64
	x, y, w, h     float64

	path      *gg.Path
	transform gg.Matrix
	inverse   gg.Matrix

	visible bool
	z       int
}

func newShape(name string, kind Kind) *Shape {
	return &Shape{
		Name:      name,
		kind:      kind,
		transform: gg.Identity(),
		inverse:   gg.Identity(),
		visible:   true,
	}
}

// NewCircle creates a circle centered at (cx, cy).
func NewCircle(name string, cx, cy, r float64) *Shape {
	s := newShape(name, KindCircle)
	s.cx, s.cy, s.rx = cx, cy, r
	s.rebuild()
	return s
}

// NewEllipse creates an ellipse centered at (cx, cy).
func NewEllipse(name string, cx, cy, rx, ry float64) *Shape {
	s := newShape(name, KindEllipse)
	s.cx, s.cy, s.rx, s.ry = cx, cy, rx, ry
	s.rebuild()
	return s
}

// NewRect creates an axis-aligned rectangle with its top-left at (x, y).
func NewRect(name string, x, y, w, h float64) *Shape {
	s := newShape(name, KindRect)
	s.x, s.y, s.w, s.h = x, y, w, h
	s.rebuild()
	return s
}

// NewPath creates a shape from an existing path. The path is cloned.
func NewPath(name string, p *gg.Path) *Shape {
	s := newShape(name, KindPath)
	if p == nil {
		p = gg.NewPath()
	}
	s.path = p.Clone()
	return s
}

// rebuild regenerates the path from the geometry parameters. Paths supplied
// by the caller are left alone.
func (s *Shape) rebuild() {
	if s.kind == KindPath {
		return
	}
	p := gg.NewPath()
	switch s.kind {
	case KindCircle:
		if s.rx > 0 {
			p.Circle(s.cx, s.cy, s.rx)
		}
	case KindEllipse:
		if s.rx > 0 && s.ry > 0 {
			p.Ellipse(s.cx, s.cy, s.rx, s.ry)
		}
	case KindRect:
		if s.w > 0 && s.h > 0 {
			p.Rectangle(s.x, s.y, s.w, s.h)
		}
	}
	s.path = p
}

// Kind returns the shape's geometry kind.
func (s *Shape) Kind() Kind { return s.kind }

// Path returns the shape's path in local coordinates. The returned path must
// not be mutated; use SetPath.
func (s *Shape) Path() *gg.Path { return s.path }

// SetPath replaces the geometry with a clone of p and turns the shape into a
// KindPath shape.
func (s *Shape) SetPath(p *gg.Path) {
	s.kind = KindPath
	if p == nil {
		p = gg.NewPath()
	}
	s.path = p.Clone()
}

// Transform returns the local-to-surface transform.
func (s *Shape) Transform() gg.Matrix { return s.transform }

// SetTransform sets the local-to-surface transform. A singular matrix makes
// the shape unhittable.
func (s *Shape) SetTransform(m gg.Matrix) {
	s.transform = m
	s.inverse = m.Invert()
}

// Visible implements hitgraph.Visibility.
func (s *Shape) Visible() bool { return s.visible }

// SetVisible shows or hides the shape.
func (s *Shape) SetVisible(v bool) { s.visible = v }

// ZIndex implements hitgraph.Stacker.
func (s *Shape) ZIndex() int { return s.z }

// SetZIndex sets the stacking order. Higher values are in front.
func (s *Shape) SetZIndex(z int) { s.z = z }

// ContainsPoint implements hitgraph.PointContainer using the non-zero fill
// rule on the transformed path.
func (s *Shape) ContainsPoint(x, y float64) bool {
	if s.path == nil {
		return false
	}
	if m := s.transform; math.Abs(m.A*m.E-m.B*m.D) < 1e-10 {
		return false
	}
	return s.path.Contains(s.inverse.TransformPoint(gg.Pt(x, y)))
}

// Bounds returns the local-space bounding box of the path.
func (s *Shape) Bounds() gg.Rect {
	if s.path == nil {
		return gg.Rect{}
	}
	return s.path.BoundingBox()
}

// String returns the shape's name for diagnostics.
func (s *Shape) String() string {
	return s.kind.String() + " " + s.Name
}

// Group is a container node with no geometry. It is never hit but can sit
// in an ancestor chain. It implements hitgraph.Visibility and
// hitgraph.Stacker.
type Group struct {
	Name string

	visible bool
	z       int
}

// NewGroup creates a visible group.
func NewGroup(name string) *Group {
	return &Group{Name: name, visible: true}
}

// Visible implements hitgraph.Visibility.
func (g *Group) Visible() bool { return g.visible }

// SetVisible shows or hides the group.
func (g *Group) SetVisible(v bool) { g.visible = v }

// ZIndex implements hitgraph.Stacker.
func (g *Group) ZIndex() int { return g.z }

// SetZIndex sets the stacking order.
func (g *Group) SetZIndex(z int) { g.z = z }

// String returns the group's name for diagnostics.
func (g *Group) String() string {
	return "group " + g.Name
}
