package hitgraph

import "sort"

// --- Built-in HitShape types ---

// HitShape is a hit region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Area ---

// Area is a minimal hit-testable node for hosts that do not have an engine
// object to register. Shape is tested relative to (X, Y) in surface space.
// An Area with a nil Shape is never hit.
type Area struct {
	Name   string
	Shape  HitShape
	X, Y   float64
	Hidden bool
	Z      int
}

// NewArea creates an Area positioned at (x, y) in surface space.
func NewArea(name string, shape HitShape, x, y float64) *Area {
	return &Area{Name: name, Shape: shape, X: x, Y: y}
}

// Visible implements Visibility.
func (a *Area) Visible() bool { return !a.Hidden }

// ZIndex implements Stacker.
func (a *Area) ZIndex() int { return a.Z }

// ContainsPoint implements PointContainer.
func (a *Area) ContainsPoint(x, y float64) bool {
	if a.Shape == nil {
		return false
	}
	return a.Shape.Contains(x-a.X, y-a.Y)
}

// --- Hit testing ---

// HitTest reports whether the surface-space point (x, y) hits node. A node
// reporting Visible() == false is never hit. A node without PointContainer
// is never hit.
func HitTest(node Node, x, y float64) bool {
	if v, ok := node.(Visibility); ok && !v.Visible() {
		return false
	}
	if pc, ok := node.(PointContainer); ok {
		return pc.ContainsPoint(x, y)
	}
	return false
}

// zIndexOf returns the node's stacking order, or 0 without Stacker.
func zIndexOf(node Node) int {
	if s, ok := node.(Stacker); ok {
		return s.ZIndex()
	}
	return 0
}

// ShapesAtPoint returns the registered nodes hit by the surface-space point
// (x, y), front-most first. Nodes are ordered by descending ZIndex; equal
// stacking order (including nodes without Stacker) keeps registration order.
func ShapesAtPoint(reg *Registry, x, y float64) []Node {
	return reg.appendHits(nil, x, y)
}

// appendHits appends hits to buf under the read lock and sorts them.
func (r *Registry) appendHits(buf []Node, x, y float64) []Node {
	r.mu.RLock()
	for _, n := range r.order {
		if HitTest(n, x, y) {
			buf = append(buf, n)
		}
	}
	r.mu.RUnlock()

	if len(buf) > 1 {
		sort.SliceStable(buf, func(i, j int) bool {
			return zIndexOf(buf[i]) > zIndexOf(buf[j])
		})
	}
	return buf
}
