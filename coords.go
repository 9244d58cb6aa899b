package hitgraph

// Surface is the rendering surface a registry is attached to. Bounds is its
// bounding box in client coordinates.
type Surface interface {
	Bounds() Rect
}

// Two coordinate frames are used and must not be mixed:
//
//	scene space:   origin at the surface center; delivered to handlers
//	surface space: origin at the surface top-left; used for hit testing

// ToSurfaceSpace converts a native event's client position to surface space.
func ToSurfaceSpace(ev NativeEvent, bounds Rect) Vec2 {
	return Vec2{X: ev.ClientX - bounds.X, Y: ev.ClientY - bounds.Y}
}

// ToSceneSpace converts a native event's client position to scene space.
func ToSceneSpace(ev NativeEvent, bounds Rect) Vec2 {
	return Vec2{
		X: ev.ClientX - bounds.X - bounds.Width/2,
		Y: ev.ClientY - bounds.Y - bounds.Height/2,
	}
}

// SurfaceToScene converts a surface-space point to scene space.
func SurfaceToScene(p Vec2, bounds Rect) Vec2 {
	return Vec2{X: p.X - bounds.Width/2, Y: p.Y - bounds.Height/2}
}

// SceneToSurface converts a scene-space point to surface space.
func SceneToSurface(p Vec2, bounds Rect) Vec2 {
	return Vec2{X: p.X + bounds.Width/2, Y: p.Y + bounds.Height/2}
}

// SurfaceToClient converts a surface-space point back to client coordinates.
func SurfaceToClient(p Vec2, bounds Rect) Vec2 {
	return Vec2{X: p.X + bounds.X, Y: p.Y + bounds.Y}
}
