package ggshape

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/gg"
)

// ErrPropType is returned by Apply when a property value has the wrong type.
var ErrPropType = errors.New("ggshape: wrong property type")

type shapeSetter func(s *Shape, v any) error

// commonProps apply to every shape kind.
var commonProps = map[string]shapeSetter{
	"visible": func(s *Shape, v any) error {
		b, ok := v.(bool)
		if !ok {
			return typeError("bool", v)
		}
		s.visible = b
		return nil
	},
	"zIndex": func(s *Shape, v any) error {
		z, err := toInt(v)
		if err != nil {
			return err
		}
		s.z = z
		return nil
	},
	"transform": func(s *Shape, v any) error {
		m, ok := v.(gg.Matrix)
		if !ok {
			return typeError("gg.Matrix", v)
		}
		s.SetTransform(m)
		return nil
	},
}

// kindProps maps geometry property names per kind.
var kindProps = map[Kind]map[string]shapeSetter{
	KindCircle: {
		"cx":     floatSetter(func(s *Shape) *float64 { return &s.cx }),
		"cy":     floatSetter(func(s *Shape) *float64 { return &s.cy }),
		"radius": floatSetter(func(s *Shape) *float64 { return &s.rx }),
	},
	KindEllipse: {
		"cx": floatSetter(func(s *Shape) *float64 { return &s.cx }),
		"cy": floatSetter(func(s *Shape) *float64 { return &s.cy }),
		"rx": floatSetter(func(s *Shape) *float64 { return &s.rx }),
		"ry": floatSetter(func(s *Shape) *float64 { return &s.ry }),
	},
	KindRect: {
		"x":      floatSetter(func(s *Shape) *float64 { return &s.x }),
		"y":      floatSetter(func(s *Shape) *float64 { return &s.y }),
		"width":  floatSetter(func(s *Shape) *float64 { return &s.w }),
		"height": floatSetter(func(s *Shape) *float64 { return &s.h }),
	},
	KindPath: {
		"path": func(s *Shape, v any) error {
			p, ok := v.(*gg.Path)
			if !ok {
				return typeError("*gg.Path", v)
			}
			s.SetPath(p)
			return nil
		},
	},
}

// Apply copies a property bag onto the shape. Each key is looked up in the
// setter table for the shape's kind, then in the common table; keys in
// neither are ignored. Geometry is rebuilt once after all properties are
// set. On a type error Apply stops and returns an error naming the property;
// properties earlier in key order have already been applied.
func (s *Shape) Apply(props map[string]any) error {
	geometry := false
	for _, key := range slices.Sorted(maps.Keys(props)) {
		set, ok := kindProps[s.kind][key]
		if ok {
			geometry = true
		} else if set, ok = commonProps[key]; !ok {
			continue
		}
		if err := set(s, props[key]); err != nil {
			if geometry {
				s.rebuild()
			}
			return fmt.Errorf("ggshape: apply %q to %s: %w", key, s, err)
		}
	}
	if geometry {
		s.rebuild()
	}
	return nil
}

// groupProps apply to groups.
var groupProps = map[string]func(g *Group, v any) error{
	"visible": func(g *Group, v any) error {
		b, ok := v.(bool)
		if !ok {
			return typeError("bool", v)
		}
		g.visible = b
		return nil
	},
	"zIndex": func(g *Group, v any) error {
		z, err := toInt(v)
		if err != nil {
			return err
		}
		g.z = z
		return nil
	},
}

// Apply copies a property bag onto the group. Unknown keys are ignored.
func (g *Group) Apply(props map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(props)) {
		set, ok := groupProps[key]
		if !ok {
			continue
		}
		if err := set(g, props[key]); err != nil {
			return fmt.Errorf("ggshape: apply %q to %s: %w", key, g, err)
		}
	}
	return nil
}

func floatSetter(field func(*Shape) *float64) shapeSetter {
	return func(s *Shape, v any) error {
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		*field(s) = f
		return nil
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, typeError("number", v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, typeError("integer", v)
}

func typeError(want string, got any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrPropType, want, got)
}
