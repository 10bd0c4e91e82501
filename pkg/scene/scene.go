package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultShadowBias offsets secondary ray origins off the surface they leave
const DefaultShadowBias = 1e-13

var (
	ErrInvalidDimensions = errors.New("scene: width must be greater than height")
	ErrInvalidFOV        = errors.New("scene: field of view must be in (0, 180) degrees")
)

// Scene contains all the elements needed for rendering.
//
// A Scene is built once by the caller and must not be modified while a render
// is in progress; renderer workers share it without synchronization.
type Scene struct {
	Width           uint32               // Image width in pixels
	Height          uint32               // Image height in pixels
	FOV             float64              // Vertical field of view in degrees
	Objects         []geometry.Primitive // Objects in the scene
	Lights          []lights.Light       // Lights in the scene
	BackgroundColor core.Color           // Color of rays that escape

	ShadowBias        float64 // Surface offset for secondary rays (0 = DefaultShadowBias)
	MaxRecursionDepth int     // Bounce limit for reflection and refraction (0 = renderer default)
}

// Intersection is the nearest hit along a ray
type Intersection struct {
	Distance float64
	Object   geometry.Primitive
}

// Validate checks the camera configuration once, before any ray is cast
func (s *Scene) Validate() error {
	if s.Width <= s.Height {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if s.FOV <= 0 || s.FOV >= 180 || math.IsNaN(s.FOV) {
		return fmt.Errorf("%w: got %v", ErrInvalidFOV, s.FOV)
	}
	return nil
}

// Trace returns the nearest object hit by ray
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	nearest := Intersection{Distance: math.Inf(1)}
	found := false

	for _, obj := range s.Objects {
		if d, hit := obj.Intersect(ray); hit && d < nearest.Distance {
			nearest = Intersection{Distance: d, Object: obj}
			found = true
		}
	}

	return nearest, found
}

// Bias returns the secondary ray offset for this scene
func (s *Scene) Bias() float64 {
	if s.ShadowBias > 0 {
		return s.ShadowBias
	}
	return DefaultShadowBias
}

// BiasAt returns the secondary ray offset at p. The offset grows with the
// largest coordinate of p so it stays above the rounding error of the hit point.
func (s *Scene) BiasAt(p core.Point) float64 {
	scale := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
	return s.Bias() * math.Max(1, scale)
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
