package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	radiusSq float64
	material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		radiusSq: radius * radius,
		material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Project the origin-to-center vector onto the ray
	l := s.Center.Sub(ray.Origin)
	adj := l.Dot(ray.Direction)

	// Squared distance from the center to the ray line
	d2 := l.Dot(l) - adj*adj
	if d2 > s.radiusSq {
		return 0, false
	}

	thc := math.Sqrt(s.radiusSq - d2)
	t0 := adj - thc
	t1 := adj + thc

	switch {
	case t0 < 0 && t1 < 0:
		// Sphere is entirely behind the ray
		return 0, false
	case t0 < 0:
		// Ray starts inside the sphere
		return t1, true
	default:
		// thc >= 0, so t0 is the nearer root
		return t0, true
	}
}

// SurfaceNormal returns the outward normal at hitPoint
func (s *Sphere) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return hitPoint.Sub(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.material
}

// TextureCoords maps longitude to U and latitude to V
func (s *Sphere) TextureCoords(hitPoint core.Point) core.TextureCoords {
	h := hitPoint.Sub(s.Center)
	return core.TextureCoords{
		U: (1 + math.Atan2(h.Z, h.X)/math.Pi) * 0.5,
		V: math.Acos(clampUnit(h.Y/s.Radius)) / math.Pi,
	}
}

// clampUnit keeps acos inputs inside [-1, 1] when rounding pushes a hit point
// just outside the surface
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
