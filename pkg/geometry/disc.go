package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Disc represents a circular, one-sided disc. Like Plane, Normal points away
// from the visible side.
type Disc struct {
	Center   core.Point // Center of the disc
	Normal   core.Vec3  // Unit normal, pointing away from the lit side
	Radius   float64    // Radius of the disc
	Right    core.Vec3  // In-plane axis used for texture coordinates
	Up       core.Vec3  // In-plane axis perpendicular to Right
	radiusSq float64
	material *material.Material
}

// NewDisc creates a new disc
func NewDisc(center core.Point, normal core.Vec3, radius float64, mat *material.Material) *Disc {
	normalNormalized := normal.Normalize()

	// Create orthogonal vectors
	var right core.Vec3
	if math.Abs(normalNormalized.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}

	right = right.Cross(normalNormalized).Normalize()
	up := normalNormalized.Cross(right).Normalize()

	return &Disc{
		Center:   center,
		Normal:   normalNormalized,
		Radius:   radius,
		Right:    right,
		Up:       up,
		radiusSq: radius * radius,
		material: mat,
	}
}

// Intersect tests the ray against the disc's plane, then the radius
func (d *Disc) Intersect(ray core.Ray) (float64, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if denom <= planeEpsilon {
		return 0, false
	}

	distance := d.Center.Sub(ray.Origin).Dot(d.Normal) / denom
	if distance < 0 {
		return 0, false
	}

	if ray.At(distance).Sub(d.Center).Norm() > d.radiusSq {
		return 0, false // Outside disc
	}
	return distance, true
}

// SurfaceNormal returns the normal of the visible side
func (d *Disc) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return d.Normal.Negate()
}

// Material returns the disc's material
func (d *Disc) Material() *material.Material {
	return d.material
}

// TextureCoords maps the disc onto the unit square, center at (0.5, 0.5)
func (d *Disc) TextureCoords(hitPoint core.Point) core.TextureCoords {
	h := hitPoint.Sub(d.Center)
	return core.TextureCoords{
		U: 0.5 + h.Dot(d.Right)/(2*d.Radius),
		V: 0.5 + h.Dot(d.Up)/(2*d.Radius),
	}
}
