package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// planeEpsilon is the smallest |normal·direction| that still counts as a hit
const planeEpsilon = 1e-6

// Plane represents an infinite one-sided plane. Normal points away from the
// visible side: a ray is reported only when it travels along Normal.
type Plane struct {
	Origin   core.Point // A point on the plane
	Normal   core.Vec3  // Unit normal, pointing away from the lit side
	material *material.Material
}

// NewPlane creates a new plane
func NewPlane(origin core.Point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Origin:   origin,
		Normal:   normal.Normalize(),
		material: mat,
	}
}

// Intersect tests if a ray intersects with the front of the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if denom <= planeEpsilon {
		// Parallel, or hitting the back face
		return 0, false
	}

	distance := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	if distance < 0 {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal returns the normal of the visible side
func (p *Plane) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return p.Normal.Negate()
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.material
}

// TextureCoords projects the hit point onto two axes lying in the plane
func (p *Plane) TextureCoords(hitPoint core.Point) core.TextureCoords {
	xAxis := p.Normal.Cross(core.NewVec3(0, 0, 1))
	if xAxis.Norm() == 0 {
		xAxis = p.Normal.Cross(core.NewVec3(0, 1, 0))
	}
	yAxis := p.Normal.Cross(xAxis)

	h := hitPoint.Sub(p.Origin)
	return core.TextureCoords{
		U: h.Dot(xAxis),
		V: h.Dot(yAxis),
	}
}
