package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// triangleEpsilon bounds the determinant below which a ray is parallel to the triangle
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices.
// Counter-clockwise winding, as seen by the viewer, faces the viewer.
type Triangle struct {
	V0, V1, V2 core.Point // The three vertices
	normal     core.Vec3  // Cached normal vector
	edge1      core.Vec3
	edge2      core.Vec3
	material   *material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point, mat *material.Material) *Triangle {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		normal:   edge1.Cross(edge2).Normalize(),
		edge1:    edge1,
		edge2:    edge2,
		material: mat,
	}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (float64, bool) {
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -triangleEpsilon && a < triangleEpsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	distance := f * t.edge2.Dot(q)
	if distance < 0 {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal returns the winding normal
func (t *Triangle) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() *material.Material {
	return t.material
}

// TextureCoords returns the barycentric weights of V1 and V2 at the hit point
func (t *Triangle) TextureCoords(hitPoint core.Point) core.TextureCoords {
	p := hitPoint.Sub(t.V0)
	d00 := t.edge1.Dot(t.edge1)
	d01 := t.edge1.Dot(t.edge2)
	d11 := t.edge2.Dot(t.edge2)
	d20 := p.Dot(t.edge1)
	d21 := p.Dot(t.edge2)

	denom := d00*d11 - d01*d01
	return core.TextureCoords{
		U: (d11*d20 - d01*d21) / denom,
		V: (d00*d21 - d01*d20) / denom,
	}
}
