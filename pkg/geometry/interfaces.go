package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a shape that can be intersected by rays and shaded
type Primitive interface {
	// Intersect returns the distance along the ray to the nearest visible hit
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the unit normal at a point on the surface
	SurfaceNormal(hitPoint core.Point) core.Vec3

	// Material returns the material owned by this primitive
	Material() *material.Material

	// TextureCoords maps a point on the surface to UV space
	TextureCoords(hitPoint core.Point) core.TextureCoords
}
