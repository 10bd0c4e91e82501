package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light interface for sources that contribute direct illumination
type Light interface {
	Type() LightType

	// Sample evaluates the light as seen from a shading point.
	// The returned direction points FROM the shading point TO the light.
	Sample(point core.Point) LightSample
}

// LightSample contains the unshadowed contribution of a light at a point
type LightSample struct {
	Direction core.Vec3  // Unit direction from shading point to light
	Distance  float64    // Distance to light, +Inf for lights at infinity
	Color     core.Color // Light color
	Intensity float32    // Intensity after falloff
}
