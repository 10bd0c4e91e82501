package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity, like the sun. It does not attenuate.
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels in
	Color     core.Color
	Intensity float32
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Sample returns the same contribution for every point
func (dl *DirectionalLight) Sample(point core.Point) LightSample {
	return LightSample{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Color:     dl.Color,
		Intensity: dl.Intensity,
	}
}
