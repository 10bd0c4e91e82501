package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SphericalLight is a point light radiating equally in all directions
type SphericalLight struct {
	Position  core.Point
	Color     core.Color
	Intensity float32
}

// NewSphericalLight creates a new spherical light
func NewSphericalLight(position core.Point, color core.Color, intensity float32) *SphericalLight {
	return &SphericalLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

func (sl *SphericalLight) Type() LightType {
	return LightTypeSpherical
}

// Sample spreads the intensity over a sphere of radius r around the light
func (sl *SphericalLight) Sample(point core.Point) LightSample {
	toLight := sl.Position.Sub(point)
	r2 := toLight.Norm()

	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  math.Sqrt(r2),
		Color:     sl.Color,
		Intensity: sl.Intensity / float32(4*math.Pi*r2),
	}
}
