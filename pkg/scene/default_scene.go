package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three diffuse spheres over a ground plane, lit by two
// directional lights and one spherical light
func NewDefaultScene() *Scene {
	white := core.White

	return &Scene{
		Width:           800,
		Height:          600,
		FOV:             90.0,
		BackgroundColor: core.NewColor(0.2, 0.2, 0.2),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(3.0, -1.5, -2.0), white, 1.0),
			lights.NewDirectionalLight(core.NewVec3(-3.0, -4.0, -2.0), white, 1.0),
			lights.NewSphericalLight(core.NewPoint(0.0, 0.0, -2.0), white, 40.0),
		},
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewPoint(0.0, 0.0, -5.0), 1.0,
				material.NewDiffuse(core.NewColor(0.0, 1.0, 0.0), 0.3)),
			geometry.NewSphere(core.NewPoint(1.0, 2.0, -7.0), 1.0,
				material.NewDiffuse(core.NewColor(0.0, 0.0, 1.0), 0.58)),
			geometry.NewSphere(core.NewPoint(-1.0, 1.0, -3.0), 1.0,
				material.NewDiffuse(core.NewColor(1.0, 0.0, 0.0), 0.3)),
			// Ground plane
			geometry.NewPlane(core.NewPoint(0.0, -2.0, 0.0), core.NewVec3(0.0, -1.0, 0.0),
				material.NewDiffuse(core.NewColor(1.0, 0.5, 0.5), 0.18)),
		},
	}
}
