package scene

import (
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene shows a glass sphere refracting a checkerboard floor
func NewGlassScene() *Scene {
	checkerboard := material.NewCheckerboardTexture(64, 64, 32,
		color.RGBA{R: 230, G: 230, B: 230, A: 255},
		color.RGBA{R: 40, G: 40, B: 40, A: 255},
	)

	return &Scene{
		Width:           800,
		Height:          450,
		FOV:             60.0,
		BackgroundColor: core.NewColor(0.4, 0.6, 0.9),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(-0.5, -1.0, -0.5), core.White, 2.5),
			lights.NewSphericalLight(core.NewPoint(2.0, 3.0, -3.0), core.NewColor(1.0, 0.9, 0.8), 300.0),
		},
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewPoint(0.0, 0.0, -5.0), 1.2, material.NewDielectric(1.5)),
			geometry.NewSphere(core.NewPoint(-2.5, -0.3, -8.0), 1.0,
				material.NewDiffuse(core.NewColor(0.9, 0.2, 0.2), 0.6)),
			geometry.NewSphere(core.NewPoint(2.5, 0.0, -9.0), 1.2,
				material.NewReflective(core.NewColor(0.9, 0.9, 0.9), 0.1, 0.8)),
			// Textured floor
			geometry.NewPlane(core.NewPoint(0.0, -1.5, 0.0), core.NewVec3(0.0, -1.0, 0.0),
				material.NewTexturedDiffuse(checkerboard, 0.5)),
		},
	}
}
