package scene

import (
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTextureTestScene creates a scene demonstrating texture mapping on spheres
// and planes. A nil texture selects a procedural checkerboard.
func NewTextureTestScene(texture material.ColorSource) *Scene {
	if texture == nil {
		texture = material.NewCheckerboardTexture(256, 128, 16,
			color.RGBA{R: 230, G: 230, B: 230, A: 255},
			color.RGBA{R: 50, G: 50, B: 200, A: 255},
		)
	}

	gradient := material.NewGradientTexture(4, 64,
		color.RGBA{R: 255, G: 60, B: 60, A: 255},
		color.RGBA{R: 60, G: 255, B: 60, A: 255},
	)

	return &Scene{
		Width:           800,
		Height:          450,
		FOV:             60.0,
		BackgroundColor: core.NewColor(0.1, 0.1, 0.1),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0.5, -1.0, -1.0), core.White, 3.0),
		},
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewPoint(-1.3, 0.0, -5.0), 1.2, material.NewTexturedDiffuse(texture, 0.9)),
			geometry.NewSphere(core.NewPoint(1.3, 0.0, -5.0), 1.2, material.NewTexturedDiffuse(gradient, 0.9)),
			geometry.NewPlane(core.NewPoint(0.0, -1.2, 0.0), core.NewVec3(0.0, -1.0, 0.0),
				material.NewTexturedDiffuse(texture, 0.4)),
		},
	}
}
