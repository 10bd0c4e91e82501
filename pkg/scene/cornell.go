package scene

import (
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box in front of the camera with a
// mirror sphere, a glass sphere and a point light under the ceiling
func NewCornellScene() *Scene {
	white := material.NewDiffuse(core.NewColor(0.73, 0.73, 0.73), 0.9)
	red := material.NewDiffuse(core.NewColor(0.65, 0.05, 0.05), 0.9)
	green := material.NewDiffuse(core.NewColor(0.12, 0.45, 0.15), 0.9)
	yellow := material.NewDiffuse(core.NewColor(0.9, 0.75, 0.1), 0.9)

	rug := material.NewCheckerboardTexture(32, 32, 4,
		color.RGBA{R: 200, G: 60, B: 40, A: 255},
		color.RGBA{R: 240, G: 220, B: 180, A: 255},
	)

	// Box spans x and y in [-2, 2], back wall at z = -8; walls are one-sided
	// planes whose normals point out of the box
	const half = 2.0
	const back = -8.0

	return &Scene{
		Width:           640,
		Height:          480,
		FOV:             70.0,
		BackgroundColor: core.Black,
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewPoint(0, half-0.4, -5.5), core.White, 180.0),
		},
		Objects: []geometry.Primitive{
			// Walls
			geometry.NewPlane(core.NewPoint(0, -half, 0), core.NewVec3(0, -1, 0), white), // floor
			geometry.NewPlane(core.NewPoint(0, half, 0), core.NewVec3(0, 1, 0), white),   // ceiling
			geometry.NewPlane(core.NewPoint(0, 0, back), core.NewVec3(0, 0, -1), white),  // back wall
			geometry.NewPlane(core.NewPoint(-half, 0, 0), core.NewVec3(-1, 0, 0), red),   // left wall
			geometry.NewPlane(core.NewPoint(half, 0, 0), core.NewVec3(1, 0, 0), green),   // right wall

			// Pennant on the back wall, wound counter-clockwise toward the camera
			geometry.NewTriangle(
				core.NewPoint(-0.6, 0.4, back+0.01),
				core.NewPoint(0.6, 0.4, back+0.01),
				core.NewPoint(0, 1.4, back+0.01),
				yellow,
			),

			// Rug just above the floor
			geometry.NewDisc(core.NewPoint(0, -half+0.001, -6), core.NewVec3(0, -1, 0), 1.4,
				material.NewTexturedDiffuse(rug, 0.9)),

			// Mirror sphere (left) and glass sphere (right)
			geometry.NewSphere(core.NewPoint(-0.9, -half+0.8, -6.5), 0.8,
				material.NewReflective(core.NewColor(0.8, 0.8, 0.9), 0.05, 0.9)),
			geometry.NewSphere(core.NewPoint(0.9, -half+0.7, -5.2), 0.7, material.NewDielectric(1.5)),
		},
	}
}
