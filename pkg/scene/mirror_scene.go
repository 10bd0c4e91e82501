package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene places the camera between two facing mirrors with a sphere
// reflected back and forth between them
func NewMirrorScene() *Scene {
	mirror := material.NewReflective(core.White, 0.0, 0.9)

	return &Scene{
		Width:             640,
		Height:            360,
		FOV:               70.0,
		MaxRecursionDepth: 8,
		BackgroundColor:   core.NewColor(0.05, 0.05, 0.1),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(-1.0, -2.0, -1.0), core.White, 2.0),
		},
		Objects: []geometry.Primitive{
			// Mirror in front of the camera, facing +z
			geometry.NewPlane(core.NewPoint(0, 0, -8), core.NewVec3(0, 0, -1), mirror),
			// Mirror behind the camera, facing -z
			geometry.NewPlane(core.NewPoint(0, 0, 4), core.NewVec3(0, 0, 1), mirror),
			geometry.NewSphere(core.NewPoint(1.5, 0, -4), 1.0,
				material.NewReflective(core.NewColor(1.0, 0.6, 0.1), 0.6, 0.2)),
			geometry.NewPlane(core.NewPoint(0, -1.5, 0), core.NewVec3(0, -1, 0),
				material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8), 0.3)),
		},
	}
}
