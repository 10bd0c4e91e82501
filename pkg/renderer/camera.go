package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays from a fixed eye at the origin looking down -Z
type Camera struct {
	width         float64
	height        float64
	aspectRatio   float64
	fovAdjustment float64
	origin        core.Point
}

// NewCamera creates a camera for the scene's image dimensions and field of view
func NewCamera(sc *scene.Scene) (*Camera, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	width := float64(sc.Width)
	height := float64(sc.Height)
	return &Camera{
		width:         width,
		height:        height,
		aspectRatio:   width / height,
		fovAdjustment: math.Tan(sc.FOV * math.Pi / 180 / 2),
		origin:        core.Origin(),
	}, nil
}

// PrimaryRay returns the ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) PrimaryRay(x, y int) core.Ray {
	sensorX := (((float64(x)+0.5)/c.width)*2 - 1) * c.aspectRatio * c.fovAdjustment
	sensorY := (1 - ((float64(y)+0.5)/c.height)*2) * c.fovAdjustment

	return core.NewRay(c.origin, core.NewVec3(sensorX, sensorY, -1))
}
