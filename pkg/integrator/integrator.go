package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray. depth counts the
	// bounces already taken; primary rays start at 0.
	RayColor(ray core.Ray, scene *scene.Scene, depth int) core.Color
}
