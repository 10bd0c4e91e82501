package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MaxDepth is the default number of reflection/refraction bounces
const MaxDepth = 5

// WhittedIntegrator implements classic recursive ray tracing: direct lighting
// with hard shadows, mirror reflection and Fresnel-weighted refraction
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a new Whitted integrator with the default depth
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{MaxDepth: MaxDepth}
}

// DepthLimit resolves the bounce limit for sc, preferring a per-scene override
func (wi *WhittedIntegrator) DepthLimit(sc *scene.Scene) int {
	if sc.MaxRecursionDepth > 0 {
		return sc.MaxRecursionDepth
	}
	if wi.MaxDepth > 0 {
		return wi.MaxDepth
	}
	return MaxDepth
}

// RayColor computes the color seen along a ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	// Past the bounce limit the ray is treated as escaping
	if depth > wi.DepthLimit(sc) {
		return sc.BackgroundColor
	}

	hit, isHit := sc.Trace(ray)
	if !isHit {
		return sc.BackgroundColor
	}

	return wi.shade(ray, sc, hit, depth)
}

// shade computes the color at the nearest hit of ray
func (wi *WhittedIntegrator) shade(ray core.Ray, sc *scene.Scene, hit scene.Intersection, depth int) core.Color {
	hitPoint := ray.At(hit.Distance)
	normal := hit.Object.SurfaceNormal(hitPoint)
	mat := hit.Object.Material()
	surface := mat.Surface

	color := core.Black
	if surface.DiffuseAlbedo > 0 {
		uv := hit.Object.TextureCoords(hitPoint)
		color = wi.directLight(sc, hitPoint, normal, mat.Color(uv), surface.DiffuseAlbedo)
	}

	switch {
	case surface.IsDielectric():
		color = color.Add(wi.transmission(ray, sc, hitPoint, normal, float64(surface.RefractiveIndex), depth))
	case surface.ReflectRatio > 0:
		reflected := reflectionRay(hitPoint, normal, ray.Direction, sc.BiasAt(hitPoint))
		color = color.Add(wi.RayColor(reflected, sc, depth+1).Scale(surface.ReflectRatio))
	}

	return color.Clamp()
}

// directLight sums the diffuse contribution of every unoccluded light
func (wi *WhittedIntegrator) directLight(sc *scene.Scene, point core.Point, normal core.Vec3, surfaceColor core.Color, albedo float32) core.Color {
	shadowOrigin := point.Add(normal.Multiply(sc.BiasAt(point)))
	lightReflected := albedo / math.Pi

	color := core.Black
	for _, light := range sc.Lights {
		sample := light.Sample(point)

		shadowRay := core.Ray{Origin: shadowOrigin, Direction: sample.Direction}
		if occluder, blocked := sc.Trace(shadowRay); blocked && occluder.Distance < sample.Distance {
			continue
		}

		lightPower := float32(math.Max(0, normal.Dot(sample.Direction))) * sample.Intensity
		color = color.Add(surfaceColor.Multiply(sample.Color).Scale(lightPower * lightReflected))
	}

	return color
}

// transmission blends reflection and refraction at a dielectric boundary
func (wi *WhittedIntegrator) transmission(ray core.Ray, sc *scene.Scene, point core.Point, normal core.Vec3, ior float64, depth int) core.Color {
	bias := sc.BiasAt(point)
	kr := fresnel(ray.Direction, normal, ior)

	reflection := wi.RayColor(reflectionRay(point, normal, ray.Direction, bias), sc, depth+1)
	if kr >= 1 {
		// Total internal reflection
		return reflection
	}

	refracted, ok := refractionRay(point, normal, ray.Direction, ior, bias)
	if !ok {
		return reflection
	}
	refraction := wi.RayColor(refracted, sc, depth+1)

	return reflection.Scale(float32(kr)).Add(refraction.Scale(float32(1 - kr)))
}
