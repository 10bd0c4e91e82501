package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n))).Normalize()
}

// refract bends v through a surface with outward normal n using Snell's law.
// ior is the index of the medium behind the surface; the outside is vacuum.
// Returns false on total internal reflection.
func refract(v, n core.Vec3, ior float64) (core.Vec3, bool) {
	etaI, etaT := 1.0, ior
	cosI := clampUnit(v.Dot(n))
	if cosI < 0 {
		// Entering the medium
		cosI = -cosI
	} else {
		// Leaving the medium
		n = n.Negate()
		etaI, etaT = etaT, etaI
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return v.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))).Normalize(), true
}

// fresnel returns the fraction of light reflected at a dielectric boundary,
// averaging the s and p polarizations
func fresnel(v, n core.Vec3, ior float64) float64 {
	etaI, etaT := 1.0, ior
	cosI := clampUnit(v.Dot(n))
	if cosI > 0 {
		etaI, etaT = etaT, etaI
	}

	sinT := etaI / etaT * math.Sqrt(math.Max(0, 1-cosI*cosI))
	if sinT >= 1 {
		return 1
	}

	cosT := math.Sqrt(math.Max(0, 1-sinT*sinT))
	cosI = math.Abs(cosI)
	rs := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	return (rs*rs + rp*rp) / 2
}

// incidentSide returns the normal flipped to face the side the ray arrives from
func incidentSide(normal, incident core.Vec3) core.Vec3 {
	if incident.Dot(normal) > 0 {
		return normal.Negate()
	}
	return normal
}

// reflectionRay leaves the surface on the side the incident ray came from
func reflectionRay(point core.Point, normal, incident core.Vec3, bias float64) core.Ray {
	side := incidentSide(normal, incident)
	return core.Ray{
		Origin:    point.Add(side.Multiply(bias)),
		Direction: reflect(incident, normal),
	}
}

// refractionRay continues through the surface to the far side
func refractionRay(point core.Point, normal, incident core.Vec3, ior, bias float64) (core.Ray, bool) {
	direction, ok := refract(incident, normal, ior)
	if !ok {
		return core.Ray{}, false
	}
	side := incidentSide(normal, incident)
	return core.Ray{
		Origin:    point.SubVec(side.Multiply(bias)),
		Direction: direction,
	}, true
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
