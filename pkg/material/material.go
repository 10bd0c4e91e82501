package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SurfaceType describes how a surface interacts with light
type SurfaceType struct {
	DiffuseAlbedo   float32 // Fraction of incident light reflected diffusely
	ReflectRatio    float32 // Weight of the mirror reflection for non-dielectrics
	RefractiveIndex float32 // Index of refraction; 0 means the surface is not a dielectric
}

// IsDielectric reports whether the surface refracts light
func (s SurfaceType) IsDielectric() bool {
	return s.RefractiveIndex > 0
}

// Material combines a color source with a surface interaction profile
type Material struct {
	Coloration ColorSource
	Surface    SurfaceType
}

// Color resolves the material color at the given texture coordinates
func (m *Material) Color(uv core.TextureCoords) core.Color {
	return m.Coloration.Color(uv)
}

// NewDiffuse creates a purely diffuse material with a solid color
func NewDiffuse(color core.Color, albedo float32) *Material {
	return &Material{
		Coloration: NewSolidColor(color),
		Surface:    SurfaceType{DiffuseAlbedo: albedo},
	}
}

// NewTexturedDiffuse creates a purely diffuse material colored by a texture
func NewTexturedDiffuse(texture ColorSource, albedo float32) *Material {
	return &Material{
		Coloration: texture,
		Surface:    SurfaceType{DiffuseAlbedo: albedo},
	}
}

// NewReflective creates a diffuse material with a mirror component.
// A reflectRatio of 1 with zero albedo is a perfect mirror.
func NewReflective(color core.Color, albedo, reflectRatio float32) *Material {
	return &Material{
		Coloration: NewSolidColor(color),
		Surface:    SurfaceType{DiffuseAlbedo: albedo, ReflectRatio: reflectRatio},
	}
}

// NewDielectric creates a clear transparent material like glass
func NewDielectric(refractiveIndex float32) *Material {
	return &Material{
		Coloration: NewSolidColor(core.White),
		Surface:    SurfaceType{RefractiveIndex: refractiveIndex},
	}
}
