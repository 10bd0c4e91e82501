package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides the surface color of a material at a texture coordinate
type ColorSource interface {
	Color(uv core.TextureCoords) core.Color
}

// SolidColor provides a uniform color
type SolidColor struct {
	Value core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Value: color}
}

// Color returns the solid color regardless of UV
func (s *SolidColor) Color(uv core.TextureCoords) core.Color {
	return s.Value
}
