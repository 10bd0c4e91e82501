package material

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture provides color from a 2D grid of display-space pixels
type Texture struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewTexture creates a new texture over an existing pixel grid
func NewTexture(width, height int, pixels []color.RGBA) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewTextureFromImage copies a decoded image into a texture
func NewTextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
		}
	}

	return NewTexture(width, height, pixels)
}

// Color samples the texel under uv. Coordinates outside [0,1) wrap around.
func (t *Texture) Color(uv core.TextureCoords) core.Color {
	x := wrap(uv.U, t.Width)
	y := wrap(uv.V, t.Height)
	return core.ColorFromRGBA(t.Pixels[y*t.Width+x])
}

// Texel returns the integer texel indices that uv resolves to
func (t *Texture) Texel(uv core.TextureCoords) (x, y int) {
	return wrap(uv.U, t.Width), wrap(uv.V, t.Height)
}

// wrap maps any real coordinate onto [0, bound)
func wrap(v float64, bound int) int {
	signed := int(math.Floor(v*float64(bound))) % bound
	return (signed + bound) % bound
}
