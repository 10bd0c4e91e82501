package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Gamma is the display encoding exponent used when converting linear radiance to bytes
const Gamma float32 = 2.2

// Color is linear radiance. Channels are left unclamped while light accumulates.
type Color struct {
	Red, Green, Blue float32
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(red, green, blue float32) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.Red + other.Red, c.Green + other.Green, c.Blue + other.Blue}
}

// Multiply returns the channel-wise product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.Red * other.Red, c.Green * other.Green, c.Blue * other.Blue}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float32) Color {
	return Color{c.Red * s, c.Green * s, c.Blue * s}
}

// Clamp restricts every channel to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		Red:   max(0, min(1, c.Red)),
		Green: max(0, min(1, c.Green)),
		Blue:  max(0, min(1, c.Blue)),
	}
}

// ToRGBA clamps the color, applies gamma encoding and converts it to opaque display bytes
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: encodeChannel(c.Red),
		G: encodeChannel(c.Green),
		B: encodeChannel(c.Blue),
		A: 255,
	}
}

// ColorFromRGBA decodes display bytes back into linear radiance
func ColorFromRGBA(rgba color.RGBA) Color {
	return Color{
		Red:   decodeChannel(rgba.R),
		Green: decodeChannel(rgba.G),
		Blue:  decodeChannel(rgba.B),
	}
}

func encodeChannel(v float32) uint8 {
	// v is clamped, so rounding half up never leaves [0, 255]
	return uint8(math32.Floor(math32.Pow(v, 1/Gamma)*255 + 0.5))
}

func decodeChannel(b uint8) float32 {
	return math32.Pow(float32(b)/255, Gamma)
}
