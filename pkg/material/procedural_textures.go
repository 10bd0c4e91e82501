package material

import (
	"image/color"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 color.RGBA) *Texture {
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 color.RGBA) *Texture {
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		c := color.RGBA{
			R: lerp8(color1.R, color2.R, t),
			G: lerp8(color1.G, color2.G, t),
			B: lerp8(color1.B, color2.B, t),
			A: 255,
		}
		for x := 0; x < width; x++ {
			pixels[y*width+x] = c
		}
	}

	return NewTexture(width, height, pixels)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
}
