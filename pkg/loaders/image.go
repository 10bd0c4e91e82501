package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadImage decodes a PNG, JPEG, BMP, TIFF or WebP file
func LoadImage(filename string) (image.Image, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, format, nil
}

// LoadTexture loads an image file as a texture. Pixels keep their display
// encoding and are linearized when sampled.
func LoadTexture(filename string) (*material.Texture, error) {
	img, _, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image %s has no pixels", filename)
	}
	return material.NewTextureFromImage(img), nil
}
