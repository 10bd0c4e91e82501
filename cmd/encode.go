package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// encoderFor selects an encoder from the file extension
func encoderFor(filename string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// SaveImage writes img to filename, creating parent directories as needed
func SaveImage(filename string, img image.Image) error {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}
