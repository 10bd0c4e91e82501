package cmd

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func createTestImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: uint8(60 * x), G: 10, B: 200, A: 255})
		img.SetRGBA(x, 1, color.RGBA{R: 5, G: uint8(60 * x), B: 90, A: 255})
	}
	return img
}

func TestSaveImage_Formats(t *testing.T) {
	tmpDir := t.TempDir()

	// Lossless formats must round-trip exactly
	for _, name := range []string{"frame.png", "frame.bmp", "frame.tiff", "nested/dir/frame.tif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			src := createTestImage()
			if err := SaveImage(path, src); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open output: %v", err)
			}
			defer f.Close()

			decoded, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("Failed to decode output: %v", err)
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 4; x++ {
					want := src.RGBAAt(x, y)
					got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
					if got != want {
						t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "frame.gif"), createTestImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := defaultOutputPath("glass", now)
	want := filepath.Join("output", "glass", "render_20240309_140507.png")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoadScene_Overrides(t *testing.T) {
	sc, err := loadScene(renderConfig{Scene: "mirrors", Width: 320, Height: 200, FOV: 45, MaxDepth: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.Width != 320 || sc.Height != 200 || sc.FOV != 45 || sc.MaxRecursionDepth != 3 {
		t.Errorf("Overrides not applied: %dx%d fov %v depth %d", sc.Width, sc.Height, sc.FOV, sc.MaxRecursionDepth)
	}

	defaults, err := loadScene(renderConfig{Scene: "mirrors"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	reference := scene.NewMirrorScene()
	if defaults.Width != reference.Width || defaults.Height != reference.Height {
		t.Errorf("Expected scene defaults %dx%d, got %dx%d", reference.Width, reference.Height, defaults.Width, defaults.Height)
	}
}

func TestLoadScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  renderConfig
	}{
		{"unknown scene", renderConfig{Scene: "nonexistent"}},
		{"portrait override", renderConfig{Scene: "default", Width: 100, Height: 200}},
		{"texture on wrong scene", renderConfig{Scene: "default", Texture: "tex.png"}},
		{"missing texture file", renderConfig{Scene: "textured", Texture: "does-not-exist.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadScene(tt.cfg); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadScene_Texture(t *testing.T) {
	texPath := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(texPath)
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	if err := png.Encode(f, createTestImage()); err != nil {
		t.Fatalf("Failed to encode texture: %v", err)
	}
	f.Close()

	sc, err := loadScene(renderConfig{Scene: "textured", Texture: texPath})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.GetPrimitiveCount() == 0 {
		t.Error("Expected textured scene to contain objects")
	}
}

func TestFormatFrameStats(t *testing.T) {
	stats := renderer.RenderStats{
		TotalPixels: 200,
		Stripes: []renderer.StripeStats{
			{Index: 0, Bounds: image.Rect(0, 0, 10, 10), Pixels: 100, Duration: time.Millisecond},
			{Index: 1, Bounds: image.Rect(10, 0, 20, 10), Pixels: 100, Duration: 2 * time.Millisecond},
		},
		Duration: 3 * time.Millisecond,
	}

	out := formatFrameStats(stats)
	for _, want := range []string{"Stripe", "10-19", "50.0 %", "TOTAL", "3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table:\n%s", want, out)
		}
	}
}

func TestApp_RenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	app := NewApp()
	args := []string{"raytracer", "render", "--scene", "glass", "--width", "48", "--height", "27", "--workers", "3", "--out", out}
	if err := app.Run(args); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 27 {
		t.Errorf("Expected 48x27 image, got %v", b)
	}
}

func TestApp_VerboseAndVersionFlags(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp()
	app.Writer = &buf
	if err := app.Run([]string{"raytracer", "-v", "scenes"}); err != nil {
		t.Fatalf("scenes with -v failed: %v", err)
	}
	if !strings.Contains(buf.String(), "default") {
		t.Errorf("Expected scene listing, got:\n%s", buf.String())
	}

	buf.Reset()
	app = NewApp()
	app.Writer = &buf
	if err := app.Run([]string{"raytracer", "--version"}); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(buf.String(), "0.1.0") {
		t.Errorf("Expected version in output, got:\n%s", buf.String())
	}
}

func TestApp_ScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp()
	app.Writer = &buf

	if err := app.Run([]string{"raytracer", "scenes"}); err != nil {
		t.Fatalf("scenes command failed: %v", err)
	}
	for _, info := range scene.ListScenes() {
		if !strings.Contains(buf.String(), info.ID) {
			t.Errorf("Expected scene %q in listing:\n%s", info.ID, buf.String())
		}
	}
}
