package renderer

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// panickingIntegrator fails on a single column to simulate a worker bug
type panickingIntegrator struct{}

func (panickingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	if ray.Direction.X > 0.5 {
		panic("boom")
	}
	return core.Black
}

func createSilhouetteScene() *scene.Scene {
	return &scene.Scene{
		Width:           200,
		Height:          100,
		FOV:             90,
		BackgroundColor: core.NewColor(0, 0, 1),
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewPoint(0, 0, -5), 1, material.NewDiffuse(core.NewColor(1, 0, 0), 0.5)),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewPoint(0, 0, -2), core.White, 100),
		},
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	sc, err := scene.Create("default")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sc.Width, sc.Height = 160, 120

	reference, _, err := Render(context.Background(), sc, Options{NumWorkers: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, workers := range []int{2, 3, 8, 200} {
		img, stats, err := Render(context.Background(), sc, Options{NumWorkers: workers})
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if !bytes.Equal(img.Pix, reference.Pix) {
			t.Errorf("workers=%d: image differs from single-worker render", workers)
		}
		if stats.TotalPixels != 160*120 {
			t.Errorf("workers=%d: expected %d pixels, got %d", workers, 160*120, stats.TotalPixels)
		}
	}
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.4, 0.6)
	sc := &scene.Scene{Width: 64, Height: 48, FOV: 60, BackgroundColor: background}

	img, _, err := Render(context.Background(), sc, Options{NumWorkers: 5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("Expected 64x48 image, got %v", img.Bounds())
	}
	want := background.ToRGBA()
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRender_SphereSilhouette(t *testing.T) {
	sc := createSilhouetteScene()

	img, _, err := Render(context.Background(), sc, Options{NumWorkers: 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	background := sc.BackgroundColor.ToRGBA()
	covered := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != background {
				covered++
			}
		}
	}

	// Sphere of radius 1 at distance 5 subtends tan(asin(0.2)) on the sensor;
	// the sensor spans [-1, 1] over 100 rows
	radius := math.Tan(math.Asin(0.2)) * 50
	expected := math.Pi * radius * radius
	if math.Abs(float64(covered)-expected) > 0.1*expected {
		t.Errorf("Expected about %.0f covered pixels, got %d", expected, covered)
	}

	// The center pixel faces the light head on
	center := img.RGBAAt(100, 50)
	if center.R == 0 || center.B != 0 {
		t.Errorf("Expected lit red sphere at the center, got %v", center)
	}
}

// TestRender_ColinearShadow tests hard shadows with the default surface offset:
// a light above, an occluder sphere below it and a receiver sphere below that
func TestRender_ColinearShadow(t *testing.T) {
	build := func(withOccluder bool) *scene.Scene {
		sc := &scene.Scene{
			Width:  200,
			Height: 100,
			FOV:    90,
			Objects: []geometry.Primitive{
				geometry.NewSphere(core.NewPoint(0, 0, -10), 2, material.NewDiffuse(core.White, 1)),
			},
			Lights: []lights.Light{
				lights.NewSphericalLight(core.NewPoint(0, 10, -10), core.White, 5000),
			},
		}
		if withOccluder {
			sc.Objects = append(sc.Objects, geometry.NewSphere(core.NewPoint(0, 5, -10), 1, material.NewDiffuse(core.White, 1)))
		}
		return sc
	}

	black := core.Black.ToRGBA()

	lit, _, err := Render(context.Background(), build(false), Options{NumWorkers: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// The upper cap of the receiver faces the light
	for y := 40; y <= 45; y++ {
		if got := lit.RGBAAt(100, y); got == black {
			t.Errorf("Pixel (100,%d): expected lit receiver, got %v", y, got)
		}
	}

	shadowed, _, err := Render(context.Background(), build(true), Options{NumWorkers: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := shadowed.RGBAAt(100, 40); got != black {
		t.Errorf("Expected receiver in the occluder's shadow, got %v", got)
	}
}

func TestRender_InvalidDimensions(t *testing.T) {
	sc := &scene.Scene{Width: 100, Height: 100, FOV: 90}

	img, _, err := Render(context.Background(), sc, DefaultOptions())
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image on configuration error")
	}
}

func TestRender_WorkerPanic(t *testing.T) {
	sc := createSilhouetteScene()

	img, _, err := Render(context.Background(), sc, Options{NumWorkers: 4, Integrator: panickingIntegrator{}})
	if !errors.Is(err, ErrWorkerPanic) {
		t.Errorf("Expected ErrWorkerPanic, got %v", err)
	}
	if img != nil {
		t.Error("Expected no partial image after a worker failure")
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := Render(ctx, createSilhouetteScene(), Options{NumWorkers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image after cancellation")
	}
}

func TestRender_Stats(t *testing.T) {
	_, stats, err := Render(context.Background(), createSilhouetteScene(), Options{NumWorkers: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.NumWorkers != 3 || len(stats.Stripes) != 3 {
		t.Fatalf("Expected 3 workers and stripes, got %d and %d", stats.NumWorkers, len(stats.Stripes))
	}
	pixels := 0
	for i, s := range stats.Stripes {
		if s.Index != i {
			t.Errorf("Stripe %d reported index %d", i, s.Index)
		}
		pixels += s.Pixels
	}
	if pixels != stats.TotalPixels {
		t.Errorf("Expected stripes to cover %d pixels, got %d", stats.TotalPixels, pixels)
	}
}
