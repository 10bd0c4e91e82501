package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options contains renderer configuration
type Options struct {
	NumWorkers int                   // Number of parallel workers (0 = use CPU count)
	Integrator integrator.Integrator // Light transport (nil = Whitted with default depth)
	Logger     log.Logger            // Logger for rendering output (nil = "renderer" module logger)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Render traces every pixel of the scene and returns the assembled image.
//
// The image is split into vertical stripes, one per worker. Each pixel depends
// only on its coordinates and the scene, so the output is identical for any
// worker count. The scene must not be modified until Render returns.
func Render(ctx context.Context, sc *scene.Scene, opts Options) (*image.RGBA, RenderStats, error) {
	camera, err := NewCamera(sc)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("renderer: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New("renderer")
	}
	integ := opts.Integrator
	if integ == nil {
		integ = integrator.NewWhittedIntegrator()
	}
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width, height := int(sc.Width), int(sc.Height)
	layout := NewStripeLayout(width, height, numWorkers)
	logger.Debugf("rendering %dx%d with %d stripes (%d workers requested)", width, height, len(layout), numWorkers)

	start := time.Now()
	stripes := make([]*image.RGBA, len(layout))
	stripeStats := make([]StripeStats, len(layout))

	g, gctx := errgroup.WithContext(ctx)
	for i, bounds := range layout {
		i, bounds := i, bounds
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: stripe %d %v: %v", ErrWorkerPanic, i, bounds, r)
				}
			}()

			stripeStart := time.Now()
			stripe, err := renderStripe(gctx, sc, camera, integ, bounds)
			if err != nil {
				return err
			}

			stripes[i] = stripe
			stripeStats[i] = StripeStats{
				Index:    i,
				Bounds:   bounds,
				Pixels:   bounds.Dx() * bounds.Dy(),
				Duration: time.Since(stripeStart),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, stripe := range stripes {
		if err := copyStripe(img, stripe); err != nil {
			return nil, RenderStats{}, err
		}
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		NumWorkers:  numWorkers,
		TotalPixels: width * height,
		Stripes:     stripeStats,
		Duration:    time.Since(start),
	}
	logger.Infof("rendered %dx%d in %v using %d stripes", width, height, stats.Duration, len(layout))

	return img, stats, nil
}

// renderStripe shades every pixel in bounds into a stripe-sized buffer.
// Cancellation is checked once per column.
func renderStripe(ctx context.Context, sc *scene.Scene, camera *Camera, integ integrator.Integrator, bounds image.Rectangle) (*image.RGBA, error) {
	stripe := image.NewRGBA(bounds)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			color := integ.RayColor(camera.PrimaryRay(x, y), sc, 0)
			stripe.SetRGBA(x, y, color.ToRGBA())
		}
	}
	return stripe, nil
}
