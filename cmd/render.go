package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// renderConfig holds the render command flags
type renderConfig struct {
	Scene    string
	Width    int
	Height   int
	FOV      float64
	Workers  int
	MaxDepth int
	Texture  string
	Out      string
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg := renderConfig{
		Scene:    ctx.String("scene"),
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		FOV:      ctx.Float64("fov"),
		Workers:  ctx.Int("workers"),
		MaxDepth: ctx.Int("max-depth"),
		Texture:  ctx.String("texture"),
		Out:      ctx.String("out"),
	}

	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}

	out := cfg.Out
	if out == "" {
		out = defaultOutputPath(cfg.Scene, time.Now())
	}

	// Stop workers on Ctrl-C
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q at %dx%d", cfg.Scene, sc.Width, sc.Height)
	img, stats, err := renderer.Render(runCtx, sc, renderer.Options{
		NumWorkers: cfg.Workers,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if err := SaveImage(out, img); err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
	logger.Noticef("render saved as %s", out)
	return nil
}

// loadScene creates the requested scene and applies flag overrides
func loadScene(cfg renderConfig) (*scene.Scene, error) {
	var sc *scene.Scene
	if cfg.Texture != "" {
		if cfg.Scene != "textured" {
			return nil, fmt.Errorf("--texture only applies to the textured scene, got %q", cfg.Scene)
		}
		tex, err := loaders.LoadTexture(cfg.Texture)
		if err != nil {
			return nil, err
		}
		sc = scene.NewTextureTestScene(tex)
	} else {
		var err error
		if sc, err = scene.Create(cfg.Scene); err != nil {
			return nil, err
		}
	}

	if cfg.Width > 0 {
		sc.Width = uint32(cfg.Width)
	}
	if cfg.Height > 0 {
		sc.Height = uint32(cfg.Height)
	}
	if cfg.FOV > 0 {
		sc.FOV = cfg.FOV
	}
	if cfg.MaxDepth > 0 {
		sc.MaxRecursionDepth = cfg.MaxDepth
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneID string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", timestamp))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stripe", "Columns", "Pixels", "% of frame", "Render time"})
	for _, stat := range stats.Stripes {
		percent := 0.0
		if stats.TotalPixels > 0 {
			percent = 100 * float64(stat.Pixels) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.Index),
			fmt.Sprintf("%d-%d", stat.Bounds.Min.X, stat.Bounds.Max.X-1),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			stat.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", stats.TotalPixels), "TOTAL", stats.Duration.String()})

	table.Render()
	return buf.String()
}
