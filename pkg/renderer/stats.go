package renderer

import (
	"image"
	"time"
)

// StripeStats describes the work done by one worker
type StripeStats struct {
	Index    int             // Position of the stripe, left to right
	Bounds   image.Rectangle // Columns and rows covered, in image coordinates
	Pixels   int             // Number of pixels shaded
	Duration time.Duration   // Wall time spent shading the stripe
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	NumWorkers  int           // Requested worker count after defaulting
	TotalPixels int           // Total number of pixels rendered
	Stripes     []StripeStats // One entry per spawned worker, in stripe order
	Duration    time.Duration // Wall time from first ray to assembled image
}

// SlowestStripe returns the stripe that took longest, or false if there are none
func (rs RenderStats) SlowestStripe() (StripeStats, bool) {
	if len(rs.Stripes) == 0 {
		return StripeStats{}, false
	}
	slowest := rs.Stripes[0]
	for _, s := range rs.Stripes[1:] {
		if s.Duration > slowest.Duration {
			slowest = s
		}
	}
	return slowest, true
}

// CalculateAverageLuminance computes the average luminance of an image
// using Rec. 709 weights on the display-encoded channels
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var totalLuminance float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels
			rf := float64(r) / 65535.0
			gf := float64(g) / 65535.0
			bf := float64(b) / 65535.0
			totalLuminance += 0.2126*rf + 0.7152*gf + 0.0722*bf
		}
	}

	return totalLuminance / float64(bounds.Dx()*bounds.Dy())
}
