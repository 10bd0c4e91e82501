package renderer

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// NewStripeLayout splits a width x height image into at most numStripes vertical
// stripes of ceil(width/numStripes) columns. The last stripe is clipped to the
// image and stripes that would be empty are omitted.
func NewStripeLayout(width, height, numStripes int) []image.Rectangle {
	if numStripes < 1 {
		numStripes = 1
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	stripeWidth := (width + numStripes - 1) / numStripes
	stripes := make([]image.Rectangle, 0, numStripes)
	for x := 0; x < width; x += stripeWidth {
		stripes = append(stripes, image.Rect(x, 0, min(x+stripeWidth, width), height))
	}
	return stripes
}

// copyStripe copies a rendered stripe into dst at the stripe's own bounds
func copyStripe(dst *image.RGBA, stripe *image.RGBA) error {
	sb := stripe.Bounds()
	if !sb.In(dst.Bounds()) {
		return fmt.Errorf("%w: stripe %v, image %v", ErrStripeOutOfBounds, sb, dst.Bounds())
	}
	draw.Copy(dst, sb.Min, stripe, sb, draw.Src, nil)
	return nil
}
