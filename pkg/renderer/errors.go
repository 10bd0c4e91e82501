package renderer

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	// ErrInvalidDimensions is returned when the image is not wider than it is tall
	ErrInvalidDimensions = scene.ErrInvalidDimensions
	ErrWorkerPanic       = errors.New("renderer: worker panicked")
	ErrStripeOutOfBounds = errors.New("renderer: stripe outside destination image")
)
