package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  // Scene ID (e.g., "cornell")
	Width    int     // Image width
	Height   int     // Image height
	FOV      float64 // Vertical field of view in degrees
	Workers  int     // Parallel workers (0 = CPU count)
	MaxDepth int     // Bounce limit (0 = integrator default)
}

// parseRenderRequest reads the scene and its overrides from the query string.
// Scene dimensions and fov are the defaults for absent parameters.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, *scene.Scene, error) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sc, err := scene.Create(req.Scene)
	if err != nil {
		return nil, nil, err
	}

	if req.Width, err = parseIntParam(query, "width", int(sc.Width), minDimension+1, maxDimension); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(query, "height", int(sc.Height), minDimension, maxDimension); err != nil {
		return nil, nil, err
	}
	if req.FOV, err = parseFloatParam(query, "fov", sc.FOV, 1, 179); err != nil {
		return nil, nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 0, maxDepth); err != nil {
		return nil, nil, err
	}

	sc.Width = uint32(req.Width)
	sc.Height = uint32(req.Height)
	sc.FOV = req.FOV
	if req.MaxDepth > 0 {
		sc.MaxRecursionDepth = req.MaxDepth
	}

	return req, sc, nil
}

// handleRender renders a scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, sc, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Use request context to stop rendering when the client disconnects
	img, stats, err := renderer.Render(r.Context(), sc, renderer.Options{
		NumWorkers: req.Workers,
		Logger:     s.logger,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, renderer.ErrInvalidDimensions) {
			status = http.StatusBadRequest
		}
		s.logger.Warningf("render of %s failed: %v", req.Scene, err)
		writeError(w, status, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Stripes", strconv.Itoa(len(stats.Stripes)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
