package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	minDimension = 1
	maxDimension = 4096
	maxWorkers   = 256
	maxDepth     = 16
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger log.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:   port,
		logger: log.New("web"),
	}
}

// Handler returns the HTTP routes served by Start
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/health", s.handleHealth)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sc, err := scene.Create(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":      sc.Width,
			"height":     sc.Height,
			"fov":        sc.FOV,
			"maxDepth":   integrator.NewWhittedIntegrator().DepthLimit(sc),
			"shadowBias": sc.Bias(),
			"objects":    sc.GetPrimitiveCount(),
			"lights":     len(sc.Lights),
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minDimension + 1, "max": maxDimension},
			"height":   map[string]int{"min": minDimension, "max": maxDimension},
			"workers":  map[string]int{"min": 0, "max": maxWorkers},
			"maxDepth": map[string]int{"min": 0, "max": maxDepth},
			"fov":      map[string]float64{"min": 1, "max": 179},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
