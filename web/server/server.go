package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Request limits
const (
	MaxWidth        = 1920
	MaxHeight       = 1080
	MaxSamples      = 256
	MaxSceneBytes   = 1 << 20
	DefaultTileSize = 32
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	assetDir string // Base directory for texture paths in uploaded scenes
}

// NewServer creates a new web server. Relative texture paths in uploaded
// scene files are resolved against assetDir.
func NewServer(port int, assetDir string) *Server {
	return &Server{port: port, assetDir: assetDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Built-in scene id, used when no scene file is posted
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	Samples  int     `json:"samples"`  // Samples per pixel
	Aperture float64 `json:"aperture"` // Lens radius
	Focus    float64 `json:"focus"`    // Focus distance
	Seed     int64   `json:"seed"`     // Base random seed
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	TilesRendered    int     `json:"tilesRendered"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	SamplesPerSecond float64 `json:"samplesPerSecond"`
	PrimitiveCount   int     `json:"primitiveCount"`
}

func newStats(stats renderer.RenderStats, s *scene.Scene) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		TotalSamples:     stats.TotalSamples,
		TilesRendered:    stats.TilesRendered,
		Workers:          stats.Workers,
		ElapsedMs:        stats.Duration.Milliseconds(),
		SamplesPerSecond: stats.SamplesPerSecond(),
		PrimitiveCount:   s.GetPrimitiveCount(),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListBuiltinScenes())
}

// handleSceneConfig returns the default render parameters and their limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sampling := renderer.DefaultSamplingConfig()
	render := renderer.DefaultRenderConfig()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"defaults": map[string]interface{}{
			"width":    render.Width,
			"height":   render.Height,
			"samples":  sampling.SamplesPerPixel,
			"aperture": sampling.Aperture,
			"focus":    sampling.FocusDistance,
			"seed":     render.Seed,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": 1, "max": MaxWidth},
			"height":  map[string]int{"min": 1, "max": MaxHeight},
			"samples": map[string]int{"min": 1, "max": MaxSamples},
		},
	})
}

// handleRender renders a scene and responds with a PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(w, r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pool, err := s.newWorkerPool(sceneObj, req, serverLogger{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, stats, err := pool.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToImage()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses and validates the query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	sampling := renderer.DefaultSamplingConfig()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, MaxWidth); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 1, MaxHeight); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", sampling.SamplesPerPixel, 1, MaxSamples); err != nil {
		return nil, err
	}
	if req.Aperture, err = parseFloatParam(query, "aperture", sampling.Aperture, 0, 10); err != nil {
		return nil, err
	}
	if req.Focus, err = parseFloatParam(query, "focus", sampling.FocusDistance, 1e-3, 1e6); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(renderer.DefaultRenderConfig().Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// loadScene parses a posted scene file, or builds the requested built-in
// scene when the request carries no body
func (s *Server) loadScene(w http.ResponseWriter, r *http.Request, req *RenderRequest) (*scene.Scene, error) {
	if r.Method == http.MethodPost && r.Body != nil {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSceneBytes))
		if err != nil {
			return nil, fmt.Errorf("reading scene: %w", err)
		}
		if len(bytes.TrimSpace(body)) > 0 {
			sceneObj, err := loaders.ParseScene(bytes.NewReader(body), s.assetDir)
			if err != nil {
				return nil, fmt.Errorf("invalid scene: %w", err)
			}
			return sceneObj, nil
		}
	}

	return scene.NewBuiltinScene(req.Scene)
}

// newWorkerPool builds the raytracer and worker pool for a request
func (s *Server) newWorkerPool(sceneObj *scene.Scene, req *RenderRequest, logger core.Logger) (*renderer.WorkerPool, error) {
	rt, err := renderer.NewRaytracer(sceneObj, req.Width, req.Height, renderer.SamplingConfig{
		SamplesPerPixel: req.Samples,
		Aperture:        req.Aperture,
		FocusDistance:   req.Focus,
	})
	if err != nil {
		return nil, err
	}

	config := renderer.RenderConfig{
		Width:      req.Width,
		Height:     req.Height,
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect
		Seed:       req.Seed,
	}
	return renderer.NewWorkerPool(rt, config, logger), nil
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

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serverLogger forwards render progress to the standard logger
type serverLogger struct{}

func (serverLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
