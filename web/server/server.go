package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/setup"
)

// Request limits keep a single request from monopolizing the server
const (
	maxImageSize = 2048
	maxSamples   = 1024
	maxBounces   = 256
)

// Server renders built-in setups over HTTP
type Server struct {
	port   int
	logger *log.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger *log.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string             // Built-in setup name
	Width   int                // Image width
	Height  int                // Image height
	Samples int                // Antialias samples per pixel
	Bounces int                // Bounce limit
	Debug   renderer.DebugMode // Debug shading
	Seed    uint64             // Random seed
	Format  output.Format      // Encoding of the response image
}

// Handler returns the HTTP handler with all API endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/setups", s.handleSetups)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("Starting web server", "url", "http://localhost"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSetups lists the built-in setups with their default parameters
func (s *Server) handleSetups(w http.ResponseWriter, r *http.Request) {
	type setupInfo struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		Samples     int    `json:"samples"`
		Bounces     int    `json:"bounces"`
		Debug       string `json:"debug"`
	}

	var infos []setupInfo
	for _, info := range setup.ListPresets() {
		preset, err := setup.Preset(info.ID)
		if err != nil {
			continue
		}
		p := preset.Parameters
		infos = append(infos, setupInfo{
			ID:          info.ID,
			Description: info.Description,
			Width:       p.ImageWidth,
			Height:      p.ImageHeight,
			Samples:     p.AntialiasSamples,
			Bounces:     p.BounceLimit,
			Debug:       p.DebugMode.String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"setups": infos})
}

// handleRender renders a setup and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preset, err := setup.Preset(req.Scene)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	params := preset.Parameters
	params.ImageWidth = req.Width
	params.ImageHeight = req.Height
	params.AntialiasSamples = req.Samples
	params.BounceLimit = req.Bounces
	params.DebugMode = req.Debug
	params.Seed = req.Seed

	logger := s.logger.With("scene", req.Scene)
	rt, err := renderer.NewRaytracer(preset.Scene, params, logger.WithPrefix("renderer"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The render stops between tiles when the client goes away
	img, stats, err := rt.Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Client cancelled render", "tiles", stats.Tiles)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := req.Format.Encode(&buf, img.ToNRGBA()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/"+contentSubtype(req.Format))
	w.Header().Set("X-Render-Duration", stats.Duration.Round(time.Millisecond).String())
	w.Header().Set("X-Render-Rays", strconv.Itoa(stats.TotalRays))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())

	logger.Info("Served render", "duration", stats.Duration, "bytes", buf.Len())
}

func contentSubtype(f output.Format) string {
	switch f.(type) {
	case output.BMP:
		return "bmp"
	case output.TIFF:
		return "tiff"
	}
	return "png"
}

// parseRenderRequest reads the render settings from the query, defaulting to a small preview
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 10, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Bounces, err = parseIntParam(query, "bounces", 16, 0, maxBounces); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 42, 0, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	req.Seed = uint64(seed)

	if req.Debug, err = renderer.ParseDebugMode(query.Get("debug")); err != nil {
		return nil, err
	}

	format := query.Get("format")
	if format == "" {
		format = "png"
	}
	if req.Format, err = output.FormatByName(format); err != nil {
		return nil, err
	}

	return req, nil
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

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
