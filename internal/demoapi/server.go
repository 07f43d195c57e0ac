// Package demoapi serves canned responses for the backend REST surface so
// the front-end can run same-origin without a training backend. It does
// no training and no host introspection.
package demoapi

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"studio/pkg/types"
)

// DemoMessage is the message of every simulated training start.
const DemoMessage = "Training simulation started (this is a demo)"

// Server holds the demo backend state.
type Server struct {
	models  []types.Model
	now     func() time.Time
	maxBody int64
	origins []string

	mu      sync.Mutex
	lastJob *types.TrainingStatus
}

// Option customizes a Server.
type Option func(*Server)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxBodyBytes limits POST bodies (default 1 MiB).
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithCORS enables CORS for the given origins.
func WithCORS(origins []string) Option {
	return func(s *Server) { s.origins = append([]string(nil), origins...) }
}

// New returns a demo backend serving models as its catalog.
func New(models []types.Model, opts ...Option) *Server {
	s := &Server{
		models:  append([]types.Model(nil), models...),
		now:     time.Now,
		maxBody: 1 << 20,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Routes returns the API router, meant to be mounted at /api.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: !containsWildcard(s.origins),
		}))
	}
	r.Get("/health", s.health)
	r.Get("/system", s.system)
	r.Get("/models", s.listModels)
	r.Post("/echo", s.echo)
	r.Post("/train/start", s.startTraining)
	r.Get("/train/status", s.trainingStatus)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "API endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// health godoc
// @Summary      Backend health
// @Tags         system
// @Produce      json
// @Success      200  {object}  types.HealthStatus
// @Router       /api/health [get]
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthStatus{Status: "healthy", Timestamp: s.timestamp()})
}

// system godoc
// @Summary      Host snapshot (static in demo mode)
// @Tags         system
// @Produce      json
// @Success      200  {object}  types.SystemInfo
// @Router       /api/system [get]
func (s *Server) system(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.SystemInfo{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		CPUCount: runtime.NumCPU(),
		GPU:      types.GPUInfo{Available: false, Devices: []types.GPUDevice{}},
	})
}

// listModels godoc
// @Summary      Model catalog
// @Tags         models
// @Produce      json
// @Success      200  {object}  types.ModelsResponse
// @Router       /api/models [get]
func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	models := s.models
	if models == nil {
		models = []types.Model{}
	}
	writeJSON(w, http.StatusOK, types.ModelsResponse{Models: models})
}

// echo godoc
// @Summary      Connectivity round-trip
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        body  body      types.EchoRequest  true  "Text to echo"
// @Success      200   {object}  types.EchoResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /api/echo [post]
func (s *Server) echo(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeObject(w, r)
	if !ok {
		return
	}
	text := "nothing"
	if v, ok := body["text"]; ok && v != nil {
		text = fmt.Sprint(v)
	}
	writeJSON(w, http.StatusOK, types.EchoResponse{
		Received:  body,
		Message:   "Hello! You sent: " + text,
		Timestamp: s.timestamp(),
	})
}

// startTraining godoc
// @Summary      Simulate a training start
// @Tags         training
// @Accept       json
// @Produce      json
// @Param        body  body      types.TrainingConfig  true  "Training configuration"
// @Success      200   {object}  types.TrainingStatus
// @Failure      400   {object}  types.ErrorResponse
// @Router       /api/train/start [post]
func (s *Server) startTraining(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.decodeObject(w, r); !ok {
		return
	}
	st := types.TrainingStatus{
		Status:  types.TrainingStarted,
		JobID:   "job_" + s.now().Format("20060102_150405"),
		Message: DemoMessage,
	}
	s.mu.Lock()
	s.lastJob = &st
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

// trainingStatus godoc
// @Summary      Current training status
// @Tags         training
// @Produce      json
// @Success      200  {object}  types.TrainingStatus
// @Router       /api/train/status [get]
func (s *Server) trainingStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	last := s.lastJob
	s.mu.Unlock()
	if last == nil {
		writeJSON(w, http.StatusOK, types.TrainingStatus{Status: types.TrainingIdle, Message: "No training in progress"})
		return
	}
	writeJSON(w, http.StatusOK, *last)
}

func (s *Server) timestamp() string { return s.now().Format(time.RFC3339) }

// decodeObject reads a JSON object body, answering 400 on anything else.
func (s *Server) decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	var body map[string]any
	if err := sonic.ConfigStd.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigStd.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
