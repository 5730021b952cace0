package webapp

import (
	"context"
	"embed"
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

//go:embed static
var staticFS embed.FS

// Server ties the handlers, the embedded page and an http.Server
// together.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the route table around h.
func NewServer(addr string, h *Handler, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/rhythms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Rhythms(w, r)
	})
	mux.HandleFunc("/api/simulate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Simulate(w, r)
	})
	mux.HandleFunc("/api/spectrum", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Spectrum(w, r)
	})
	mux.HandleFunc("/live", h.Live)
	mux.HandleFunc("/healthz", h.Health)

	staticRoot, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(staticRoot)))

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
		logger:     logger,
	}
}

// Start begins serving and blocks until the listener stops. A close
// through Stop is not an error.
func (s *Server) Start() error {
	s.logger.Info("listening", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Routes exposes the handler tree for tests.
func (s *Server) Routes() http.Handler {
	return s.httpServer.Handler
}
