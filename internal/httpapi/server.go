// Package httpapi exposes the noise-reduction engine over HTTP,
// mirroring the teacher's single-endpoint WAV-upload server but with
// a configuration surface (query parameters, presets) the original
// never had.
package httpapi

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

const maxUploadSize = 50 << 20 // 50 MB

// Server wraps the HTTP surface over the noise-reduction engine.
type Server struct {
	router *mux.Router
	log    *log.Logger
}

// New builds a Server with its routes registered.
func New(logger *log.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    logger,
	}
	s.router.Use(corsMiddleware)
	s.router.HandleFunc("/denoise", s.handleDenoise).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/presets", s.handlePresets).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// corsMiddleware adds CORS headers so a browser-hosted frontend on any
// origin can call this server directly, same as the teacher's
// corsMiddleware.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
