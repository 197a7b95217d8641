// Package poolserver serves variant pool files over HTTP for the HTTP variant source.
package poolserver

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const poolExt = ".txts"

// Server serves <category>/<section>.txts files from a file system.
type Server struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewServer creates a pool server backed by fsys.
func NewServer(fsys fs.FS, logger *slog.Logger) *Server {
	return &Server{
		fsys:   fsys,
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.URL.Path == "/health" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		s.logger.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	if !fs.ValidPath(name) || path.Ext(name) != poolExt || strings.Count(name, "/") != 1 {
		w.WriteHeader(http.StatusBadRequest)
		s.logger.Warn("invalid pool path", "path", r.URL.Path)
		return
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.WriteHeader(http.StatusNotFound)
			s.logger.Debug("pool not found", "pool", name)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error("failed to read pool", "pool", name, "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	s.logger.Info("pool served",
		"pool", name,
		"size", len(data),
		"duration", time.Since(start),
	)
}
