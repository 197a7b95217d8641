package main

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"lettrix/internal/adapters/variants"
	"lettrix/internal/logging"
	"lettrix/internal/poolserver"
)

func main() {
	logger := logging.New(logging.DefaultConfig())

	addr := os.Getenv("POOLS_ADDR")
	if addr == "" {
		addr = ":2772"
	}

	var fsys fs.FS
	if dir := os.Getenv("POOLS_DIR"); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			logger.Error("pools directory does not exist", "path", dir, "error", err)
			os.Exit(1)
		}
		fsys = os.DirFS(dir)
		logger.Info("serving pools from directory", "path", dir)
	} else {
		fsys = variants.EmbeddedPools()
		logger.Info("serving embedded pools")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           poolserver.NewServer(fsys, logging.WithComponent(logger, "poolserver")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting pool server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
