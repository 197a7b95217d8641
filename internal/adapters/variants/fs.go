package variants

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"lettrix/internal/domain"
)

//go:embed letters
var embedded embed.FS

// FSSource implements ports.VariantSource over a file system laid out as
// <category>/<section>.txts. Pools are read on every call.
type FSSource struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewFSSource creates a source reading from fsys.
func NewFSSource(fsys fs.FS, logger *slog.Logger) *FSSource {
	return &FSSource{fsys: fsys, logger: logger}
}

// NewDirSource creates a source reading from a directory on disk.
func NewDirSource(dir string, logger *slog.Logger) *FSSource {
	return NewFSSource(os.DirFS(dir), logger)
}

// EmbeddedPools returns the built-in pools rooted at the category directories.
func EmbeddedPools() fs.FS {
	sub, err := fs.Sub(embedded, "letters")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// NewEmbeddedSource creates a source serving the built-in pools.
func NewEmbeddedSource(logger *slog.Logger) *FSSource {
	return NewFSSource(EmbeddedPools(), logger)
}

// Load returns the variants for one section. A missing file yields an empty pool.
func (s *FSSource) Load(_ context.Context, category string, section domain.Section) ([]string, error) {
	path := PoolPath(category, string(section))
	if !fs.ValidPath(path) {
		return nil, nil
	}

	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("variant pool not found", "path", path)
			return nil, nil
		}
		return nil, &domain.SourceError{Category: category, Section: section, Err: err}
	}

	return ParsePool(string(data)), nil
}
