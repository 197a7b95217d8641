package service

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"lettrix/internal/config"
	"lettrix/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// fixedPicker always returns the same index.
type fixedPicker int

func (p fixedPicker) Pick(n int) int { return int(p) % n }

// mapSource serves pools from memory keyed by "category/section".
type mapSource struct {
	pools map[string][]string
	err   error
	calls int
}

func (s *mapSource) Load(_ context.Context, category string, section domain.Section) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pools[category+"/"+string(section)], nil
}

var errSourceDown = errors.New("source down")

func mustCategory(id string) *config.Category {
	cat, err := config.DefaultCatalog()
	if err != nil {
		panic(err)
	}
	c := cat.Find(id)
	if c == nil {
		panic("unknown category " + id)
	}
	return c
}
