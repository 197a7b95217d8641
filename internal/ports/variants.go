package ports

import (
	"context"

	"lettrix/internal/domain"
)

// VariantSource loads the phrasing options for one section of a letter category.
type VariantSource interface {
	// Load returns the trimmed, non-empty variants in resource order.
	// A missing or empty resource yields an empty slice and a nil error.
	Load(ctx context.Context, category string, section domain.Section) ([]string, error)
}

// Picker chooses one index out of n. Implementations must return a value in [0, n) for n > 0.
type Picker interface {
	Pick(n int) int
}
