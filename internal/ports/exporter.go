package ports

import (
	"context"

	"lettrix/internal/domain"
)

// Exporter renders a laid out letter into a downloadable document.
type Exporter interface {
	// Format returns the document format this exporter produces.
	Format() domain.Format

	// ContentType returns the MIME type of the produced document.
	ContentType() string

	// Export renders the document.
	Export(ctx context.Context, doc *domain.Document) ([]byte, error)
}
