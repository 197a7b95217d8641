package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"lettrix/internal/config"
	"lettrix/internal/domain"
	"lettrix/internal/ports"
	"lettrix/internal/service"
)

// Stat counter names.
const (
	StatVisits         = "visits"
	statGeneratedGroup = "generated:"
	statExportedGroup  = "exported:"
)

const anonymousUser = "anonymous"

// CategoryInfo is the public description of a letter category.
type CategoryInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Required []string `json:"required"`
}

// ExportRequest asks for one letter to be rendered into a document.
type ExportRequest struct {
	Category string
	Format   string
	UserID   string
	// Text is caller edited letter text. When blank the letter is generated.
	Text   string
	Fields domain.FieldMap
}

// App wires the letter pipeline to its stores and exporters.
type App struct {
	cfg       *config.AppConfig
	catalog   *config.Catalog
	logger    *slog.Logger
	assembler *service.Assembler
	quota     *service.QuotaPolicy
	stats     ports.StatsStore
	exporters map[domain.Format]ports.Exporter
	now       func() time.Time
}

// Options configures the App.
type Options struct {
	Config    *config.AppConfig
	Catalog   *config.Catalog
	Logger    *slog.Logger
	Assembler *service.Assembler
	Quota     *service.QuotaPolicy
	Stats     ports.StatsStore
	Exporters []ports.Exporter
	Now       func() time.Time
}

// New creates a new App with all dependencies injected.
func New(opts Options) *App {
	exporters := make(map[domain.Format]ports.Exporter, len(opts.Exporters))
	for _, e := range opts.Exporters {
		exporters[e.Format()] = e
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	return &App{
		cfg:       cfg,
		catalog:   opts.Catalog,
		logger:    opts.Logger,
		assembler: opts.Assembler,
		quota:     opts.Quota,
		stats:     opts.Stats,
		exporters: exporters,
		now:       now,
	}
}

// Categories lists the categories in catalog order.
func (a *App) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(a.catalog.Categories))
	for _, c := range a.catalog.Categories {
		required := c.Required
		if required == nil {
			required = []string{}
		}
		out = append(out, CategoryInfo{ID: c.ID, Name: c.Name, Required: required})
	}
	return out
}

// Generate validates fields and assembles a letter of the given category.
func (a *App) Generate(ctx context.Context, categoryID string, fields domain.FieldMap) (domain.Result, error) {
	cat, err := a.category(categoryID)
	if err != nil {
		return domain.Result{}, err
	}

	if err := service.ValidateRequired(cat, fields); err != nil {
		return domain.Result{}, err
	}

	result := a.assembler.Generate(ctx, cat, fields)
	a.record(ctx, statGeneratedGroup+cat.ID)

	return result, nil
}

// Export renders a letter into a document, charging the user's export quota.
func (a *App) Export(ctx context.Context, req ExportRequest) (*domain.Export, error) {
	cat, err := a.category(req.Category)
	if err != nil {
		return nil, err
	}

	format, err := domain.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	exporter, ok := a.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		if err := service.ValidateRequired(cat, req.Fields); err != nil {
			return nil, err
		}
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = anonymousUser
	}

	if text == "" {
		text = a.assembler.Generate(ctx, cat, req.Fields).FullText
	}

	now := a.now()
	doc := a.buildDocument(cat, service.PrepareFields(cat, req.Fields, now), text)

	logger := a.logger.With("category", cat.ID, "format", format, "document_id", doc.ID)

	data, err := exporter.Export(ctx, doc)
	if err != nil {
		logger.Error("export failed", "error", err)
		return nil, &domain.ExportError{Category: cat.ID, Format: format, Err: err}
	}

	// The quota is charged only after a successful render.
	if a.quota != nil {
		allowed, err := a.quota.Allow(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("check quota: %w", err)
		}
		if !allowed {
			logger.Info("export refused by quota", "user_id", userID)
			return nil, domain.ErrQuotaExceeded
		}
	}

	a.record(ctx, statExportedGroup+string(format))
	logger.Info("letter exported", "bytes", len(data))

	return &domain.Export{
		ID:          doc.ID,
		Filename:    exportFilename(cat.Export.FilePrefix, now, doc.ID, format),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

// RecordVisit counts one handled request for today.
func (a *App) RecordVisit(ctx context.Context) {
	a.record(ctx, StatVisits)
}

// Stats returns the counters recorded for date (YYYY-MM-DD), today when blank.
func (a *App) Stats(ctx context.Context, date string) (map[string]int64, error) {
	if date == "" {
		date = a.now().Format(time.DateOnly)
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidArgument, date)
	}
	if a.stats == nil {
		return map[string]int64{}, nil
	}

	counts, err := a.stats.Counts(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return counts, nil
}

func (a *App) category(id string) (*config.Category, error) {
	cat := a.catalog.Find(id)
	if cat == nil {
		return nil, fmt.Errorf("category %q: %w", id, domain.ErrNotFound)
	}
	return cat, nil
}

// record increments a stat counter. Failures are logged and otherwise ignored.
func (a *App) record(ctx context.Context, name string) {
	if a.stats == nil {
		return
	}
	date := a.now().Format(time.DateOnly)
	if err := a.stats.Incr(ctx, date, name); err != nil {
		a.logger.Warn("failed to record stat", "stat", name, "date", date, "error", err)
	}
}

func (a *App) buildDocument(cat *config.Category, info domain.FieldMap, text string) *domain.Document {
	layout := cat.Export

	details := make([]domain.DetailRow, 0, len(layout.Details))
	for _, d := range layout.Details {
		if v := strings.TrimSpace(info.Get(d.Field)); v != "" {
			details = append(details, domain.DetailRow{Label: d.Label, Value: v})
		}
	}

	return &domain.Document{
		ID:       uuid.NewString(),
		Category: cat.ID,
		Title:    layout.Title,
		Letterhead: domain.Letterhead{
			CompanyName: info.Get("company_name"),
			Address:     info.Get("company_address"),
			Phone:       info.Get("company_phone"),
			Email:       info.Get("company_email"),
			LogoPath:    info.Get("company_logo"),
		},
		Details:  details,
		Greeting: layout.Greeting,
		Text:     text,
		Signature: domain.Signature{
			Name:  info.Get("signer_name"),
			Role:  info.Get("signer_role"),
			Place: info.Get("signature_place"),
			Date:  info.Get("signature_date"),
		},
		Footer:    layout.Footer,
		Watermark: a.cfg.Export.Watermark,
	}
}

func exportFilename(prefix string, now time.Time, id string, format domain.Format) string {
	if prefix == "" {
		prefix = "letter"
	}
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, now.Format("20060102150405"), short, format)
}
