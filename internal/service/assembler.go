package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lettrix/internal/config"
	"lettrix/internal/domain"
	"lettrix/internal/ports"
)

const (
	paragraphSeparator = "\n\n"
	signatureOpening   = "Sincerely,"
)

// Assembler builds letter text from variant pools and a Field Map.
// It never fails: missing pools fall back to the category default,
// unparseable dates pass through and unknown placeholders follow the category policy.
type Assembler struct {
	source ports.VariantSource
	picker ports.Picker
	logger *slog.Logger
	now    func() time.Time
}

// NewAssembler creates a new assembler with injected dependencies.
func NewAssembler(source ports.VariantSource, picker ports.Picker, logger *slog.Logger) *Assembler {
	if picker == nil {
		picker = RandomPicker{}
	}
	return &Assembler{
		source: source,
		picker: picker,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source used for today-defaulted fields.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Generate assembles a letter of the given category.
func (a *Assembler) Generate(ctx context.Context, cat *config.Category, fields domain.FieldMap) domain.Result {
	logger := a.logger.With("category", cat.ID)
	info := PrepareFields(cat, fields, a.now())

	result := domain.Result{
		Category:   cat.ID,
		Intro:      a.renderSection(ctx, cat, domain.SectionIntro, info, logger),
		Body:       a.renderSection(ctx, cat, domain.SectionBody, info, logger),
		Conclusion: a.renderSection(ctx, cat, domain.SectionConclusion, info, logger),
	}
	result.FullText = Assemble(cat, &result, info)

	logger.Debug("letter generated", "length", len(result.FullText))
	return result
}

// pool returns the variants for one section, falling back to the category default.
func (a *Assembler) pool(ctx context.Context, cat *config.Category, section domain.Section, logger *slog.Logger) []string {
	var pool []string
	if a.source != nil {
		loaded, err := a.source.Load(ctx, cat.ID, section)
		if err != nil {
			logger.Warn("variant source failed, using fallback", "section", section, "error", err)
		} else {
			pool = loaded
		}
	}

	if len(pool) == 0 {
		logger.Debug("empty variant pool, using fallback", "section", section)
		return []string{cat.Fallback.For(section)}
	}

	return pool
}

func (a *Assembler) renderSection(
	ctx context.Context,
	cat *config.Category,
	section domain.Section,
	info domain.FieldMap,
	logger *slog.Logger,
) string {
	variant := PickVariant(a.picker, a.pool(ctx, cat, section, logger))

	if missing := unresolved(variant, info); len(missing) > 0 {
		logger.Debug("unresolved placeholders",
			"section", section,
			"names", missing,
			"policy", cat.MissingPlaceholder,
		)
	}

	return Substitute(variant, info, cat.MissingPlaceholder)
}

// unresolved lists the placeholders of tmpl that have no entry in info.
func unresolved(tmpl string, info domain.FieldMap) []string {
	var missing []string
	for _, name := range Placeholders(tmpl) {
		if _, ok := info[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Assemble joins the rendered sections with the category's optional blocks:
// intro, body, extras, conclusion, closings, signature. Blank parts are
// skipped and the rest are separated by one blank line.
func Assemble(cat *config.Category, sections *domain.Result, info domain.FieldMap) string {
	parts := []string{sections.Intro, sections.Body}
	parts = appendBlocks(parts, cat.Extras, info)
	parts = append(parts, sections.Conclusion)
	parts = appendBlocks(parts, cat.Closings, info)

	if sig := signatureBlock(cat.Signature, info); sig != "" {
		parts = append(parts, sig)
	}

	kept := parts[:0]
	for _, p := range parts {
		if !isBlank(p) {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, paragraphSeparator)
}

func appendBlocks(parts []string, blocks []config.Block, info domain.FieldMap) []string {
	for _, b := range blocks {
		v := strings.TrimSpace(info[b.Field])
		if v == "" {
			continue
		}
		parts = append(parts, b.Label+v)
	}
	return parts
}

func signatureBlock(sig config.Signature, info domain.FieldMap) string {
	if len(sig.Fields) == 0 {
		return ""
	}

	lines := make([]string, 0, len(sig.Fields)+1)
	lines = append(lines, signatureOpening)
	present := false
	for _, f := range sig.Fields {
		v := strings.TrimSpace(info[f])
		if v != "" {
			present = true
		}
		lines = append(lines, v)
	}

	if !present && !sig.Always {
		return ""
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
