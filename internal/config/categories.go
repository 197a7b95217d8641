package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lettrix/internal/domain"
)

//go:embed categories.yaml
var defaultCatalog []byte

// Catalog is the set of letter categories the service can generate.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Category describes how one letter type is assembled and exported.
type Category struct {
	ID                 string               `yaml:"id"`
	Name               string               `yaml:"name"`
	MissingPlaceholder domain.MissingPolicy `yaml:"missing_placeholder"`
	DateFields         []string             `yaml:"date_fields,omitempty"`
	TodayFields        []string             `yaml:"today_fields,omitempty"`
	MaterializeDates   bool                 `yaml:"materialize_dates,omitempty"`
	Aliases            []Alias              `yaml:"aliases,omitempty"`
	Fallback           Fallback             `yaml:"fallback"`
	Extras             []Block              `yaml:"extras,omitempty"`
	Closings           []Block              `yaml:"closings,omitempty"`
	Signature          Signature            `yaml:"signature"`
	Required           []string             `yaml:"required,omitempty"`
	Export             ExportLayout         `yaml:"export"`
}

// Alias copies From into Field when Field is empty.
type Alias struct {
	Field string `yaml:"field"`
	From  string `yaml:"from"`
}

// Fallback holds the single variant used when a section's pool is empty.
type Fallback struct {
	Intro      string `yaml:"intro"`
	Body       string `yaml:"body"`
	Conclusion string `yaml:"conclusion"`
}

// For returns the fallback text of a section.
func (f Fallback) For(s domain.Section) string {
	switch s {
	case domain.SectionIntro:
		return f.Intro
	case domain.SectionBody:
		return f.Body
	case domain.SectionConclusion:
		return f.Conclusion
	}
	return ""
}

// Block is an optional labelled paragraph emitted when Field is non-blank.
type Block struct {
	Field string `yaml:"field"`
	Label string `yaml:"label,omitempty"`
}

// Signature controls the "Sincerely," block closing the letter.
type Signature struct {
	Fields []string `yaml:"fields"`
	Always bool     `yaml:"always,omitempty"`
}

// ExportLayout holds the document chrome used by exporters.
type ExportLayout struct {
	Title      string   `yaml:"title"`
	Greeting   string   `yaml:"greeting,omitempty"`
	Footer     string   `yaml:"footer,omitempty"`
	FilePrefix string   `yaml:"file_prefix"`
	Details    []Detail `yaml:"details,omitempty"`
}

// Detail maps a field to a row in the exported summary table.
type Detail struct {
	Label string `yaml:"label"`
	Field string `yaml:"field"`
}

// Find returns the category with the given id, or nil.
func (c *Catalog) Find(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

// IDs returns the category ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	return ids
}

// DefaultCatalog returns the embedded catalog of built-in categories.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, &domain.ConfigError{ConfigName: "categories", Err: fmt.Errorf("parse: %w", err)}
	}

	if err := ValidateCatalog(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}
