package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	ErrNotFound          = errors.New("not found")
	ErrQuotaExceeded     = errors.New("export quota exceeded")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// ValidationError reports required fields missing from a Field Map.
type ValidationError struct {
	Category string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("category %s: missing required fields: %s", e.Category, strings.Join(e.Missing, ", "))
}

// ExportError represents a document rendering failure.
type ExportError struct {
	Category string
	Format   Format
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: category=%s format=%s: %v", e.Category, e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	ConfigName string
	Field      string
	Err        error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: field %s: %v", e.ConfigName, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.ConfigName, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SourceError represents a variant pool that could not be read.
type SourceError struct {
	Category string
	Section  Section
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("variant source: category=%s section=%s: %v", e.Category, e.Section, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
