package models

import (
	"errors"

	"lettrix/internal/domain"
)

// GenerateRequest carries the user supplied fields of a letter.
type GenerateRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

// FieldMap returns the fields coerced to strings.
func (r *GenerateRequest) FieldMap() domain.FieldMap {
	return domain.FieldsFromAny(r.Fields)
}

// ExportRequest asks for a letter to be rendered into a downloadable document.
type ExportRequest struct {
	Format string                 `json:"format"`
	UserID string                 `json:"user_id"`
	Text   string                 `json:"text"`
	Fields map[string]interface{} `json:"fields"`
}

// Validate checks if the export request is valid.
func (r *ExportRequest) Validate() error {
	if r.Format == "" {
		return errors.New("format is required")
	}
	return nil
}

// FieldMap returns the fields coerced to strings.
func (r *ExportRequest) FieldMap() domain.FieldMap {
	return domain.FieldsFromAny(r.Fields)
}
