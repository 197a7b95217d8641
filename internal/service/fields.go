package service

import (
	"strings"
	"time"

	"lettrix/internal/config"
	"lettrix/internal/domain"
)

// PrepareFields returns a copy of fields ready for substitution: aliases are
// resolved, empty today-fields default to now, and date fields are normalized.
// Absent date fields become "" when the category materializes dates; otherwise
// they stay absent so the missing policy still applies.
func PrepareFields(cat *config.Category, fields domain.FieldMap, now time.Time) domain.FieldMap {
	info := fields.Clone()

	for _, a := range cat.Aliases {
		if info[a.Field] == "" && info[a.From] != "" {
			info[a.Field] = info[a.From]
		}
	}

	for _, f := range cat.TodayFields {
		if info[f] == "" {
			info[f] = now.Format("2006-01-02")
		}
	}

	for _, f := range cat.DateFields {
		if v, ok := info[f]; ok {
			info[f] = NormalizeDate(v)
		} else if cat.MaterializeDates {
			info[f] = ""
		}
	}

	return info
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
