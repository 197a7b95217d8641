package service

import (
	"regexp"

	"lettrix/internal/domain"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Substitute replaces every {name} placeholder in tmpl with its value from fields.
// Names absent from fields are kept literally or dropped according to policy.
// Values are inserted verbatim.
func Substitute(tmpl string, fields domain.FieldMap, policy domain.MissingPolicy) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(marker string) string {
		name := marker[1 : len(marker)-1]
		if v, ok := fields[name]; ok {
			return v
		}
		if policy == domain.EmptyMissing {
			return ""
		}
		return marker
	})
}

// Placeholders lists the distinct placeholder names referenced by tmpl, in order of first use.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
