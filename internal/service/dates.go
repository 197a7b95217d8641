package service

import "time"

// Accepted input layouts, tried in order. Single-digit days and months are accepted.
var dateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"2-1-2006",
	"2006/1/2",
}

// DisplayDateLayout renders dates as "January 05, 2024".
const DisplayDateLayout = "January 02, 2006"

// NormalizeDate rewrites a date in one of the accepted layouts as "Month DD, YYYY".
// Unparseable input is returned unchanged; empty input stays empty.
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return s
}
