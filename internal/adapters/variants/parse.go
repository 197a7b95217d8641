package variants

import "strings"

// Separator is the line that divides two variants in a pool file.
const Separator = "---"

// ParsePool splits pool contents on lines consisting solely of "---",
// trims each segment and drops the empty ones.
func ParsePool(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var (
		pool    []string
		segment []string
	)
	flush := func() {
		if v := strings.TrimSpace(strings.Join(segment, "\n")); v != "" {
			pool = append(pool, v)
		}
		segment = segment[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		if line == Separator {
			flush()
			continue
		}
		segment = append(segment, line)
	}
	flush()

	return pool
}

// PoolPath returns the resource path of one section's pool.
func PoolPath(category, section string) string {
	return category + "/" + section + ".txts"
}
