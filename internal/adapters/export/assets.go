package export

import (
	"os"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// resolveAsset maps a caller supplied image path onto a file under root.
// Paths escaping root, unknown extensions and missing files resolve to "".
func resolveAsset(root, p string) string {
	if root == "" || strings.TrimSpace(p) == "" {
		return ""
	}

	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(strings.TrimSpace(p), "/\\")))
	if !filepath.IsLocal(rel) {
		return ""
	}

	if !imageExtensions[strings.ToLower(filepath.Ext(rel))] {
		return ""
	}

	full := filepath.Join(root, rel)
	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}

	return full
}

// contactLine joins the phone and email parts of a letterhead.
func contactLine(phone, email string) string {
	var parts []string
	if phone != "" {
		parts = append(parts, "Phone: "+phone)
	}
	if email != "" {
		parts = append(parts, "Email: "+email)
	}
	return strings.Join(parts, " | ")
}

// placeLine joins signature place and date.
func placeLine(place, date string) string {
	return strings.TrimSpace(place + " " + date)
}
