package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lettrix/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	want := []string{"work_certificate", "job_application", "leave_request", "internship_application", "resignation_letter"}
	if got := strings.Join(cat.IDs(), ","); got != strings.Join(want, ",") {
		t.Errorf("ids = %s", got)
	}

	if c := cat.Find("leave_request"); c == nil || c.MissingPlaceholder != domain.EmptyMissing {
		t.Errorf("leave_request should drop missing placeholders: %+v", c)
	}
	if c := cat.Find("internship_application"); c == nil || len(c.TodayFields) == 0 || !c.Signature.Always {
		t.Errorf("internship_application today/signature settings: %+v", c)
	}
	if cat.Find("nope") != nil {
		t.Error("unknown id should not resolve")
	}
}

const minimalCatalog = `
categories:
  - id: memo
    name: Memo
    missing_placeholder: keep
    fallback:
      intro: "Hi {name}."
      body: "Body."
      conclusion: "Bye."
    export:
      title: MEMO
      file_prefix: memo
`

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog([]byte(minimalCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c := cat.Find("memo"); c == nil || c.Fallback.For(domain.SectionIntro) != "Hi {name}." {
		t.Errorf("memo = %+v", c)
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "categories: []",
		"bad policy":     strings.Replace(minimalCatalog, "keep", "drop", 1),
		"empty fallback": strings.Replace(minimalCatalog, `body: "Body."`, `body: ""`, 1),
		"no prefix":      strings.Replace(minimalCatalog, "file_prefix: memo", "", 1),
		"duplicate id":   minimalCatalog + strings.Replace(minimalCatalog, "categories:\n", "", 1),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(data))

			var cerr *domain.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig in chain, got %v", err)
			}
		})
	}
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ParseCatalog([]byte("categories: ["))

	var cerr *domain.ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte(minimalCatalog), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.Categories) != 1 {
		t.Errorf("got %d categories", len(cat.Categories))
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if cat, err := LoadCatalog(""); err != nil || len(cat.Categories) != 5 {
		t.Errorf("empty path should load defaults: %v", err)
	}
}
