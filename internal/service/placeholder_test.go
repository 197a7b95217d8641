package service

import (
	"reflect"
	"strings"
	"testing"

	"lettrix/internal/domain"
)

func TestSubstitute_ReplacesKnownPlaceholders(t *testing.T) {
	fields := domain.FieldMap{"name": "Alice", "company": "Acme"}

	got := Substitute("{name} works at {company}. Ask {name}.", fields, domain.KeepMissing)

	want := "Alice works at Acme. Ask Alice."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstitute_KeepPolicyPreservesUnknownMarker(t *testing.T) {
	got := Substitute("Hello {name}, see {missing}.", domain.FieldMap{"name": "Bob"}, domain.KeepMissing)

	if got != "Hello Bob, see {missing}." {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSubstitute_EmptyPolicyDropsUnknownMarker(t *testing.T) {
	got := Substitute("Hello {name}, see {missing}.", domain.FieldMap{"name": "Bob"}, domain.EmptyMissing)

	if got != "Hello Bob, see ." {
		t.Errorf("unexpected output %q", got)
	}
	if strings.ContainsAny(got, "{}") {
		t.Errorf("residual marker in %q", got)
	}
}

func TestSubstitute_EmptyValueIsStillAMatch(t *testing.T) {
	got := Substitute("[{name}]", domain.FieldMap{"name": ""}, domain.KeepMissing)

	if got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
}

func TestSubstitute_ValuesInsertedVerbatim(t *testing.T) {
	fields := domain.FieldMap{"a": "<b>{b}</b> & 100%"}

	got := Substitute("x {a} y", fields, domain.KeepMissing)

	if got != "x <b>{b}</b> & 100% y" {
		t.Errorf("value was rewritten: %q", got)
	}
}

func TestSubstitute_IgnoresNonIdentifierBraces(t *testing.T) {
	tmpl := "json {\"a\": 1} and {} and {1st}"

	got := Substitute(tmpl, domain.FieldMap{}, domain.EmptyMissing)

	if got != tmpl {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestPlaceholders_DistinctInOrder(t *testing.T) {
	got := Placeholders("{b} {a} {b} {c_1}")

	want := []string{"b", "a", "c_1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
