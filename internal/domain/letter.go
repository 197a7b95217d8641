package domain

import (
	"fmt"
	"strconv"
)

// Section is one of the three template parts every letter is built from.
type Section string

const (
	SectionIntro      Section = "intro"
	SectionBody       Section = "body"
	SectionConclusion Section = "conclusion"
)

// Sections lists the template sections in assembly order.
var Sections = []Section{SectionIntro, SectionBody, SectionConclusion}

// MissingPolicy decides what happens to a {name} placeholder with no matching field.
type MissingPolicy string

const (
	// KeepMissing leaves the literal {name} marker in the output.
	KeepMissing MissingPolicy = "keep"
	// EmptyMissing replaces the marker with an empty string.
	EmptyMissing MissingPolicy = "empty"
)

// Valid reports whether p is a known policy.
func (p MissingPolicy) Valid() bool {
	return p == KeepMissing || p == EmptyMissing
}

// FieldMap holds caller supplied placeholder values.
type FieldMap map[string]string

// Get returns the value for key, or "" when absent.
func (f FieldMap) Get(key string) string {
	return f[key]
}

// Clone returns a shallow copy that can be mutated freely.
func (f FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// FieldsFromAny coerces decoded JSON values into a FieldMap.
// nil becomes "", everything else uses its textual form.
func FieldsFromAny(values map[string]any) FieldMap {
	out := make(FieldMap, len(values))
	for k, v := range values {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}

// Result is the output of one letter generation.
type Result struct {
	Category   string `json:"category"`
	FullText   string `json:"full_text"`
	Intro      string `json:"intro"`
	Body       string `json:"body"`
	Conclusion string `json:"conclusion"`
}
