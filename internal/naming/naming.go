// Package naming provides identifier sanitization and the registry of
// generated type names used during preprocessing.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Beautify converts an arbitrary string into an identifier-safe name.
// Runs of non-alphanumeric characters collapse into a single underscore,
// leading and trailing separators are dropped, and a leading digit is
// prefixed with an underscore.
// Example: "get:/widgets/{id}" -> "get_widgets_id"
// Example: "/pets" -> "pets"
func Beautify(s string) string {
	var result strings.Builder
	pendingSep := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && result.Len() > 0 {
				result.WriteByte('_')
			}
			pendingSep = false
			result.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	out := result.String()
	if out == "" {
		return ""
	}
	if first, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(first) {
		out = "_" + out
	}
	return out
}

// Hints are the candidate sources for a generated type name, in priority
// order: a schema reference, the schema's own title, the endpoint path.
type Hints struct {
	FromRef    string
	FromSchema string
	FromPath   string
}

// InOrder returns the hints in resolution priority order, including empty
// entries so callers can distinguish "absent" from "collided".
func (h Hints) InOrder() []string {
	return []string{h.FromRef, h.FromSchema, h.FromPath}
}

// Registry tracks generated names assigned during one preprocessing run.
// It holds the set of used sanitized names and a reverse map from each
// sanitized name to the original string it was derived from. A Registry
// grows monotonically and is never shared across runs.
type Registry struct {
	used    map[string]struct{}
	sources map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		used:    make(map[string]struct{}),
		sources: make(map[string]string),
	}
}

// Has reports whether a sanitized name is already assigned.
func (r *Registry) Has(name string) bool {
	_, ok := r.used[name]
	return ok
}

// Put records a sanitized name and the original string it came from.
func (r *Registry) Put(name, original string) {
	r.used[name] = struct{}{}
	r.sources[name] = original
}

// BeautifyAndStore sanitizes raw, records the reverse mapping, and returns
// the sanitized name.
func (r *Registry) BeautifyAndStore(raw string) string {
	name := Beautify(raw)
	r.Put(name, raw)
	return name
}

// Source returns the original string a sanitized name was derived from.
func (r *Registry) Source(name string) (string, bool) {
	original, ok := r.sources[name]
	return original, ok
}

// Len returns the number of assigned names.
func (r *Registry) Len() int {
	return len(r.used)
}
