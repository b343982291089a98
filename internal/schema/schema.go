// Package schema defines a source-agnostic representation of JSON-schema
// payload shapes and the structural equality used for deduplication.
package schema

// Kind discriminates the schema variants.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindObject Kind = "object"
	KindArray  Kind = "array"
	// KindRef marks an unresolved or circular reference; carries only Ref.
	KindRef Kind = "ref"
)

// Schema is one node of a payload schema tree.
type Schema struct {
	Kind        Kind               `json:"kind"`
	Type        string             `json:"type,omitempty"` // scalar type: string, integer, number, boolean
	Format      string             `json:"format,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Ref         string             `json:"ref,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
}

// DeepEqual reports whether two schema trees are structurally identical.
// Object properties are compared order-insensitively, slices (enum,
// required) order-sensitively, everything else exactly. nil equals only nil.
func DeepEqual(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind ||
		a.Type != b.Type ||
		a.Format != b.Format ||
		a.Title != b.Title ||
		a.Description != b.Description ||
		a.Ref != b.Ref ||
		a.Nullable != b.Nullable {
		return false
	}
	if !equalStrings(a.Enum, b.Enum) || !equalStrings(a.Required, b.Required) {
		return false
	}
	if !DeepEqual(a.Items, b.Items) {
		return false
	}
	if len(a.Properties) != len(b.Properties) {
		return false
	}
	for name, left := range a.Properties {
		right, ok := b.Properties[name]
		if !ok || !DeepEqual(left, right) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
