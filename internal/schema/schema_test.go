package schema

import "testing"

func stringSchema() *Schema {
	return &Schema{Kind: KindScalar, Type: "string"}
}

func TestDeepEqualNil(t *testing.T) {
	if !DeepEqual(nil, nil) {
		t.Error("nil schemas should be equal")
	}
	if DeepEqual(stringSchema(), nil) {
		t.Error("schema should not equal nil")
	}
	if DeepEqual(nil, stringSchema()) {
		t.Error("nil should not equal schema")
	}
}

func TestDeepEqualScalars(t *testing.T) {
	if !DeepEqual(stringSchema(), stringSchema()) {
		t.Error("identical scalars should be equal")
	}
	if DeepEqual(stringSchema(), &Schema{Kind: KindScalar, Type: "integer"}) {
		t.Error("different scalar types should not be equal")
	}
	if DeepEqual(stringSchema(), &Schema{Kind: KindScalar, Type: "string", Format: "date-time"}) {
		t.Error("different formats should not be equal")
	}
}

func TestDeepEqualObjectKeyOrderInsensitive(t *testing.T) {
	a := &Schema{
		Kind: KindObject,
		Properties: map[string]*Schema{
			"id":   {Kind: KindScalar, Type: "string"},
			"name": {Kind: KindScalar, Type: "string"},
		},
	}
	b := &Schema{
		Kind: KindObject,
		Properties: map[string]*Schema{
			"name": {Kind: KindScalar, Type: "string"},
			"id":   {Kind: KindScalar, Type: "string"},
		},
	}

	if !DeepEqual(a, b) {
		t.Error("objects with same properties should be equal regardless of key order")
	}
}

func TestDeepEqualObjectPropertyMismatch(t *testing.T) {
	a := &Schema{
		Kind:       KindObject,
		Properties: map[string]*Schema{"id": {Kind: KindScalar, Type: "string"}},
	}
	b := &Schema{
		Kind:       KindObject,
		Properties: map[string]*Schema{"id": {Kind: KindScalar, Type: "integer"}},
	}
	c := &Schema{
		Kind: KindObject,
		Properties: map[string]*Schema{
			"id":    {Kind: KindScalar, Type: "string"},
			"extra": {Kind: KindScalar, Type: "string"},
		},
	}

	if DeepEqual(a, b) {
		t.Error("objects with different property types should not be equal")
	}
	if DeepEqual(a, c) {
		t.Error("objects with different property sets should not be equal")
	}
}

func TestDeepEqualArrayOrderSensitive(t *testing.T) {
	a := &Schema{Kind: KindScalar, Type: "string", Enum: []string{"a", "b"}}
	b := &Schema{Kind: KindScalar, Type: "string", Enum: []string{"b", "a"}}

	if DeepEqual(a, b) {
		t.Error("enum order should be significant")
	}

	c := &Schema{
		Kind: KindObject,
		Properties: map[string]*Schema{
			"id":   {Kind: KindScalar, Type: "string"},
			"name": {Kind: KindScalar, Type: "string"},
		},
		Required: []string{"id", "name"},
	}
	d := &Schema{
		Kind: KindObject,
		Properties: map[string]*Schema{
			"id":   {Kind: KindScalar, Type: "string"},
			"name": {Kind: KindScalar, Type: "string"},
		},
		Required: []string{"name", "id"},
	}

	if DeepEqual(c, d) {
		t.Error("required order should be significant")
	}
}

func TestDeepEqualNested(t *testing.T) {
	build := func() *Schema {
		return &Schema{
			Kind: KindObject,
			Properties: map[string]*Schema{
				"items": {
					Kind: KindArray,
					Items: &Schema{
						Kind: KindObject,
						Properties: map[string]*Schema{
							"id": {Kind: KindScalar, Type: "string"},
						},
						Required: []string{"id"},
					},
				},
			},
		}
	}

	if !DeepEqual(build(), build()) {
		t.Error("structurally identical nested schemas should be equal")
	}

	changed := build()
	changed.Properties["items"].Items.Properties["id"].Type = "integer"
	if DeepEqual(build(), changed) {
		t.Error("deeply nested difference should be detected")
	}
}

func TestDeepEqualTitleSignificant(t *testing.T) {
	a := &Schema{Kind: KindScalar, Type: "string", Title: "Name"}
	b := &Schema{Kind: KindScalar, Type: "string", Title: "Other"}

	if DeepEqual(a, b) {
		t.Error("differing titles should not compare equal")
	}
}

func TestDeepEqualRef(t *testing.T) {
	a := &Schema{Kind: KindRef, Ref: "#/components/schemas/Pet"}
	b := &Schema{Kind: KindRef, Ref: "#/components/schemas/Pet"}
	c := &Schema{Kind: KindRef, Ref: "#/components/schemas/Order"}

	if !DeepEqual(a, b) {
		t.Error("same refs should be equal")
	}
	if DeepEqual(a, c) {
		t.Error("different refs should not be equal")
	}
}
