package preprocess

import (
	"errors"
	"testing"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/naming"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

func TestFindEqualIndex(t *testing.T) {
	defs := []*models.DataDefinition{
		{Schema: &schema.Schema{Kind: schema.KindScalar, Type: "string"}},
		{Schema: widgetSchema()},
	}

	if idx := findEqualIndex(widgetSchema(), defs); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	if idx := findEqualIndex(&schema.Schema{Kind: schema.KindScalar, Type: "integer"}, defs); idx != -1 {
		t.Errorf("expected -1 for unknown schema, got %d", idx)
	}
	// First match wins when several entries are equal.
	dup := append(defs, &models.DataDefinition{Schema: widgetSchema()})
	if idx := findEqualIndex(widgetSchema(), dup); idx != 1 {
		t.Errorf("expected first matching index 1, got %d", idx)
	}
}

func TestResolveDataDefNilSchema(t *testing.T) {
	model := models.NewModel(models.Options{})
	def, err := quietPreprocessor().resolveDataDef(model, nil, naming.Hints{FromRef: "Pet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def != nil {
		t.Error("nil schema must yield nil definition")
	}
	if len(model.DataDefs) != 0 {
		t.Error("nil schema must not append to the master list")
	}
}

func TestResolveDataDefReusesExisting(t *testing.T) {
	model := models.NewModel(models.Options{})
	p := quietPreprocessor()

	first, err := p.resolveDataDef(model, widgetSchema(), naming.Hints{FromRef: "Widget"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.resolveDataDef(model, widgetSchema(), naming.Hints{FromRef: "Other"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected reference-equal definitions for equal schemas")
	}
	if len(model.DataDefs) != 1 {
		t.Errorf("master list should grow by exactly 1, got %d entries", len(model.DataDefs))
	}
	if model.Names.Has("Other") {
		t.Error("reuse must not mutate the name registry")
	}
}

func TestResolveDataDefMissingHints(t *testing.T) {
	model := models.NewModel(models.Options{})
	_, err := quietPreprocessor().resolveDataDef(model, widgetSchema(), naming.Hints{})
	if !errors.Is(err, ErrMissingNameHint) {
		t.Fatalf("expected ErrMissingNameHint, got %v", err)
	}
}

func TestResolveTypeNamePriority(t *testing.T) {
	reg := naming.NewRegistry()

	name, raw, err := resolveTypeName(naming.Hints{FromRef: "Pet", FromSchema: "A pet", FromPath: "/pets"}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Pet" || raw != "Pet" {
		t.Errorf("expected ref hint to win, got %q from %q", name, raw)
	}

	// Ref collides now; the schema title is next in line.
	name, raw, err = resolveTypeName(naming.Hints{FromRef: "Pet", FromSchema: "A pet", FromPath: "/pets"}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "A_pet" || raw != "A pet" {
		t.Errorf("expected schema hint to win, got %q from %q", name, raw)
	}
}

func TestResolveTypeNameProbesSequentially(t *testing.T) {
	reg := naming.NewRegistry()
	hints := naming.Hints{FromRef: "Pet"}

	want := []string{"Pet", "Pet2", "Pet3", "Pet4"}
	for i, expected := range want {
		name, _, err := resolveTypeName(hints, reg)
		if err != nil {
			t.Fatalf("resolution %d failed: %v", i, err)
		}
		if name != expected {
			t.Fatalf("resolution %d: expected %q, got %q", i, expected, name)
		}
	}

	if original, ok := reg.Source("Pet3"); !ok || original != "Pet" {
		t.Errorf("probed name should map back to the raw hint, got %q (found=%v)", original, ok)
	}
}

func TestResolveTypeNameNoHints(t *testing.T) {
	_, _, err := resolveTypeName(naming.Hints{}, naming.NewRegistry())
	if !errors.Is(err, ErrMissingNameHint) {
		t.Fatalf("expected ErrMissingNameHint, got %v", err)
	}
}
