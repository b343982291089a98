package preprocess

import (
	"fmt"
	"strconv"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/naming"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

// findEqualIndex scans the master definition list in insertion order and
// returns the index of the first entry whose schema is structurally equal
// to the candidate, or -1 when none matches. Linear scan is fine here:
// deduplication runs once at preprocessing time, not per request.
func findEqualIndex(candidate *schema.Schema, defs []*models.DataDefinition) int {
	for i, def := range defs {
		if schema.DeepEqual(candidate, def.Schema) {
			return i
		}
	}
	return -1
}

// resolveDataDef returns the DataDefinition for a payload schema, reusing an
// existing definition when a structurally equal one exists and creating a
// new named one otherwise. A nil schema yields a nil definition (operations
// without a request body). Exactly one master-list append and one registry
// update happen per genuinely new schema.
func (p *Preprocessor) resolveDataDef(model *models.PreprocessedModel, s *schema.Schema, hints naming.Hints) (*models.DataDefinition, error) {
	if s == nil {
		return nil, nil
	}

	if idx := findEqualIndex(s, model.DataDefs); idx >= 0 {
		return model.DataDefs[idx], nil
	}

	name, raw, err := resolveTypeName(hints, model.Names)
	if err != nil {
		return nil, err
	}

	def := &models.DataDefinition{
		Schema:         s,
		ObjectTypeName: name,
		InputTypeName:  name + "Input",
		SourceName:     raw,
	}
	model.DataDefs = append(model.DataDefs, def)
	return def, nil
}

// resolveTypeName picks a unique sanitized type name from the hints. The
// first hint (ref, then schema title, then path) whose sanitized form is
// unused wins outright. When every candidate collides, the first available
// hint becomes the base and integers are probed sequentially from 2 until
// base+N is free. The winner is recorded in the registry along with the raw
// string it came from.
func resolveTypeName(hints naming.Hints, reg *naming.Registry) (string, string, error) {
	for _, raw := range hints.InOrder() {
		if raw == "" {
			continue
		}
		candidate := naming.Beautify(raw)
		if candidate == "" {
			continue
		}
		if !reg.Has(candidate) {
			reg.Put(candidate, raw)
			return candidate, raw, nil
		}
	}

	// All candidates collided; fall back to the first available hint as a
	// base and suffix the smallest free integer >= 2.
	for _, raw := range hints.InOrder() {
		if raw == "" {
			continue
		}
		base := naming.Beautify(raw)
		if base == "" {
			continue
		}
		for i := 2; ; i++ {
			candidate := base + strconv.Itoa(i)
			if !reg.Has(candidate) {
				reg.Put(candidate, raw)
				return candidate, raw, nil
			}
		}
	}

	return "", "", fmt.Errorf("%w: need a ref, schema title, or path", ErrMissingNameHint)
}
