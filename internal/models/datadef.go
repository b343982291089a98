package models

import "github.com/moamenhredeen/oas2graph/internal/schema"

// DataDefinition wraps one payload schema together with its generated type
// names. All operations whose payload schemas are structurally identical
// share a single DataDefinition instance. Definitions accumulate in the
// model's append-only master list and are never mutated after creation.
type DataDefinition struct {
	// Schema is the deduplicated payload shape; fixed at creation.
	Schema *schema.Schema
	// ObjectTypeName is the generated output-type name, unique per run.
	ObjectTypeName string
	// InputTypeName is ObjectTypeName suffixed with "Input".
	InputTypeName string
	// SourceName is the raw naming hint the type name was derived from.
	SourceName string
}
