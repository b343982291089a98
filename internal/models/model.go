package models

import "github.com/moamenhredeen/oas2graph/internal/naming"

// Options is the configuration surface interpreted by the preprocessing
// pass. It is echoed unchanged on the resulting model.
type Options struct {
	// AddSubOperations enables the second pass that links nested GET
	// operations to their parents.
	AddSubOperations bool
	// Viewer enables per-operation security-protocol extraction.
	Viewer bool
	// Strict turns unsupported security schemes into fatal errors instead
	// of logged skips.
	Strict bool
}

// PreprocessedModel is the aggregate result of one preprocessing run. It is
// built once, returned to the caller, and never mutated afterward. All
// run-scoped state (the name registry, the master definition list) lives
// here; nothing is shared across runs.
type PreprocessedModel struct {
	// Operations holds every retained operation, keyed by identifier.
	Operations map[string]*Operation
	// OperationOrder lists identifiers in insertion order. Deduplication
	// and naming are first-come-wins, so iteration order matters.
	OperationOrder []string
	// DataDefs is the append-only master list of deduplicated definitions.
	DataDefs []*DataDefinition
	// Names tracks assigned type names and their raw origins.
	Names *naming.Registry
	// SecuritySchemes holds normalized non-OAuth2 schemes, keyed by
	// sanitized protocol name; SecuritySchemeOrder preserves source order.
	SecuritySchemes     map[string]*SecurityScheme
	SecuritySchemeOrder []string
	// Options echoes the configuration this model was built with.
	Options Options
}

// NewModel creates an empty model for one preprocessing run.
func NewModel(opts Options) *PreprocessedModel {
	return &PreprocessedModel{
		Operations:      make(map[string]*Operation),
		Names:           naming.NewRegistry(),
		SecuritySchemes: make(map[string]*SecurityScheme),
		Options:         opts,
	}
}
