// Package preprocess transforms an OpenAPI description into the normalized
// intermediate model consumed by the type-system generation stage. It
// extracts operations, deduplicates structurally identical payload schemas
// into shared named definitions, normalizes security schemes, and derives
// sub-operation links between nested GET endpoints.
package preprocess

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/naming"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

// SpecSource is the narrow surface the preprocessing pass consumes from a
// parsed specification. internal/parser provides the libopenapi-backed
// implementation; tests substitute fakes.
type SpecSource interface {
	// Operations returns every genuine path/method operation in stable
	// document order. Methods are lowercased.
	Operations() []models.RawOperation
	// RequestSchema returns the request body schema, its naming hints, and
	// the required flag. A nil schema means the operation has no body.
	RequestSchema(path, method string) (*schema.Schema, naming.Hints, bool)
	// ResponseSchema returns the success response schema and its naming
	// hints. A nil schema causes the operation to be dropped.
	ResponseSchema(path, method string) (*schema.Schema, naming.Hints)
	// Parameters returns the operation's parameters in document order.
	Parameters(path, method string) []models.Parameter
	// Links returns the links of the operation's success response.
	Links(path, method string) []models.Link
	// SecurityRequirements returns sanitized non-OAuth2 protocol references
	// for the operation.
	SecurityRequirements(path, method string) []string
	// SecuritySchemes returns the raw scheme definitions in document order.
	SecuritySchemes() []models.SchemeEntry
}

// Preprocessor drives one preprocessing run. Runs are independent: all
// mutable state lives on the model created per run.
type Preprocessor struct {
	// Logger receives diagnostics for skipped operations and schemes.
	Logger *log.Logger
}

// NewPreprocessor creates a preprocessor logging diagnostics to stderr.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Preprocess walks every operation of the source and assembles the model.
// The pass is single-threaded and synchronous; the only failures are a
// missing name hint and, in strict mode, an unsupported security scheme.
func (p *Preprocessor) Preprocess(src SpecSource, opts models.Options) (*models.PreprocessedModel, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	model := models.NewModel(opts)

	for _, raw := range src.Operations() {
		description := raw.Description
		if description == "" {
			description = raw.Summary
		}

		id := raw.OperationID
		if id == "" {
			id = naming.Beautify(raw.Method + ":" + raw.Path)
		}

		reqSchema, reqHints, required := src.RequestSchema(raw.Path, raw.Method)
		requestDef, err := p.resolveDataDef(model, reqSchema, reqHints)
		if err != nil {
			return nil, err
		}

		resSchema, resHints := src.ResponseSchema(raw.Path, raw.Method)
		if resSchema == nil {
			logger.Printf("skipping %s %s: no response schema", strings.ToUpper(raw.Method), raw.Path)
			continue
		}
		responseDef, err := p.resolveDataDef(model, resSchema, resHints)
		if err != nil {
			return nil, err
		}

		var protocols []string
		if opts.Viewer {
			protocols = src.SecurityRequirements(raw.Path, raw.Method)
		}

		op := &models.Operation{
			OperationID:       id,
			Description:       description,
			Path:              raw.Path,
			Method:            raw.Method,
			RequestDef:        requestDef,
			RequestRequired:   required,
			ResponseDef:       responseDef,
			Parameters:        src.Parameters(raw.Path, raw.Method),
			Links:             src.Links(raw.Path, raw.Method),
			SecurityProtocols: protocols,
		}

		model.Operations[id] = op
		model.OperationOrder = append(model.OperationOrder, id)
	}

	// Sub-operations need every identifier finalized, so they are linked in
	// a second pass over the finished operation set.
	if opts.AddSubOperations {
		for _, id := range model.OperationOrder {
			op := model.Operations[id]
			op.SubOperationIDs = linkSubOperations(op, model)
		}
	}

	schemes, order, err := normalizeSecuritySchemes(src.SecuritySchemes(), opts, logger)
	if err != nil {
		return nil, err
	}
	model.SecuritySchemes = schemes
	model.SecuritySchemeOrder = order

	return model, nil
}
