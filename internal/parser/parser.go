package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/naming"
	"github.com/moamenhredeen/oas2graph/internal/schema"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
)

// methodOrder fixes the per-path visit order so preprocessing is
// deterministic: first-come schemas win deduplication and naming.
var methodOrder = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Parser exposes an OpenAPI document through the narrow surface the
// preprocessing pass consumes.
type Parser struct {
	document libopenapi.Document
	model    *v3.Document
}

// ParseFile parses an OpenAPI specification file and returns a Parser instance
func ParseFile(filePath string) (*Parser, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}

	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	model, errs := document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	return &Parser{document: document, model: &model.Model}, nil
}

// Operations returns every genuine path/method operation in document order:
// paths as they appear in the source, methods in a fixed verb order.
func (p *Parser) Operations() []models.RawOperation {
	var operations []models.RawOperation

	paths := p.model.Paths
	if paths == nil || paths.PathItems == nil {
		return operations
	}

	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		pathItem := pair.Value()
		if pathItem == nil {
			continue
		}

		for _, method := range methodOrder {
			op := operationForMethod(pathItem, method)
			if op == nil {
				continue
			}

			tags := []string{}
			if op.Tags != nil {
				tags = append(tags, op.Tags...)
			}

			operations = append(operations, models.RawOperation{
				Path:        path,
				Method:      method,
				OperationID: op.OperationId,
				Summary:     op.Summary,
				Description: op.Description,
				Tags:        tags,
			})
		}
	}

	return operations
}

// RequestSchema returns the request body's JSON schema, its naming hints,
// and whether the body is required. A nil schema means no usable body.
func (p *Parser) RequestSchema(path, method string) (*schema.Schema, naming.Hints, bool) {
	op := p.findOperation(path, method)
	if op == nil || op.RequestBody == nil {
		return nil, naming.Hints{}, false
	}

	media := jsonMediaType(op.RequestBody.Content)
	if media == nil || media.Schema == nil {
		return nil, naming.Hints{}, false
	}

	required := op.RequestBody.Required != nil && *op.RequestBody.Required
	converted := convertSchemaProxy(media.Schema, map[*base.Schema]bool{})
	return converted, schemaHints(media.Schema, converted, path), required
}

// ResponseSchema returns the schema of the operation's success response: the
// first 2xx status code in document order carrying a JSON media type. A nil
// schema means the operation has no usable response and will be dropped.
func (p *Parser) ResponseSchema(path, method string) (*schema.Schema, naming.Hints) {
	op := p.findOperation(path, method)
	response := successResponse(op)
	if response == nil {
		return nil, naming.Hints{}
	}

	media := jsonMediaType(response.Content)
	if media == nil || media.Schema == nil {
		return nil, naming.Hints{}
	}

	converted := convertSchemaProxy(media.Schema, map[*base.Schema]bool{})
	return converted, schemaHints(media.Schema, converted, path)
}

// Parameters returns the operation's parameters: path-item-level shared
// parameters first, then operation-level ones, in document order.
func (p *Parser) Parameters(path, method string) []models.Parameter {
	var result []models.Parameter

	paths := p.model.Paths
	if paths == nil || paths.PathItems == nil {
		return result
	}

	var raw []*v3.Parameter
	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == path {
			if item := pair.Value(); item != nil {
				raw = append(raw, item.Parameters...)
			}
			break
		}
	}
	if op := p.findOperation(path, method); op != nil {
		raw = append(raw, op.Parameters...)
	}

	for _, param := range raw {
		if param == nil {
			continue
		}
		converted := models.Parameter{
			Name:        param.Name,
			In:          param.In,
			Required:    param.Required != nil && *param.Required,
			Description: param.Description,
		}
		if param.Schema != nil {
			converted.Schema = convertSchemaProxy(param.Schema, map[*base.Schema]bool{})
		}
		result = append(result, converted)
	}

	return result
}

// Links returns the links attached to the operation's success response.
func (p *Parser) Links(path, method string) []models.Link {
	response := successResponse(p.findOperation(path, method))
	if response == nil || response.Links == nil {
		return nil
	}

	var links []models.Link
	for pair := response.Links.First(); pair != nil; pair = pair.Next() {
		link := pair.Value()
		if link == nil {
			continue
		}
		links = append(links, models.Link{
			Name:         pair.Key(),
			OperationID:  link.OperationId,
			OperationRef: link.OperationRef,
			Description:  link.Description,
		})
	}
	return links
}

// SecurityRequirements returns sanitized scheme references for the
// operation, falling back to document-level security. OAuth2-typed schemes
// are filtered out so the references line up with the normalized map.
func (p *Parser) SecurityRequirements(path, method string) []string {
	op := p.findOperation(path, method)
	if op == nil {
		return nil
	}

	requirements := op.Security
	if requirements == nil {
		requirements = p.model.Security
	}

	var refs []string
	seen := map[string]bool{}
	for _, requirement := range requirements {
		if requirement == nil || requirement.Requirements == nil {
			continue
		}
		for pair := requirement.Requirements.First(); pair != nil; pair = pair.Next() {
			key := pair.Key()
			def := p.schemeDef(key)
			if def == nil || def.Type == "oauth2" {
				continue
			}
			sanitized := naming.Beautify(key)
			if !seen[sanitized] {
				seen[sanitized] = true
				refs = append(refs, sanitized)
			}
		}
	}
	return refs
}

// SecuritySchemes returns the component security scheme definitions in
// document order.
func (p *Parser) SecuritySchemes() []models.SchemeEntry {
	if p.model.Components == nil || p.model.Components.SecuritySchemes == nil {
		return nil
	}

	var entries []models.SchemeEntry
	for pair := p.model.Components.SecuritySchemes.First(); pair != nil; pair = pair.Next() {
		scheme := pair.Value()
		if scheme == nil {
			continue
		}
		entries = append(entries, models.SchemeEntry{
			Key: pair.Key(),
			Def: &models.SecuritySchemeDef{
				Type:        scheme.Type,
				Scheme:      scheme.Scheme,
				Name:        scheme.Name,
				In:          scheme.In,
				Description: scheme.Description,
			},
		})
	}
	return entries
}

func (p *Parser) findOperation(path, method string) *v3.Operation {
	paths := p.model.Paths
	if paths == nil || paths.PathItems == nil {
		return nil
	}

	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == path {
			return operationForMethod(pair.Value(), method)
		}
	}
	return nil
}

func (p *Parser) schemeDef(key string) *v3.SecurityScheme {
	if p.model.Components == nil || p.model.Components.SecuritySchemes == nil {
		return nil
	}
	for pair := p.model.Components.SecuritySchemes.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == key {
			return pair.Value()
		}
	}
	return nil
}

func operationForMethod(item *v3.PathItem, method string) *v3.Operation {
	if item == nil {
		return nil
	}
	switch method {
	case "get":
		return item.Get
	case "put":
		return item.Put
	case "post":
		return item.Post
	case "delete":
		return item.Delete
	case "options":
		return item.Options
	case "head":
		return item.Head
	case "patch":
		return item.Patch
	case "trace":
		return item.Trace
	default:
		return nil
	}
}

// successResponse picks the first 2xx response in document order.
func successResponse(op *v3.Operation) *v3.Response {
	if op == nil || op.Responses == nil || op.Responses.Codes == nil {
		return nil
	}
	for pair := op.Responses.Codes.First(); pair != nil; pair = pair.Next() {
		code, err := strconv.Atoi(pair.Key())
		if err != nil {
			continue
		}
		if code >= 200 && code < 300 {
			return pair.Value()
		}
	}
	return nil
}

// jsonMediaType prefers application/json, else the first media type whose
// name mentions json.
func jsonMediaType(content *orderedmap.Map[string, *v3.MediaType]) *v3.MediaType {
	if content == nil {
		return nil
	}
	for pair := content.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == "application/json" {
			return pair.Value()
		}
	}
	for pair := content.First(); pair != nil; pair = pair.Next() {
		if strings.Contains(pair.Key(), "json") {
			return pair.Value()
		}
	}
	return nil
}

// schemaHints derives the naming hints for a payload schema: the last
// segment of its $ref, its title, and the endpoint path.
func schemaHints(proxy *base.SchemaProxy, converted *schema.Schema, path string) naming.Hints {
	hints := naming.Hints{FromPath: path}
	if proxy.IsReference() {
		hints.FromRef = refName(proxy.GetReference())
	}
	if converted != nil {
		hints.FromSchema = converted.Title
	}
	return hints
}

func refName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// convertSchemaProxy translates a libopenapi schema into the internal tree.
// Already-visited schemas become ref nodes to cut cycles.
func convertSchemaProxy(proxy *base.SchemaProxy, seen map[*base.Schema]bool) *schema.Schema {
	if proxy == nil {
		return nil
	}
	s := proxy.Schema()
	if s == nil {
		if proxy.IsReference() {
			return &schema.Schema{Kind: schema.KindRef, Ref: proxy.GetReference()}
		}
		return nil
	}
	if seen[s] {
		return &schema.Schema{Kind: schema.KindRef, Ref: proxy.GetReference()}
	}
	seen[s] = true
	defer delete(seen, s)

	out := &schema.Schema{
		Title:       s.Title,
		Description: s.Description,
		Format:      s.Format,
	}
	if s.Nullable != nil {
		out.Nullable = *s.Nullable
	}

	schemaType := ""
	if len(s.Type) > 0 {
		schemaType = s.Type[0]
	}
	if schemaType == "" {
		// Untyped schemas: infer the shape from what is present.
		if s.Properties != nil && s.Properties.Len() > 0 {
			schemaType = "object"
		} else if s.Items != nil {
			schemaType = "array"
		}
	}

	switch schemaType {
	case "object":
		out.Kind = schema.KindObject
		if s.Properties != nil && s.Properties.Len() > 0 {
			out.Properties = make(map[string]*schema.Schema, s.Properties.Len())
			for pair := s.Properties.First(); pair != nil; pair = pair.Next() {
				out.Properties[pair.Key()] = convertSchemaProxy(pair.Value(), seen)
			}
		}
		out.Required = append([]string(nil), s.Required...)
	case "array":
		out.Kind = schema.KindArray
		if s.Items != nil && s.Items.IsA() {
			out.Items = convertSchemaProxy(s.Items.A, seen)
		}
	default:
		out.Kind = schema.KindScalar
		out.Type = schemaType
		for _, node := range s.Enum {
			if node != nil {
				out.Enum = append(out.Enum, node.Value)
			}
		}
	}

	return out
}
