package preprocess

import (
	"log"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/naming"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

// schemeKind classifies a raw security scheme definition.
type schemeKind int

const (
	kindAPIKey schemeKind = iota
	kindBasic
	kindOAuth2
	kindUnsupported
)

func classifyScheme(def *models.SecuritySchemeDef) schemeKind {
	switch def.Type {
	case "oauth2":
		return kindOAuth2
	case "apiKey":
		return kindAPIKey
	case "http":
		if def.Scheme == "basic" {
			return kindBasic
		}
		return kindUnsupported
	default:
		return kindUnsupported
	}
}

// normalizeSecuritySchemes converts the raw scheme definitions into the
// normalized map keyed by sanitized protocol name. OAuth2 schemes are
// always excluded; they are handled by a separate mechanism. Unsupported
// schemes fail the run in strict mode and are logged and skipped otherwise.
func normalizeSecuritySchemes(entries []models.SchemeEntry, opts models.Options, logger *log.Logger) (map[string]*models.SecurityScheme, []string, error) {
	schemes := make(map[string]*models.SecurityScheme)
	var order []string

	for _, entry := range entries {
		if entry.Def == nil {
			continue
		}

		var params map[string]string
		var credSchema *schema.Schema

		switch classifyScheme(entry.Def) {
		case kindOAuth2:
			continue
		case kindAPIKey:
			params = map[string]string{
				"apiKey": naming.Beautify(entry.Key + "_apiKey"),
			}
			credSchema = credentialSchema("apiKey")
		case kindBasic:
			params = map[string]string{
				"username": naming.Beautify(entry.Key + "_username"),
				"password": naming.Beautify(entry.Key + "_password"),
			}
			credSchema = credentialSchema("username", "password")
		case kindUnsupported:
			if opts.Strict {
				return nil, nil, &UnsupportedSchemeError{
					Key:    entry.Key,
					Type:   entry.Def.Type,
					Scheme: entry.Def.Scheme,
				}
			}
			logger.Printf("skipping unsupported security scheme %q (type %q)", entry.Key, entry.Def.Type)
			continue
		}

		key := naming.Beautify(entry.Key)
		schemes[key] = &models.SecurityScheme{
			RawName:    entry.Key,
			Def:        entry.Def,
			Parameters: params,
			Schema:     credSchema,
		}
		order = append(order, key)
	}

	return schemes, order, nil
}

// credentialSchema synthesizes the object schema describing a credential
// payload with the given string slots.
func credentialSchema(slots ...string) *schema.Schema {
	props := make(map[string]*schema.Schema, len(slots))
	for _, slot := range slots {
		props[slot] = &schema.Schema{Kind: schema.KindScalar, Type: "string"}
	}
	return &schema.Schema{Kind: schema.KindObject, Properties: props}
}
