package models

import "github.com/moamenhredeen/oas2graph/internal/schema"

// SecuritySchemeDef is the raw security scheme definition as read from the
// source document's components.
type SecuritySchemeDef struct {
	Type        string // apiKey, http, oauth2, openIdConnect, ...
	Scheme      string // http sub-scheme: basic, bearer, digest, ...
	Name        string // apiKey parameter name
	In          string // apiKey location
	Description string
}

// SchemeEntry pairs a raw security scheme definition with its original key,
// preserving the document order of the components map.
type SchemeEntry struct {
	Key string
	Def *SecuritySchemeDef
}

// SecurityScheme is one normalized, non-OAuth2 security scheme. Parameters
// maps logical credential slots (apiKey, username, password) to sanitized
// parameter names; Schema describes the credential object shape.
type SecurityScheme struct {
	RawName    string
	Def        *SecuritySchemeDef
	Parameters map[string]string
	Schema     *schema.Schema
}
