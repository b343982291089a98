package models

import "github.com/moamenhredeen/oas2graph/internal/schema"

// RawOperation is one path/method pair as read from the source document,
// before any preprocessing. Method is lowercased by the source.
type RawOperation struct {
	Path        string
	Method      string
	OperationID string
	Summary     string
	Description string
	Tags        []string
}

// Parameter describes one operation parameter.
type Parameter struct {
	Name        string         `json:"name"`
	In          string         `json:"in"` // query, path, header, cookie
	Required    bool           `json:"required"`
	Description string         `json:"description,omitempty"`
	Schema      *schema.Schema `json:"schema,omitempty"`
}

// Link describes one OpenAPI link attached to an operation's response.
type Link struct {
	Name         string `json:"name"`
	OperationID  string `json:"operationId,omitempty"`
	OperationRef string `json:"operationRef,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Operation is one preprocessed path/method pair. Operations are immutable
// after creation except for the sub-operation list, which is attached in a
// second pass once every operation has an identifier.
type Operation struct {
	OperationID       string
	Description       string
	Path              string
	Method            string          // lowercased HTTP verb
	RequestDef        *DataDefinition // nil when the operation has no request body
	RequestRequired   bool
	ResponseDef       *DataDefinition // never nil for stored operations
	Parameters        []Parameter
	Links             []Link
	SecurityProtocols []string
	SubOperationIDs   []string
}
