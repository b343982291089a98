package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

// Format represents the output format type
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// modelView is the serializable shape of a PreprocessedModel, with
// operations and security schemes flattened into their document order.
type modelView struct {
	Operations      []operationView      `json:"operations"`
	DataDefinitions []dataDefinitionView `json:"dataDefinitions"`
	SecuritySchemes []securitySchemeView `json:"securitySchemes"`
	Options         models.Options       `json:"options"`
}

type operationView struct {
	OperationID       string             `json:"operationId"`
	Method            string             `json:"method"`
	Path              string             `json:"path"`
	Description       string             `json:"description,omitempty"`
	RequestType       string             `json:"requestType,omitempty"`
	RequestRequired   bool               `json:"requestRequired,omitempty"`
	ResponseType      string             `json:"responseType"`
	Parameters        []models.Parameter `json:"parameters,omitempty"`
	Links             []models.Link      `json:"links,omitempty"`
	SecurityProtocols []string           `json:"securityProtocols,omitempty"`
	SubOperations     []string           `json:"subOperations,omitempty"`
}

type dataDefinitionView struct {
	ObjectTypeName string         `json:"objectTypeName"`
	InputTypeName  string         `json:"inputTypeName"`
	SourceName     string         `json:"sourceName"`
	Schema         *schema.Schema `json:"schema"`
}

type securitySchemeView struct {
	Key        string            `json:"key"`
	RawName    string            `json:"rawName"`
	Type       string            `json:"type"`
	Parameters map[string]string `json:"parameters"`
	Schema     *schema.Schema    `json:"schema"`
}

// ExportModel exports a preprocessed model to the specified format
func ExportModel(model *models.PreprocessedModel, format Format, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	switch format {
	case FormatJSON:
		return exportModelJSON(w, model)
	case FormatCSV:
		return exportModelCSV(w, model)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}

func buildView(model *models.PreprocessedModel) modelView {
	view := modelView{Options: model.Options}

	for _, id := range model.OperationOrder {
		op := model.Operations[id]
		ov := operationView{
			OperationID:       op.OperationID,
			Method:            op.Method,
			Path:              op.Path,
			Description:       op.Description,
			RequestRequired:   op.RequestRequired,
			ResponseType:      op.ResponseDef.ObjectTypeName,
			Parameters:        op.Parameters,
			Links:             op.Links,
			SecurityProtocols: op.SecurityProtocols,
			SubOperations:     op.SubOperationIDs,
		}
		if op.RequestDef != nil {
			ov.RequestType = op.RequestDef.InputTypeName
		}
		view.Operations = append(view.Operations, ov)
	}

	for _, def := range model.DataDefs {
		view.DataDefinitions = append(view.DataDefinitions, dataDefinitionView{
			ObjectTypeName: def.ObjectTypeName,
			InputTypeName:  def.InputTypeName,
			SourceName:     def.SourceName,
			Schema:         def.Schema,
		})
	}

	for _, key := range model.SecuritySchemeOrder {
		s := model.SecuritySchemes[key]
		view.SecuritySchemes = append(view.SecuritySchemes, securitySchemeView{
			Key:        key,
			RawName:    s.RawName,
			Type:       s.Def.Type,
			Parameters: s.Parameters,
			Schema:     s.Schema,
		})
	}

	return view
}

// exportModelJSON exports the model as JSON
func exportModelJSON(w io.Writer, model *models.PreprocessedModel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildView(model))
}

// exportModelCSV exports the model's operations as CSV
func exportModelCSV(w io.Writer, model *models.PreprocessedModel) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{
		"operation_id", "method", "path", "request_type", "request_required",
		"response_type", "security_protocols", "sub_operations",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	// Write rows
	for _, id := range model.OperationOrder {
		op := model.Operations[id]
		requestType := ""
		if op.RequestDef != nil {
			requestType = op.RequestDef.InputTypeName
		}
		row := []string{
			op.OperationID,
			op.Method,
			op.Path,
			requestType,
			strconv.FormatBool(op.RequestRequired),
			op.ResponseDef.ObjectTypeName,
			strings.Join(op.SecurityProtocols, ";"),
			strings.Join(op.SubOperationIDs, ";"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// ParseFormat parses a string into a Format, returning error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be 'json' or 'csv'", s)
	}
}
