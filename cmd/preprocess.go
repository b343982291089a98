/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/output"
	"github.com/moamenhredeen/oas2graph/internal/parser"
	"github.com/moamenhredeen/oas2graph/internal/preprocess"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	subOperations bool
	viewerMode    bool
	strictMode    bool
	filter        string
	tags          []string
	outputFormat  string
	outputFile    string
	verbose       bool

	// Color helpers
	cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	white = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// preprocessCmd represents the preprocess command
var preprocessCmd = &cobra.Command{
	Use:   "preprocess [openapi-spec-file]",
	Short: "Build the intermediate type model from an OpenAPI spec",
	Long: `Build the normalized intermediate model from an OpenAPI specification.

Structurally identical request and response schemas are deduplicated into
shared type definitions with deterministic, collision-free names. Operations
without a usable response schema are dropped with a warning.

Examples:
  # Print a summary of the generated model
  oas2graph preprocess api-spec.json

  # Link nested GET operations and export the model as JSON
  oas2graph preprocess api-spec.json --sub-operations -o json --output-file model.json

  # Fail on unsupported security schemes
  oas2graph preprocess api-spec.json --strict`,
	Args: cobra.ExactArgs(1),
	Run:  runPreprocess,
}

func runPreprocess(cmd *cobra.Command, args []string) {
	specFile := args[0]

	// Config file values act as defaults for unset flags.
	applyConfigDefault(cmd, "sub-operations", &subOperations)
	applyConfigDefault(cmd, "viewer", &viewerMode)
	applyConfigDefault(cmd, "strict", &strictMode)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " Parsing OpenAPI spec..."
	s.Start()

	// Parse OpenAPI spec
	p, err := parser.ParseFile(specFile)
	if err != nil {
		s.Stop()
		fmt.Fprintf(os.Stderr, "Error parsing OpenAPI file: %v\n", err)
		os.Exit(1)
	}

	// Filter operations before preprocessing
	src := &filteredSource{SpecSource: p, filter: filter, tags: tags}
	if len(src.Operations()) == 0 {
		s.Stop()
		fmt.Println("No operations found matching the criteria")
		os.Exit(0)
	}

	opts := models.Options{
		AddSubOperations: subOperations,
		Viewer:           viewerMode,
		Strict:           strictMode,
	}

	s.Suffix = " Preprocessing operations..."
	model, err := preprocess.NewPreprocessor().Preprocess(src, opts)
	s.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preprocessing spec: %v\n", err)
		os.Exit(1)
	}

	if outputFormat != "" {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if err := output.ExportModel(model, format, outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting model: %v\n", err)
			os.Exit(1)
		}
		return
	}

	displayModel(model, verbose)
}

// applyConfigDefault overrides a flag variable with the viper config value
// when the flag was not set on the command line.
func applyConfigDefault(cmd *cobra.Command, key string, target *bool) {
	if !cmd.Flags().Changed(key) && viper.IsSet(key) {
		*target = viper.GetBool(key)
	}
}

// filteredSource narrows a spec source to operations matching a path or
// operation-id substring and a tag set; everything else passes through.
type filteredSource struct {
	preprocess.SpecSource
	filter string
	tags   []string
}

func (f *filteredSource) Operations() []models.RawOperation {
	var filtered []models.RawOperation

	for _, op := range f.SpecSource.Operations() {
		// Filter by path pattern or operation ID
		if f.filter != "" {
			if !strings.Contains(op.Path, f.filter) && !strings.Contains(op.OperationID, f.filter) {
				continue
			}
		}

		// Filter by tags
		if len(f.tags) > 0 {
			found := false
			for _, filterTag := range f.tags {
				for _, opTag := range op.Tags {
					if opTag == filterTag {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				continue
			}
		}

		filtered = append(filtered, op)
	}

	return filtered
}

func displayModel(model *models.PreprocessedModel, verbose bool) {
	fmt.Printf("\n%s\n", white("=== Preprocessed Model ==="))
	fmt.Printf("Operations:       %d\n", len(model.Operations))
	fmt.Printf("Type Definitions: %d\n", len(model.DataDefs))
	fmt.Printf("Security Schemes: %d\n", len(model.SecuritySchemes))
	fmt.Println()

	for _, id := range model.OperationOrder {
		op := model.Operations[id]
		fmt.Printf("%s %s %s\n", cyan(strings.ToUpper(op.Method)), op.Path, white(op.OperationID))

		if !verbose {
			continue
		}
		if op.RequestDef != nil {
			fmt.Printf("  Request:  %s (required: %v)\n", op.RequestDef.InputTypeName, op.RequestRequired)
		}
		fmt.Printf("  Response: %s\n", op.ResponseDef.ObjectTypeName)
		if len(op.Parameters) > 0 {
			names := make([]string, 0, len(op.Parameters))
			for _, param := range op.Parameters {
				names = append(names, fmt.Sprintf("%s(%s)", param.Name, param.In))
			}
			fmt.Printf("  Parameters: %s\n", strings.Join(names, ", "))
		}
		if len(op.SecurityProtocols) > 0 {
			fmt.Printf("  Security: %s\n", strings.Join(op.SecurityProtocols, ", "))
		}
		if len(op.SubOperationIDs) > 0 {
			fmt.Printf("  Sub-operations: %s\n", strings.Join(op.SubOperationIDs, ", "))
		}
	}

	if verbose && len(model.DataDefs) > 0 {
		fmt.Printf("\n%s\n", white("=== Type Definitions ==="))
		for _, def := range model.DataDefs {
			fmt.Printf("%s (input: %s, from: %s)\n", cyan(def.ObjectTypeName), def.InputTypeName, def.SourceName)
		}
	}
}

func init() {
	rootCmd.AddCommand(preprocessCmd)

	preprocessCmd.Flags().BoolVar(&subOperations, "sub-operations", false, "Link nested GET operations as sub-operations")
	preprocessCmd.Flags().BoolVar(&viewerMode, "viewer", false, "Attach security-protocol references to operations")
	preprocessCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on unsupported security schemes instead of skipping them")
	preprocessCmd.Flags().StringVar(&filter, "filter", "", "Filter endpoints by path pattern or operation ID")
	preprocessCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags (can be specified multiple times)")

	// Output flags
	preprocessCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: json, csv")
	preprocessCmd.Flags().StringVar(&outputFile, "output-file", "", "Write output to file (default: stdout)")
	preprocessCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
}
