package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/internal/configschema"
	"go.eggybyte.com/netgen/internal/ui"
)

// validateReport is the JSON form of a validation run.
type validateReport struct {
	Valid       bool                      `json:"valid"`
	File        string                    `json:"file"`
	Project     string                    `json:"project,omitempty"`
	Entities    int                       `json:"entities"`
	Diagnostics []configschema.Diagnostic `json:"diagnostics"`
}

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate [-f FILE | FILE]",
		Short: "Validate a descriptor file without generating",
		Long: `Validate a descriptor file.

This command checks:
- File syntax (YAML, JSON or CUE against the #Project schema)
- Identifiers, property types, project types and database providers
- Duplicate entities and properties
- Exactly one key per entity
- Foreign entity references

Example:
  netgen validate -f shop.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 1 {
				file = args[0]
			}
			if file == "" {
				return fmt.Errorf("a descriptor file is required: netgen validate -f FILE")
			}
			return runValidate(file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Descriptor file (.yaml, .yml, .json or .cue)")
	return cmd
}

func runValidate(file string) error {
	p, diags := configschema.Load(file)

	if ui.JSONOutput() {
		report := validateReport{
			Valid:       !diags.HasErrors(),
			File:        file,
			Diagnostics: diags.Items(),
		}
		if p != nil {
			report.Project = p.Name
			report.Entities = len(p.Entities)
		}
		ui.Result(report)
	} else {
		printDiagnostics(diags)
		if p != nil {
			ui.Success("%s is valid: project %s with %d entities", file, p.Name, len(p.Entities))
		}
	}
	if err := diags.Err(); err != nil {
		return reported(err)
	}
	return nil
}
