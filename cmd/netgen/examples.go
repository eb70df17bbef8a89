package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/internal/configschema"
	"go.eggybyte.com/netgen/internal/examples"
	"go.eggybyte.com/netgen/internal/ui"
)

type exampleEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Project     string `json:"project"`
	Entities    int    `json:"entities"`
}

func newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List built-in example projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []exampleEntry
			var lines []string
			for _, preset := range examples.List() {
				p := preset.Descriptor()
				entries = append(entries, exampleEntry{
					Name:        preset.Name,
					Description: preset.Description,
					Project:     p.Name,
					Entities:    len(p.Entities),
				})
				lines = append(lines, fmt.Sprintf("%-11s %s (%s, %d entities)", preset.Name, preset.Description, p.Name, len(p.Entities)))
			}
			if ui.JSONOutput() {
				ui.Result(entries)
				return nil
			}
			ui.List("Available examples:", lines)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "Print an example as a descriptor file",
		Long: `Print an example as a YAML descriptor file, ready to edit and pass to
"netgen generate -f".

Example:
  netgen examples show blog > blog.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := examples.Get(args[0])
			if err != nil {
				return err
			}
			if ui.JSONOutput() {
				ui.Result(configschema.FromDescriptor(p))
				return nil
			}
			data, err := configschema.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to render example: %w", err)
			}
			ui.Raw(string(data))
			return nil
		},
	})
	return cmd
}
