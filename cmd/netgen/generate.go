package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/internal/configschema"
	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/examples"
	"go.eggybyte.com/netgen/internal/generators"
	"go.eggybyte.com/netgen/internal/naming"
	"go.eggybyte.com/netgen/internal/ui"
)

type generateOptions struct {
	file    string
	example string
	output  string
	seed    string
}

// generateReport is the JSON form of a generation result.
type generateReport struct {
	Success     bool     `json:"success"`
	ProjectPath string   `json:"project_path"`
	Files       []string `json:"files_created"`
	Message     string   `json:"message,omitempty"`
	Error       string   `json:"error,omitempty"`
	Stage       string   `json:"stage"`
	FailedStage string   `json:"failed_stage,omitempty"`
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Web API solution from a descriptor",
		Long: `Generate a complete Web API solution.

The project is written to <output>/<project_name>. Existing files are
overwritten. When a stage fails, the files written so far are listed.

Examples:
  netgen generate -f shop.yaml -o ./out
  netgen generate --example blog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Descriptor file (.yaml, .yml, .json or .cue)")
	cmd.Flags().StringVar(&opts.example, "example", "", "Built-in example name (see 'netgen examples')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory, overrides the descriptor's output_path")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "Derive build GUIDs from this seed for reproducible output")
	cmd.MarkFlagsMutuallyExclusive("file", "example")
	cmd.MarkFlagsOneRequired("file", "example")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	p, err := loadProject(opts)
	if err != nil {
		return err
	}
	if opts.output != "" {
		p.OutputPath = opts.output
	}

	plan := generators.Plan(p)
	step := 0
	genOpts := []generators.Option{
		generators.WithLogger(newLogger(cmd, root)),
		generators.WithStageHook(func(stage generators.Stage, files []string) {
			step++
			ui.Step(step, len(plan), "%s (%d files)", stage, len(files))
			for _, f := range files {
				ui.Debug("wrote %s", f)
			}
		}),
	}
	if opts.seed != "" {
		seed := opts.seed
		genOpts = append(genOpts, generators.WithIDSource(func() naming.IDSource {
			return naming.NewSequenceIDs(seed)
		}))
	}

	ui.Info("Generating %s", p.Name)
	res := generators.New(genOpts...).Generate(p)

	report := generateReport{
		Success:     res.Success,
		ProjectPath: res.ProjectPath,
		Files:       res.RelativeFiles(),
		Message:     res.Message,
		Error:       res.Error,
		Stage:       res.Stage.String(),
	}
	if !res.Success {
		report.FailedStage = res.FailedStage.String()
	}

	if ui.JSONOutput() {
		ui.Result(report)
	} else if res.Success {
		ui.Success("%s", res.Message)
		ui.Info("Location: %s (%d files)", res.ProjectPath, len(res.FilesCreated))
	} else {
		ui.Error("Generation failed during %s: %s", res.FailedStage, res.Error)
		if len(report.Files) > 0 {
			ui.List(fmt.Sprintf("Files written before the failure (%d):", len(report.Files)), report.Files)
		}
	}
	if !res.Success {
		return reported(res.Err)
	}
	return nil
}

// loadProject resolves the descriptor from a file or a built-in example.
func loadProject(opts *generateOptions) (*descriptor.ProjectDescriptor, error) {
	if opts.example != "" {
		return examples.Get(opts.example)
	}
	ui.Debug("Loading descriptor %s", opts.file)
	p, diags := configschema.Load(opts.file)
	printDiagnostics(diags)
	if diags.HasErrors() {
		return nil, reported(diags.Err())
	}
	return p, nil
}

// printDiagnostics shows every diagnostic at its own level.
func printDiagnostics(diags *configschema.Diagnostics) {
	for _, d := range diags.Items() {
		switch d.Severity {
		case configschema.SeverityError:
			ui.Error("%s", d)
		case configschema.SeverityWarning:
			ui.Warning("%s", d)
		default:
			ui.Info("%s", d)
		}
	}
}
