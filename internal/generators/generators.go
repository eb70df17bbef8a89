// Package generators drives a generation run from descriptor to files on disk.
//
// Overview:
//   - Responsibility: Run the stage machine, write artifacts, collect the file manifest
//   - Key Types: Generator, Result, Stage
//   - Concurrency Model: Synchronous; a Generator keeps no state between calls
//   - Error Semantics: Failures never escape as errors or panics, they end the run in StageFailed
//   - Performance Notes: One template execution and one write per artifact
//
// The run creates the whole directory skeleton, then writes stages in a fixed
// order: manifests, models, data layer, services, controllers, tests and
// auxiliary files. A failing stage stops the run; files already written stay
// on disk and are reported.
//
// Usage:
//
//	gen := generators.New(generators.WithLogger(logger))
//	res := gen.Generate(project)
package generators

import (
	"fmt"
	"path/filepath"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/log"
	"go.eggybyte.com/netgen/internal/naming"
	"go.eggybyte.com/netgen/internal/projectfs"
	"go.eggybyte.com/netgen/internal/render"
)

// StageHook observes completed stages. files lists what the stage wrote,
// relative to the project root.
type StageHook func(stage Stage, files []string)

// Generator runs generation for one descriptor per call.
type Generator struct {
	logger log.Logger
	ids    func() naming.IDSource
	hook   StageHook
	year   int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger receiving stage transitions and writes.
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithIDSource sets the factory for build identifier sources. It is called
// once per run so that each run draws a fresh sequence.
func WithIDSource(f func() naming.IDSource) Option {
	return func(g *Generator) { g.ids = f }
}

// WithStageHook registers an observer for completed stages.
func WithStageHook(h StageHook) Option {
	return func(g *Generator) { g.hook = h }
}

// WithYear pins the copyright year of assembly metadata.
func WithYear(year int) Option {
	return func(g *Generator) { g.year = year }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger: log.Nop(),
		ids:    func() naming.IDSource { return naming.RandomIDs{} },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the project described by p below p.OutputPath/p.Name.
//
// Parameters:
//   - p: Project descriptor; OutputPath defaults to the working directory
//
// Returns:
//   - *Result: Never nil; Success is false when any stage failed
//
// Concurrency:
//   - Runs to completion on the calling goroutine, no cancellation
func (g *Generator) Generate(p *descriptor.ProjectDescriptor) (res *Result) {
	res = &Result{Stage: StageIdle}
	running := StageIdle
	logger := g.logger
	var r *run

	defer func() {
		if rec := recover(); rec != nil {
			if r != nil && r.pending != nil {
				res.FilesCreated = append(res.FilesCreated, r.abs(r.pending.written)...)
			}
			err := errors.New(errors.CodeInternal, fmt.Sprintf("panic during %s: %v", running, rec))
			g.fail(logger, res, running, err)
		}
	}()

	if p == nil {
		g.fail(logger, res, StageIdle, errors.New(errors.CodeInvalidArgument, "project descriptor is nil"))
		return res
	}
	logger = logger.With(log.Str("project", p.Name))

	outputRoot := p.OutputPath
	if outputRoot == "" {
		outputRoot = "."
	}
	res.ProjectPath = filepath.Join(outputRoot, p.Name)

	var opts []render.Option
	if g.year != 0 {
		opts = append(opts, render.WithYear(g.year))
	}
	rc, err := render.NewContext(p, g.ids(), opts...)
	if err != nil {
		g.fail(logger, res, StageIdle, err)
		return res
	}

	r = &run{rc: rc, fs: projectfs.New(res.ProjectPath, logger)}
	logger.Info("generation started", log.Str("path", res.ProjectPath))

	running = StageStructureCreated
	for _, dir := range rc.Names.Directories(rc.Flags.Database, rc.Flags.Tests) {
		if err := r.fs.CreateDirectory(dir); err != nil {
			g.fail(logger, res, StageStructureCreated, err)
			return res
		}
	}
	g.completed(logger, StageStructureCreated, nil)

	for _, s := range stages {
		if s.enabled != nil && !s.enabled(rc.Flags) {
			continue
		}
		running = s.stage
		files, err := s.write(r)
		r.pending = nil
		res.FilesCreated = append(res.FilesCreated, r.abs(files)...)
		if err != nil {
			g.fail(logger, res, s.stage, err)
			return res
		}
		g.completed(logger, s.stage, files)
	}

	res.Success = true
	res.Stage = StageDone
	res.Message = fmt.Sprintf("Project %s generated successfully!", p.Name)
	logger.Info("generation finished", log.Int("files", len(res.FilesCreated)))
	return res
}

func (g *Generator) completed(logger log.Logger, stage Stage, files []string) {
	logger.Debug("stage completed", log.Str("stage", stage.String()), log.Int("files", len(files)))
	if g.hook != nil {
		g.hook(stage, files)
	}
}

func (g *Generator) fail(logger log.Logger, res *Result, stage Stage, err error) {
	res.Success = false
	res.Stage = StageFailed
	res.FailedStage = stage
	res.Err = err
	res.Error = err.Error()
	res.Message = ""
	logger.Error(err, "generation failed", log.Str("stage", stage.String()), log.Int("files", len(res.FilesCreated)))
}
