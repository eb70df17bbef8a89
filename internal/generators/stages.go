package generators

import (
	"path/filepath"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/projectfs"
	"go.eggybyte.com/netgen/internal/render"
)

// run is the per-call state shared by the stages.
type run struct {
	rc      *render.Context
	fs      *projectfs.ProjectFS
	pending *stageWriter
}

// abs joins relative artifact paths onto the project root.
func (r *run) abs(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, r.fs.Abs(f))
	}
	return out
}

func (r *run) writer() *stageWriter {
	w := &stageWriter{fs: r.fs}
	r.pending = w
	return w
}

// stageWriter writes artifacts and accumulates the paths it wrote.
type stageWriter struct {
	fs      *projectfs.ProjectFS
	written []string
}

func (w *stageWriter) emit(arts []render.Artifact, err error) error {
	if err != nil {
		return err
	}
	for _, a := range arts {
		if err := w.fs.WriteFile(a.Path, a.Content); err != nil {
			return err
		}
		w.written = append(w.written, filepath.ToSlash(a.Path))
	}
	return nil
}

func single(a render.Artifact, err error) ([]render.Artifact, error) {
	if err != nil {
		return nil, err
	}
	return []render.Artifact{a}, nil
}

type stage struct {
	stage   Stage
	enabled func(render.Flags) bool
	write   func(*run) ([]string, error)
}

var stages = []stage{
	{stage: StageManifestsWritten, write: writeManifests},
	{stage: StageModelsWritten, write: writeModels},
	{stage: StageDataLayerWritten, enabled: func(f render.Flags) bool { return f.Database }, write: writeDataLayer},
	{stage: StageServicesWritten, write: writeServices},
	{stage: StageControllersWritten, write: writeControllers},
	{stage: StageTestsWritten, enabled: func(f render.Flags) bool { return f.Tests }, write: writeTests},
	{stage: StageAuxiliaryWritten, write: writeAuxiliary},
}

// writeManifests writes the solution, the main project manifest and package
// list, assembly metadata and the web host configuration.
func writeManifests(r *run) ([]string, error) {
	w := r.writer()
	for _, fn := range []func(*render.Context) (render.Artifact, error){
		render.Solution,
		render.MainProject,
		render.MainPackagesConfig,
		render.MainAssemblyInfo,
	} {
		if err := w.emit(single(fn(r.rc))); err != nil {
			return w.written, err
		}
	}
	if err := w.emit(render.Configuration(r.rc)); err != nil {
		return w.written, err
	}
	return w.written, nil
}

func writeModels(r *run) ([]string, error) {
	w := r.writer()
	for _, e := range r.rc.Names.Entities {
		if err := w.emit(single(render.Model(r.rc, e))); err != nil {
			return w.written, err
		}
	}
	return w.written, nil
}

func writeDataLayer(r *run) ([]string, error) {
	w := r.writer()
	if err := w.emit(single(render.DataContext(r.rc))); err != nil {
		return w.written, err
	}
	for _, e := range r.rc.Names.Entities {
		if err := w.emit(single(render.EntityConfiguration(r.rc, e))); err != nil {
			return w.written, err
		}
	}
	return w.written, nil
}

func writeServices(r *run) ([]string, error) {
	w := r.writer()
	for _, e := range r.rc.Names.Entities {
		if err := w.emit(single(render.ServiceInterface(r.rc, e))); err != nil {
			return w.written, err
		}
		if err := w.emit(single(render.Service(r.rc, e))); err != nil {
			return w.written, err
		}
	}
	return w.written, nil
}

func writeControllers(r *run) ([]string, error) {
	w := r.writer()
	for _, e := range r.rc.Names.Entities {
		if err := w.emit(single(render.Controller(r.rc, e))); err != nil {
			return w.written, err
		}
	}
	return w.written, nil
}

func writeTests(r *run) ([]string, error) {
	w := r.writer()
	if err := w.emit(render.TestProject(r.rc)); err != nil {
		return w.written, err
	}
	for _, e := range r.rc.Names.Entities {
		if err := w.emit(render.EntityTests(r.rc, e)); err != nil {
			return w.written, err
		}
	}
	return w.written, nil
}

func writeAuxiliary(r *run) ([]string, error) {
	w := r.writer()
	if err := w.emit(single(render.Readme(r.rc))); err != nil {
		return w.written, err
	}
	if err := w.emit(single(render.GitIgnore(r.rc))); err != nil {
		return w.written, err
	}
	return w.written, nil
}

// Plan lists the stages a successful run for p completes, in order.
func Plan(p *descriptor.ProjectDescriptor) []Stage {
	flags := render.FlagsOf(p)
	plan := []Stage{StageStructureCreated}
	for _, s := range stages {
		if s.enabled == nil || s.enabled(flags) {
			plan = append(plan, s.stage)
		}
	}
	return plan
}
