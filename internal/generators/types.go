package generators

import (
	"path/filepath"
)

// Stage is a state of the generation state machine.
type Stage int

// Stages in the order a run passes through them. DataLayerWritten and
// TestsWritten are skipped when their flag is off.
const (
	StageIdle Stage = iota
	StageStructureCreated
	StageManifestsWritten
	StageModelsWritten
	StageDataLayerWritten
	StageServicesWritten
	StageControllersWritten
	StageTestsWritten
	StageAuxiliaryWritten
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageIdle:               "Idle",
	StageStructureCreated:   "StructureCreated",
	StageManifestsWritten:   "ManifestsWritten",
	StageModelsWritten:      "ModelsWritten",
	StageDataLayerWritten:   "DataLayerWritten",
	StageServicesWritten:    "ServicesWritten",
	StageControllersWritten: "ControllersWritten",
	StageTestsWritten:       "TestsWritten",
	StageAuxiliaryWritten:   "AuxiliaryWritten",
	StageDone:               "Done",
	StageFailed:             "Failed",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}

// Result reports the outcome of one generation run.
//
// On failure FilesCreated still lists every file written before the failing
// point; nothing is rolled back.
//
// Usage:
//
//	res := gen.Generate(project)
//	if !res.Success {
//	    fmt.Println(res.Error, len(res.FilesCreated))
//	}
type Result struct {
	Success      bool     // True when every enabled stage completed
	ProjectPath  string   // Output root joined with the project name
	FilesCreated []string // Written files in write order, joined onto ProjectPath
	Message      string   // Success message, empty on failure
	Error        string   // Failure description, empty on success
	Err          error    // Failure cause for programmatic callers
	Stage        Stage    // Last stage reached: StageDone or StageFailed
	FailedStage  Stage    // Stage whose work failed; StageIdle when setup failed
}

// RelativeFiles returns FilesCreated relative to ProjectPath, slash-separated.
func (r *Result) RelativeFiles() []string {
	out := make([]string, 0, len(r.FilesCreated))
	for _, f := range r.FilesCreated {
		rel, err := filepath.Rel(r.ProjectPath, f)
		if err != nil {
			rel = f
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
