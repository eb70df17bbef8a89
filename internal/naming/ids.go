package naming

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out globally unique identifiers.
type IDSource interface {
	NewID() string
}

// RandomIDs draws random (version 4) identifiers.
type RandomIDs struct{}

// NewID implements IDSource.
func (RandomIDs) NewID() string {
	return uuid.NewString()
}

// SequenceIDs derives name-based (version 5) identifiers from a seed and a
// counter, so two sources with the same seed yield the same sequence.
type SequenceIDs struct {
	Seed string
	n    atomic.Uint64
}

// NewSequenceIDs creates a SequenceIDs for seed.
func NewSequenceIDs(seed string) *SequenceIDs {
	return &SequenceIDs{Seed: seed}
}

// NewID implements IDSource.
func (s *SequenceIDs) NewID() string {
	n := s.n.Add(1)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.Seed+"/"+strconv.FormatUint(n, 10))).String()
}

// BuildIDs are the run-scoped identifiers referenced across manifests.
// Project and solution GUIDs are upper-case as Visual Studio writes them;
// assembly GUIDs are lower-case.
type BuildIDs struct {
	Solution     string
	MainProject  string
	TestProject  string
	MainAssembly string
	TestAssembly string
}

// NewBuildIDs draws one identifier per slot from src.
func NewBuildIDs(src IDSource) BuildIDs {
	return BuildIDs{
		Solution:     strings.ToUpper(src.NewID()),
		MainProject:  strings.ToUpper(src.NewID()),
		TestProject:  strings.ToUpper(src.NewID()),
		MainAssembly: strings.ToLower(src.NewID()),
		TestAssembly: strings.ToLower(src.NewID()),
	}
}
