package configschema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// Schema returns the CUE schema descriptor files are checked against.
func Schema() string {
	return schemaSource
}

// decodeCUE evaluates a CUE descriptor against #Project and decodes the
// concrete result into out.
func decodeCUE(data []byte, name string, out *File) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	project := schema.LookupPath(cue.ParsePath("#Project"))

	val := ctx.CompileBytes(data, cue.Filename(name))
	if err := val.Err(); err != nil {
		return err
	}
	unified := project.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return unified.Decode(out)
}
