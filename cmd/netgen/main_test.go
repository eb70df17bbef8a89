package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/netgen/internal/configschema"
	"go.eggybyte.com/netgen/internal/ui"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	prevColor := color.NoColor
	color.NoColor = true

	var out, errOut bytes.Buffer
	restore := ui.SetOutput(&out, &errOut)
	defer func() {
		restore()
		ui.SetJSONOutput(false)
		ui.SetVerbose(false)
		color.NoColor = prevColor
	}()

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	code := execute(cmd, args)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

const notesYAML = `project_name: Notes
database:
  enabled: false
features:
  tests: false
entities:
  - name: Note
    properties:
      - {name: Id, type: int, key: true}
      - {name: Title, type: string, required: true, max_length: 120}
`

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerate_FromFile(t *testing.T) {
	out := t.TempDir()
	res := runCLI(t, "generate", "-f", writeDescriptor(t, "notes.yaml", notesYAML), "-o", out, "--seed", "cli")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "[1/6] StructureCreated")
	assert.Contains(t, res.stdout, "[6/6] AuxiliaryWritten")
	assert.Contains(t, res.stdout, "Project Notes generated successfully!")
	assert.FileExists(t, filepath.Join(out, "Notes", "Notes.sln"))
	assert.FileExists(t, filepath.Join(out, "Notes", "src", "Notes", "Controllers", "NoteController.cs"))
	assert.NoFileExists(t, filepath.Join(out, "Notes", "tests", "Notes.Tests", "Notes.Tests.csproj"))
}

func TestGenerate_DottedProjectName(t *testing.T) {
	out := t.TempDir()
	path := writeDescriptor(t, "shop.yaml", `project_name: Contoso.Shop
database:
  provider: sqlite
entities:
  - name: Order
    properties:
      - {name: Id, type: int, key: true}
`)
	res := runCLI(t, "generate", "-f", path, "-o", out)
	require.Equal(t, 0, res.code, res.stderr)

	ctx, err := os.ReadFile(filepath.Join(out, "Contoso.Shop", "src", "Contoso.Shop", "Data", "ShopContext.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(ctx), "namespace Contoso.Shop.Data")
	assert.Contains(t, string(ctx), "public class ShopContext : DbContext")
	assert.NoFileExists(t, filepath.Join(out, "Contoso.Shop", "src", "Contoso.Shop", "Data", "Contoso.ShopContext.cs"))
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	require.Equal(t, 0, runCLI(t, "generate", "--example", "basic", "-o", a, "--seed", "s").code)
	require.Equal(t, 0, runCLI(t, "generate", "--example", "basic", "-o", b, "--seed", "s").code)

	slnA, err := os.ReadFile(filepath.Join(a, "BasicCrudAPI", "BasicCrudAPI.sln"))
	require.NoError(t, err)
	slnB, err := os.ReadFile(filepath.Join(b, "BasicCrudAPI", "BasicCrudAPI.sln"))
	require.NoError(t, err)
	assert.Equal(t, string(slnA), string(slnB))
}

func TestGenerate_JSON(t *testing.T) {
	out := t.TempDir()
	res := runCLI(t, "--json", "generate", "--example", "minimal", "-o", out)
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	var report generateReport
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &report))
	assert.True(t, report.Success)
	assert.Equal(t, "Done", report.Stage)
	assert.Equal(t, filepath.Join(out, "MinimalAPI"), report.ProjectPath)
	assert.Contains(t, report.Files, "MinimalAPI.sln")
	assert.Contains(t, report.Files, "README.md")
}

func TestGenerate_RequiresOneSource(t *testing.T) {
	res := runCLI(t, "generate")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "file")

	res = runCLI(t, "generate", "-f", "a.yaml", "--example", "blog")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Command failed")
}

func TestGenerate_UnknownExample(t *testing.T) {
	res := runCLI(t, "generate", "--example", "crm")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `unknown example "crm"`)
}

func TestGenerate_InvalidDescriptor(t *testing.T) {
	path := writeDescriptor(t, "bad.yaml", `project_name: Bad
entities:
  - name: Thing
    properties:
      - {name: Label, type: string}
`)
	res := runCLI(t, "generate", "-f", path, "-o", t.TempDir())
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `Entity "Thing" has no key property`)
	assert.NotContains(t, res.stderr, "Command failed")
}

func TestGenerate_ReportsPartialFiles(t *testing.T) {
	out := t.TempDir()
	blocker := filepath.Join(out, "Notes", "src", "Notes", "Models", "Note.cs")
	require.NoError(t, os.MkdirAll(blocker, 0o755))

	res := runCLI(t, "generate", "-f", writeDescriptor(t, "notes.yaml", notesYAML), "-o", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Generation failed during ModelsWritten")
	assert.Contains(t, res.stdout, "Files written before the failure")
	assert.Contains(t, res.stdout, "  - Notes.sln")
}

func TestValidate(t *testing.T) {
	res := runCLI(t, "validate", "-f", writeDescriptor(t, "notes.yaml", notesYAML))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "project Notes with 1 entities")

	res = runCLI(t, "validate", writeDescriptor(t, "notes.cue", `project_name: "Notes"
entities: [{name: "Note", properties: [{name: "Id", type: "long", key: true}]}]
`))
	assert.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "validate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Descriptor file not found")

	res = runCLI(t, "validate")
	assert.Equal(t, 1, res.code)
}

func TestValidate_JSON(t *testing.T) {
	path := writeDescriptor(t, "bad.yaml", `project_name: Bad
entities:
  - name: Thing
    properties:
      - {name: Id, type: uuid, key: true}
`)
	res := runCLI(t, "--json", "validate", "-f", path)
	assert.Equal(t, 1, res.code)

	var report validateReport
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(res.stdout)), &report))
	assert.False(t, report.Valid)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "entities[0].properties[0].type", report.Diagnostics[0].Path)
}

func TestExamples(t *testing.T) {
	res := runCLI(t, "examples")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Available examples:")
	assert.Contains(t, res.stdout, "inventory")
	assert.Contains(t, res.stdout, "ECommerceAPI, 6 entities")
}

func TestExamplesShow(t *testing.T) {
	res := runCLI(t, "examples", "show", "blog")
	require.Equal(t, 0, res.code, res.stderr)

	p, diags := configschema.Parse([]byte(res.stdout), configschema.FormatYAML, "blog.yaml")
	require.False(t, diags.HasErrors(), "%v", diags.Items())
	assert.Equal(t, "BlogAPI", p.Name)
	assert.Len(t, p.Entities, 4)
	assert.True(t, p.Features.Authentication)

	res = runCLI(t, "examples", "show", "nope")
	assert.Equal(t, 1, res.code)
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "version")
	require.Equal(t, 0, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "netgen version "))

	res = runCLI(t, "--json", "version")
	require.Equal(t, 0, res.code)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.Equal(t, "v4.8", info["target_framework"])
}
