package examples

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/netgen/internal/configschema"
	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/generators"
	"go.eggybyte.com/netgen/internal/naming"
	"go.eggybyte.com/netgen/internal/testingx"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"basic", "blog", "ecommerce", "full", "inventory", "minimal", "mysql", "postgresql",
	}, Names())
	for _, p := range List() {
		assert.NotEmpty(t, p.Description, p.Name)
	}
}

func TestGet_Unknown(t *testing.T) {
	p, err := Get("crm")
	assert.Nil(t, p)
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
	assert.Contains(t, err.Error(), "ecommerce")
}

func TestGet_ReturnsFreshCopy(t *testing.T) {
	a, err := Get("blog")
	require.NoError(t, err)
	a.Entities[0].Name = "Writer"

	b, err := Get("blog")
	require.NoError(t, err)
	assert.Equal(t, "Author", b.Entities[0].Name)
}

func TestPresets_PassDescriptorValidation(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			require.NoError(t, p.Check())
			p.OutputPath = "."

			data, err := configschema.Marshal(p)
			require.NoError(t, err)
			parsed, diags := configschema.Parse(data, configschema.FormatYAML, name+".yaml")
			require.False(t, diags.HasErrors(), "%v", diags.Items())
			assert.Equal(t, p, parsed)
		})
	}
}

func TestPresets_Generate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			p.OutputPath = t.TempDir()

			gen := generators.New(generators.WithIDSource(func() naming.IDSource {
				return naming.NewSequenceIDs(name)
			}))
			res := gen.Generate(p)
			require.True(t, res.Success, res.Error)

			root := filepath.Join(p.OutputPath, p.Name)
			tree := testingx.ReadTree(t, root)
			assert.Len(t, tree, len(res.FilesCreated))
			assert.Contains(t, tree, p.Name+".sln")
			for _, e := range p.Entities {
				assert.Contains(t, tree, "src/"+p.Name+"/Controllers/"+e.Name+"Controller.cs")
			}
		})
	}
}

func TestMinimal_HasNoDataLayer(t *testing.T) {
	p, err := Get("minimal")
	require.NoError(t, err)
	assert.False(t, p.IncludeDatabase)
	assert.False(t, p.Features.Tests)
	assert.Empty(t, p.Entities)
}
