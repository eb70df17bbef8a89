// Package configschema loads project descriptors from YAML, JSON and CUE files.
//
// Overview:
//   - Responsibility: Parse descriptor files, fill defaults, validate, convert to descriptors
//   - Key Types: File (on-disk schema), Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured diagnostics with paths and suggestions
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	project, diags := configschema.Load("project.yaml")
//	if diags.HasErrors() {
//	    return diags.Err()
//	}
package configschema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go.eggybyte.com/netgen/internal/descriptor"
)

// Format is a descriptor file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatOf picks the format from a file extension. JSON is parsed by the
// YAML decoder, which accepts it as a subset.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".cue":
		return FormatCUE, true
	}
	return "", false
}

// File is the on-disk descriptor schema.
type File struct {
	ProjectName string          `yaml:"project_name" json:"project_name" validate:"required,csnamespace"`
	ProjectType string          `yaml:"project_type,omitempty" json:"project_type,omitempty" validate:"projectkind"`
	OutputPath  string          `yaml:"output_path,omitempty" json:"output_path,omitempty"`
	Database    DatabaseSection `yaml:"database" json:"database"`
	Features    FeaturesSection `yaml:"features" json:"features"`
	Entities    []EntitySection `yaml:"entities" json:"entities" validate:"omitempty,dive"`
}

// DatabaseSection configures the data layer. Enabled defaults to true.
type DatabaseSection struct {
	Enabled          *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Provider         string `yaml:"provider,omitempty" json:"provider,omitempty" validate:"dbprovider"`
	ConnectionString string `yaml:"connection_string,omitempty" json:"connection_string,omitempty"`
}

// FeaturesSection toggles optional artifacts. Swagger, CORS and tests
// default to on, authentication to off.
type FeaturesSection struct {
	Swagger        *bool `yaml:"swagger,omitempty" json:"swagger,omitempty"`
	CORS           *bool `yaml:"cors,omitempty" json:"cors,omitempty"`
	Authentication *bool `yaml:"authentication,omitempty" json:"authentication,omitempty"`
	Tests          *bool `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// EntitySection describes one entity.
type EntitySection struct {
	Name       string            `yaml:"name" json:"name" validate:"required,csident"`
	TableName  string            `yaml:"table_name,omitempty" json:"table_name,omitempty"`
	Properties []PropertySection `yaml:"properties" json:"properties" validate:"required,min=1,dive"`
}

// PropertySection describes one entity property.
type PropertySection struct {
	Name          string `yaml:"name" json:"name" validate:"required,csident"`
	Type          string `yaml:"type" json:"type" validate:"required,proptype"`
	Required      bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Key           bool   `yaml:"key,omitempty" json:"key,omitempty"`
	MaxLength     int    `yaml:"max_length,omitempty" json:"max_length,omitempty" validate:"gte=0"`
	ForeignEntity string `yaml:"foreign_entity,omitempty" json:"foreign_entity,omitempty" validate:"omitempty,csident"`
}

// Load reads, validates and converts a descriptor file.
//
// Parameters:
//   - path: Path to a .yaml, .yml, .json or .cue file
//
// Returns:
//   - *descriptor.ProjectDescriptor: Descriptor with defaults applied, nil on any error diagnostic
//   - *Diagnostics: Validation issues found
func Load(path string) (*descriptor.ProjectDescriptor, *Diagnostics) {
	diags := NewDiagnostics()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		diags.notFound = true
		diags.AddError("Descriptor file not found", path, "Run 'netgen examples show minimal' for a starting point")
		return nil, diags
	}
	format, ok := FormatOf(path)
	if !ok {
		diags.AddError("Unsupported descriptor format", path, "Use a .yaml, .yml, .json or .cue file")
		return nil, diags
	}

	data, err := os.ReadFile(path)
	if err != nil {
		diags.AddError(fmt.Sprintf("Failed to read descriptor file: %v", err), path, "Check file permissions")
		return nil, diags
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format. name labels CUE positions.
func Parse(data []byte, format Format, name string) (*descriptor.ProjectDescriptor, *Diagnostics) {
	diags := NewDiagnostics()

	var file File
	switch format {
	case FormatCUE:
		if err := decodeCUE(data, name, &file); err != nil {
			diags.AddError(fmt.Sprintf("Failed to evaluate CUE: %v", err), name, "Check the file against the #Project schema")
			return nil, diags
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			diags.AddError(fmt.Sprintf("Failed to parse %s: %v", strings.ToUpper(string(format)), err), name, "Check file syntax")
			return nil, diags
		}
	}

	applyDefaults(&file)
	Validate(&file, diags)
	if diags.HasErrors() {
		return nil, diags
	}
	return file.Descriptor(), diags
}

func boolPtr(v bool) *bool { return &v }

func applyDefaults(f *File) {
	if f.ProjectType == "" {
		f.ProjectType = string(descriptor.KindWebAPI)
	}
	if f.OutputPath == "" {
		f.OutputPath = "."
	}
	if f.Database.Enabled == nil {
		f.Database.Enabled = boolPtr(true)
	}
	if f.Database.Provider == "" {
		f.Database.Provider = string(descriptor.ProviderSQLServer)
	}
	if f.Features.Swagger == nil {
		f.Features.Swagger = boolPtr(true)
	}
	if f.Features.CORS == nil {
		f.Features.CORS = boolPtr(true)
	}
	if f.Features.Authentication == nil {
		f.Features.Authentication = boolPtr(false)
	}
	if f.Features.Tests == nil {
		f.Features.Tests = boolPtr(true)
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}

// Descriptor converts a validated file into a project descriptor.
func (f *File) Descriptor() *descriptor.ProjectDescriptor {
	kind, _ := descriptor.ParseProjectKind(f.ProjectType)
	provider, _ := descriptor.ParseProvider(f.Database.Provider)
	p := &descriptor.ProjectDescriptor{
		Name:             f.ProjectName,
		Kind:             kind,
		OutputPath:       f.OutputPath,
		IncludeDatabase:  deref(f.Database.Enabled),
		Provider:         provider,
		ConnectionString: f.Database.ConnectionString,
		Features: descriptor.Features{
			Swagger:        deref(f.Features.Swagger),
			CORS:           deref(f.Features.CORS),
			Authentication: deref(f.Features.Authentication),
			Tests:          deref(f.Features.Tests),
		},
	}
	for _, es := range f.Entities {
		e := descriptor.EntityDescriptor{Name: es.Name, TableName: es.TableName}
		for _, ps := range es.Properties {
			t, _ := descriptor.ParsePropertyType(ps.Type)
			e.Properties = append(e.Properties, descriptor.PropertyDescriptor{
				Name:          ps.Name,
				Type:          t,
				Required:      ps.Required,
				PrimaryKey:    ps.Key,
				MaxLength:     ps.MaxLength,
				ForeignEntity: ps.ForeignEntity,
			})
		}
		p.Entities = append(p.Entities, e)
	}
	return p
}

// FromDescriptor builds the file form of p with every field explicit.
func FromDescriptor(p *descriptor.ProjectDescriptor) *File {
	f := &File{
		ProjectName: p.Name,
		ProjectType: string(p.Kind),
		OutputPath:  p.OutputPath,
		Database: DatabaseSection{
			Enabled:          boolPtr(p.IncludeDatabase),
			Provider:         string(p.Provider),
			ConnectionString: p.ConnectionString,
		},
		Features: FeaturesSection{
			Swagger:        boolPtr(p.Features.Swagger),
			CORS:           boolPtr(p.Features.CORS),
			Authentication: boolPtr(p.Features.Authentication),
			Tests:          boolPtr(p.Features.Tests),
		},
	}
	for _, e := range p.Entities {
		es := EntitySection{Name: e.Name, TableName: e.TableName}
		for _, prop := range e.Properties {
			es.Properties = append(es.Properties, PropertySection{
				Name:          prop.Name,
				Type:          string(prop.Type),
				Required:      prop.Required,
				Key:           prop.PrimaryKey,
				MaxLength:     prop.MaxLength,
				ForeignEntity: prop.ForeignEntity,
			})
		}
		f.Entities = append(f.Entities, es)
	}
	return f
}

// Marshal renders p as a YAML descriptor file.
func Marshal(p *descriptor.ProjectDescriptor) ([]byte, error) {
	return yaml.Marshal(FromDescriptor(p))
}
