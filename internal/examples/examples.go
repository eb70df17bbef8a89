// Package examples holds the built-in preset descriptors offered by
// "netgen examples" and "netgen generate --example".
package examples

import (
	"fmt"
	"sort"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/errors"
)

// Preset is a named, ready-to-generate project.
type Preset struct {
	Name        string
	Description string
	build       func() *descriptor.ProjectDescriptor
}

// Descriptor returns a fresh copy of the preset's descriptor.
func (p Preset) Descriptor() *descriptor.ProjectDescriptor {
	return p.build()
}

var presets = map[string]Preset{
	"minimal":    {Name: "minimal", Description: "Web API host without database or entities", build: minimal},
	"basic":      {Name: "basic", Description: "Single-entity CRUD on SQLite", build: basic},
	"full":       {Name: "full", Description: "Customers, orders and products with every feature", build: full},
	"mysql":      {Name: "mysql", Description: "Article API on MySQL", build: mysql},
	"postgresql": {Name: "postgresql", Description: "Employee API on PostgreSQL", build: postgresql},
	"ecommerce":  {Name: "ecommerce", Description: "Shop with users, catalog, orders and reviews", build: ecommerce},
	"blog":       {Name: "blog", Description: "Blog with authors, posts, comments and tags", build: blog},
	"inventory":  {Name: "inventory", Description: "Suppliers, warehouses, items and stock levels", build: inventory},
}

// List returns all presets sorted by name.
func List() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the preset names in sorted order.
func Names() []string {
	var names []string
	for _, p := range List() {
		names = append(names, p.Name)
	}
	return names
}

// Get returns the descriptor of the named preset.
func Get(name string) (*descriptor.ProjectDescriptor, error) {
	p, ok := presets[name]
	if !ok {
		return nil, errors.New(errors.CodeInvalidArgument, fmt.Sprintf("unknown example %q, available: %v", name, Names()))
	}
	return p.Descriptor(), nil
}

func key(name string) descriptor.PropertyDescriptor {
	return descriptor.PropertyDescriptor{Name: name, Type: descriptor.TypeInt, Required: true, PrimaryKey: true}
}

func req(name string, t descriptor.PropertyType) descriptor.PropertyDescriptor {
	return descriptor.PropertyDescriptor{Name: name, Type: t, Required: true}
}

func opt(name string, t descriptor.PropertyType) descriptor.PropertyDescriptor {
	return descriptor.PropertyDescriptor{Name: name, Type: t}
}

func str(name string, max int, required bool) descriptor.PropertyDescriptor {
	return descriptor.PropertyDescriptor{Name: name, Type: descriptor.TypeString, Required: required, MaxLength: max}
}

func fk(name, entity string, required bool) descriptor.PropertyDescriptor {
	return descriptor.PropertyDescriptor{Name: name, Type: descriptor.TypeInt, Required: required, ForeignEntity: entity}
}

func entity(name string, props ...descriptor.PropertyDescriptor) descriptor.EntityDescriptor {
	return descriptor.EntityDescriptor{Name: name, Properties: props}
}

func allFeatures(auth bool) descriptor.Features {
	return descriptor.Features{Swagger: true, CORS: true, Authentication: auth, Tests: true}
}

const localDBOptions = "Connect Timeout=30;Encrypt=False;TrustServerCertificate=False"

func localDB(catalog string) string {
	return fmt.Sprintf(`Data Source=(localdb)\MSSQLLocalDB;Initial Catalog=%s;Integrated Security=True;%s`, catalog, localDBOptions)
}

const (
	tString   = descriptor.TypeString
	tInt      = descriptor.TypeInt
	tDecimal  = descriptor.TypeDecimal
	tBool     = descriptor.TypeBool
	tDateTime = descriptor.TypeDateTime
)
