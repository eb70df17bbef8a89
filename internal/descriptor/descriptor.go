// Package descriptor defines the value objects consumed by the generation engine.
//
// Overview:
//   - Responsibility: Describe a project, its entities and their properties
//   - Key Types: ProjectDescriptor, EntityDescriptor, PropertyDescriptor, Features
//   - Concurrency Model: Values are read-only once handed to the engine
//   - Error Semantics: Check reports engine invariant violations as INVALID_ARGUMENT
//   - Performance Notes: Plain structs, no hidden allocation
//
// Usage:
//
//	p := &descriptor.ProjectDescriptor{Name: "BlogAPI", Kind: descriptor.KindWebAPI}
//	if err := p.Check(); err != nil { ... }
package descriptor

import (
	stderrors "errors"
	"fmt"
	"strings"

	"go.eggybyte.com/netgen/internal/errors"
)

// ProjectKind selects the flavor of the generated main project.
type ProjectKind string

const (
	KindWebAPI  ProjectKind = "webapi"
	KindMVC     ProjectKind = "mvc"
	KindConsole ProjectKind = "console"
)

// DatabaseProvider selects the Entity Framework provider.
type DatabaseProvider string

const (
	ProviderSQLServer  DatabaseProvider = "sqlserver"
	ProviderSQLite     DatabaseProvider = "sqlite"
	ProviderMySQL      DatabaseProvider = "mysql"
	ProviderPostgreSQL DatabaseProvider = "postgresql"
)

// PropertyType is the abstract, language-neutral type of a property.
type PropertyType string

const (
	TypeString   PropertyType = "string"
	TypeInt      PropertyType = "int"
	TypeDecimal  PropertyType = "decimal"
	TypeBool     PropertyType = "bool"
	TypeDateTime PropertyType = "datetime"
	TypeLong     PropertyType = "long"
	TypeDouble   PropertyType = "double"
	TypeFloat    PropertyType = "float"
	TypeBytes    PropertyType = "bytes"
)

// Engine invariant violations.
var (
	ErrNoPrimaryKey        = stderrors.New("entity has no primary key property")
	ErrMultiplePrimaryKeys = stderrors.New("entity has more than one primary key property")
)

var propertyTypeAliases = map[string]PropertyType{
	"string":     TypeString,
	"int":        TypeInt,
	"integer":    TypeInt,
	"decimal":    TypeDecimal,
	"bool":       TypeBool,
	"boolean":    TypeBool,
	"datetime":   TypeDateTime,
	"date-time":  TypeDateTime,
	"long":       TypeLong,
	"double":     TypeDouble,
	"float":      TypeFloat,
	"bytes":      TypeBytes,
	"byte[]":     TypeBytes,
	"byte-array": TypeBytes,
}

// ParsePropertyType resolves a type name, accepting C# spellings such as
// "DateTime" and "byte[]".
func ParsePropertyType(s string) (PropertyType, bool) {
	t, ok := propertyTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// PropertyTypes lists the canonical property type names.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		TypeString, TypeInt, TypeDecimal, TypeBool, TypeDateTime,
		TypeLong, TypeDouble, TypeFloat, TypeBytes,
	}
}

// IsValueType reports whether the type maps to a non-nullable CLR value type.
func (t PropertyType) IsValueType() bool {
	switch t {
	case TypeString, TypeBytes:
		return false
	default:
		return true
	}
}

// ParseProjectKind resolves a project kind, accepting "api" for webapi.
func ParseProjectKind(s string) (ProjectKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "webapi", "api":
		return KindWebAPI, true
	case "mvc":
		return KindMVC, true
	case "console":
		return KindConsole, true
	}
	return "", false
}

// ParseProvider resolves a provider name, accepting common spellings.
func ParseProvider(s string) (DatabaseProvider, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlserver", "mssql":
		return ProviderSQLServer, true
	case "sqlite":
		return ProviderSQLite, true
	case "mysql":
		return ProviderMySQL, true
	case "postgresql", "postgres":
		return ProviderPostgreSQL, true
	}
	return "", false
}

// Features holds the optional feature toggles of a project.
type Features struct {
	Swagger        bool
	CORS           bool
	Authentication bool
	Tests          bool
}

// PropertyDescriptor describes one field of an entity.
type PropertyDescriptor struct {
	Name          string
	Type          PropertyType
	Required      bool
	PrimaryKey    bool
	MaxLength     int    // 0 means unbounded; only honored for strings
	ForeignEntity string // name of the referenced entity, empty for none
}

// HasMaxLength reports whether a length constraint applies to the property.
func (p PropertyDescriptor) HasMaxLength() bool {
	return p.MaxLength > 0 && p.Type == TypeString
}

// EntityDescriptor describes one entity and its ordered properties.
type EntityDescriptor struct {
	Name       string
	TableName  string
	Properties []PropertyDescriptor
}

// Table returns the explicit table name or the default Name + "s".
func (e EntityDescriptor) Table() string {
	if e.TableName != "" {
		return e.TableName
	}
	return e.Name + "s"
}

// PrimaryKey returns the single property flagged as primary key.
func (e EntityDescriptor) PrimaryKey() (PropertyDescriptor, error) {
	var (
		key   PropertyDescriptor
		count int
	)
	for _, p := range e.Properties {
		if p.PrimaryKey {
			key = p
			count++
		}
	}
	switch count {
	case 0:
		return PropertyDescriptor{}, fmt.Errorf("%s: %w", e.Name, ErrNoPrimaryKey)
	case 1:
		return key, nil
	default:
		return PropertyDescriptor{}, fmt.Errorf("%s: %w", e.Name, ErrMultiplePrimaryKeys)
	}
}

// ProjectDescriptor describes a whole project handed to the engine.
type ProjectDescriptor struct {
	Name             string
	Kind             ProjectKind
	OutputPath       string
	IncludeDatabase  bool
	Provider         DatabaseProvider
	ConnectionString string
	Features         Features
	Entities         []EntityDescriptor
}

// EffectiveConnectionString returns the configured connection string or the
// provider default derived from the project name.
func (p *ProjectDescriptor) EffectiveConnectionString() string {
	if p.ConnectionString != "" {
		return p.ConnectionString
	}
	return DefaultConnectionString(p.Provider, p.Name)
}

// DefaultConnectionString returns the development connection string for a provider.
func DefaultConnectionString(provider DatabaseProvider, project string) string {
	switch provider {
	case ProviderSQLite:
		return fmt.Sprintf("Data Source=%s.db", project)
	case ProviderMySQL:
		return fmt.Sprintf("Server=localhost;Database=%sDb;Uid=root;Pwd=;", project)
	case ProviderPostgreSQL:
		return fmt.Sprintf("Host=localhost;Database=%sDb;Username=postgres;Password=postgres", project)
	default:
		return fmt.Sprintf(`Data Source=(localdb)\MSSQLLocalDB;Initial Catalog=%sDb;Integrated Security=True`, project)
	}
}

// Entity looks up an entity by name.
func (p *ProjectDescriptor) Entity(name string) (EntityDescriptor, bool) {
	for _, e := range p.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return EntityDescriptor{}, false
}

// Check verifies the invariants the engine depends on: every entity carries
// exactly one primary key. Identifier legality and foreign references are the
// caller's responsibility.
func (p *ProjectDescriptor) Check() error {
	if p == nil {
		return errors.New(errors.CodeInvalidArgument, "project descriptor is nil")
	}
	for _, e := range p.Entities {
		if _, err := e.PrimaryKey(); err != nil {
			return errors.Wrapf(errors.CodeInvalidArgument, "descriptor.Check", err, "invalid entity %q", e.Name)
		}
	}
	return nil
}
