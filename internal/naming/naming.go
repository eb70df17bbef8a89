// Package naming derives every identifier and path shared between artifacts.
//
// Overview:
//   - Responsibility: Compute the name table for a project exactly once per run
//   - Key Types: Table, Project, Entity, Key, BuildIDs, IDSource
//   - Concurrency Model: A Table is immutable after NewTable returns
//   - Error Semantics: NewTable fails with INVALID_ARGUMENT on a missing or duplicated primary key
//   - Performance Notes: Linear in the number of entities and properties
//
// All derivations except build identifiers are pure: the same descriptor
// always yields the same strings. Build identifiers come from an IDSource and
// are drawn once per table, so every artifact referencing a project sees the
// same GUID.
//
// Usage:
//
//	table, err := naming.NewTable(project, naming.RandomIDs{})
//	user, _ := table.Entity("User")
//	fmt.Println(user.RoutePrefix, user.Key.RouteTemplate) // api/user {id:int}
package naming

import (
	"fmt"
	"hash/fnv"
	"path"
	"strings"
	"unicode"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/errors"
)

// ConnectionName is the connection string key shared by Web.config and the data context.
const ConnectionName = "DefaultConnection"

// Project holds project-level names and paths. Paths are slash-separated and
// relative to the project root.
type Project struct {
	Name           string
	Namespace      string
	TestName       string
	TestNamespace  string
	ContextClass   string
	ConnectionName string
	IISPort        int

	SolutionFile     string
	MainDir          string
	ProjectFile      string
	PackagesFile     string
	ContextFile      string
	TestDir          string
	TestProjectFile  string
	TestPackagesFile string

	// Backslash paths as Visual Studio expects them inside manifests.
	SolutionMainPath   string
	SolutionTestPath   string
	TestProjectRefPath string
}

// Main joins rel onto the main project directory.
func (p Project) Main(rel string) string {
	return path.Join(p.MainDir, rel)
}

// Test joins rel onto the test project directory.
func (p Project) Test(rel string) string {
	return path.Join(p.TestDir, rel)
}

// Key holds the names derived from an entity's primary key.
type Key struct {
	Property      string // property name, e.g. "Id"
	Type          descriptor.PropertyType
	CSharpType    string // never nullable
	Param         string // handler and service parameter name, keyword-escaped
	RouteParam    string // parameter name as it appears in route templates
	Constraint    string // route constraint, empty when none applies
	RouteTemplate string // e.g. "{id:int}"
}

// Entity holds the names derived from one entity.
type Entity struct {
	Name                string
	Class               string
	Collection          string
	Table               string
	Var                 string
	Route               string
	RoutePrefix         string
	ServiceInterface    string
	ServiceClass        string
	ServiceField        string
	ServiceParam        string // controller constructor parameter
	CollectionVar       string // local holding a list of records
	ControllerClass     string
	ConfigurationClass  string
	ServiceTestClass    string
	ControllerTestClass string
	FakeServiceClass    string
	Key                 Key

	ModelFile            string
	ConfigurationFile    string
	ServiceInterfaceFile string
	ServiceFile          string
	ControllerFile       string
	ServiceTestFile      string
	ControllerTestFile   string
}

// Table is the name table for one generation run.
type Table struct {
	Project  Project
	Entities []Entity
	IDs      BuildIDs
	byName   map[string]int
}

// NewTable derives the name table for p, drawing build identifiers from ids.
func NewTable(p *descriptor.ProjectDescriptor, ids IDSource) (*Table, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = RandomIDs{}
	}

	t := &Table{
		Project: ProjectNames(p.Name),
		IDs:     NewBuildIDs(ids),
		byName:  make(map[string]int, len(p.Entities)),
	}
	for i, e := range p.Entities {
		names, err := EntityNames(t.Project, e)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidArgument, "naming.NewTable", err)
		}
		t.Entities = append(t.Entities, names)
		t.byName[e.Name] = i
	}
	return t, nil
}

// Entity returns the names for the entity called name.
func (t *Table) Entity(name string) (Entity, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entity{}, false
	}
	return t.Entities[i], true
}

// Directories lists the directory skeleton in creation order.
func (t *Table) Directories(database, tests bool) []string {
	p := t.Project
	dirs := []string{
		p.MainDir,
		p.Main("App_Start"),
		p.Main("Controllers"),
		p.Main("Models"),
		p.Main("Services"),
		p.Main("Properties"),
	}
	if database {
		dirs = append(dirs, p.Main("Data"), p.Main("Data/Configurations"), p.Main("Migrations"))
	}
	if tests {
		dirs = append(dirs,
			p.TestDir,
			p.Test("Controllers"),
			p.Test("Services"),
			p.Test("Properties"),
		)
	}
	return dirs
}

// ProjectNames derives the project-level names for a project called name.
func ProjectNames(name string) Project {
	testName := name + ".Tests"
	// A dotted name is a namespace; classes take its last segment.
	contextClass := name[strings.LastIndexByte(name, '.')+1:] + "Context"
	mainDir := path.Join("src", name)
	testDir := path.Join("tests", testName)
	return Project{
		Name:           name,
		Namespace:      name,
		TestName:       testName,
		TestNamespace:  testName,
		ContextClass:   contextClass,
		ConnectionName: ConnectionName,
		IISPort:        IISPort(name),

		SolutionFile:     name + ".sln",
		MainDir:          mainDir,
		ProjectFile:      path.Join(mainDir, name+".csproj"),
		PackagesFile:     path.Join(mainDir, "packages.config"),
		ContextFile:      path.Join(mainDir, "Data", contextClass+".cs"),
		TestDir:          testDir,
		TestProjectFile:  path.Join(testDir, testName+".csproj"),
		TestPackagesFile: path.Join(testDir, "packages.config"),

		SolutionMainPath:   `src\` + name + `\` + name + ".csproj",
		SolutionTestPath:   `tests\` + testName + `\` + testName + ".csproj",
		TestProjectRefPath: `..\..\src\` + name + `\` + name + ".csproj",
	}
}

// EntityNames derives the names of e within project p.
func EntityNames(p Project, e descriptor.EntityDescriptor) (Entity, error) {
	pk, err := e.PrimaryKey()
	if err != nil {
		return Entity{}, err
	}

	n := e.Name
	route := strings.ToLower(n)
	v := LowerCamel(n)
	return Entity{
		Name:                n,
		Class:               n,
		Collection:          Plural(n),
		Table:               e.Table(),
		Var:                 Identifier(v),
		Route:               route,
		RoutePrefix:         "api/" + route,
		ServiceInterface:    "I" + n + "Service",
		ServiceClass:        n + "Service",
		ServiceField:        "_" + v + "Service",
		ServiceParam:        Identifier(v + "Service"),
		CollectionVar:       Identifier(LowerCamel(Plural(n))),
		ControllerClass:     n + "Controller",
		ConfigurationClass:  n + "Configuration",
		ServiceTestClass:    n + "ServiceTests",
		ControllerTestClass: n + "ControllerTests",
		FakeServiceClass:    "Fake" + n + "Service",
		Key:                 KeyNames(pk),

		ModelFile:            p.Main("Models/" + n + ".cs"),
		ConfigurationFile:    p.Main("Data/Configurations/" + n + "Configuration.cs"),
		ServiceInterfaceFile: p.Main("Services/I" + n + "Service.cs"),
		ServiceFile:          p.Main("Services/" + n + "Service.cs"),
		ControllerFile:       p.Main("Controllers/" + n + "Controller.cs"),
		ServiceTestFile:      p.Test("Services/" + n + "ServiceTests.cs"),
		ControllerTestFile:   p.Test("Controllers/" + n + "ControllerTests.cs"),
	}, nil
}

// KeyNames derives the names used wherever pk is referenced.
func KeyNames(pk descriptor.PropertyDescriptor) Key {
	param := LowerCamel(pk.Name)
	constraint := routeConstraints[pk.Type]
	tmpl := "{" + param + "}"
	if constraint != "" {
		tmpl = "{" + param + ":" + constraint + "}"
	}
	return Key{
		Property:      pk.Name,
		Type:          pk.Type,
		CSharpType:    csharpTypes[pk.Type],
		Param:         Identifier(param),
		RouteParam:    param,
		Constraint:    constraint,
		RouteTemplate: tmpl,
	}
}

var routeConstraints = map[descriptor.PropertyType]string{
	descriptor.TypeInt:      "int",
	descriptor.TypeLong:     "long",
	descriptor.TypeDecimal:  "decimal",
	descriptor.TypeDouble:   "double",
	descriptor.TypeFloat:    "float",
	descriptor.TypeBool:     "bool",
	descriptor.TypeDateTime: "datetime",
}

var csharpTypes = map[descriptor.PropertyType]string{
	descriptor.TypeString:   "string",
	descriptor.TypeInt:      "int",
	descriptor.TypeDecimal:  "decimal",
	descriptor.TypeBool:     "bool",
	descriptor.TypeDateTime: "DateTime",
	descriptor.TypeLong:     "long",
	descriptor.TypeDouble:   "double",
	descriptor.TypeFloat:    "float",
	descriptor.TypeBytes:    "byte[]",
}

// CSharpType maps a property to its C# type. Optional value types become nullable.
func CSharpType(p descriptor.PropertyDescriptor) string {
	t, ok := csharpTypes[p.Type]
	if !ok {
		t = string(p.Type)
	}
	if !p.Required && !p.PrimaryKey && p.Type.IsValueType() {
		return t + "?"
	}
	return t
}

// Plural returns the collection name for an entity. The policy is a plain
// "s" suffix, matching the default table name.
func Plural(name string) string {
	return name + "s"
}

// LowerCamel lower-cases the leading run of upper-case letters, keeping the
// last one upper when it starts the next word: "ID" -> "id",
// "SKUCode" -> "skuCode", "OrderItem" -> "orderItem".
func LowerCamel(s string) string {
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if !unicode.IsUpper(r[i]) {
			break
		}
		if i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) {
			break
		}
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// IISPort derives a stable development port in [50000, 60000) from the project name.
func IISPort(project string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(project))
	return int(h.Sum32()%10000) + 50000
}

// IISURL is the IIS Express URL written into the project manifest.
func (p Project) IISURL() string {
	return fmt.Sprintf("http://localhost:%d/", p.IISPort)
}

var csharpKeywords = map[string]bool{}

func init() {
	for _, kw := range strings.Fields(`abstract as base bool break byte case catch char checked class const
		continue decimal default delegate do double else enum event explicit extern false finally
		fixed float for foreach goto if implicit in int interface internal is lock long namespace
		new null object operator out override params private protected public readonly ref return
		sbyte sealed short sizeof stackalloc static string struct switch this throw true try typeof
		uint ulong unchecked unsafe ushort using virtual void volatile while`) {
		csharpKeywords[kw] = true
	}
}

// Identifier escapes s with "@" when it is a reserved C# keyword.
func Identifier(s string) string {
	if csharpKeywords[s] {
		return "@" + s
	}
	return s
}

// IsKeyword reports whether s is a reserved C# keyword.
func IsKeyword(s string) bool {
	return csharpKeywords[s]
}
