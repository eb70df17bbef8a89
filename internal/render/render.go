// Package render turns a validated project descriptor into artifact contents.
//
// Overview:
//   - Responsibility: Build template views from the name table and execute the templates
//   - Key Types: Context, Artifact, Flags
//   - Concurrency Model: A Context is read-only after NewContext; renderers may run concurrently
//   - Error Semantics: Template failures are wrapped as INTERNAL with the renderer name
//   - Performance Notes: Views are built once per Context
//
// Every renderer is a pure function of its Context: it reads names from the
// shared naming.Table and never derives an identifier on its own, so the
// artifacts agree with each other by construction.
//
// Usage:
//
//	ctx, err := render.NewContext(project, naming.RandomIDs{})
//	art, err := render.Model(ctx, ctx.Names.Entities[0])
package render

import (
	"path"
	"strconv"
	"strings"
	"time"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/naming"
	"go.eggybyte.com/netgen/internal/templates"
)

const (
	csharpProjectType  = "FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"
	webProjectType     = "349c5851-65df-11da-9384-00065b846f21"
	testProjectType    = "3AC096D0-A1C2-E12C-1390-A8335801FDAB"
	webProjectTypeList = "{" + webProjectType + "};{fae04ec0-301f-11d3-bf4b-00c04f79efbc}"
)

// Artifact is one rendered output file. Path is slash-separated and
// relative to the project root.
type Artifact struct {
	Path    string
	Content string
}

// Flags are the effective feature switches of a run.
type Flags struct {
	Database       bool
	Swagger        bool
	CORS           bool
	Authentication bool
	Tests          bool
}

// FlagsOf reads the flags from a descriptor.
func FlagsOf(p *descriptor.ProjectDescriptor) Flags {
	return Flags{
		Database:       p.IncludeDatabase,
		Swagger:        p.Features.Swagger,
		CORS:           p.Features.CORS,
		Authentication: p.Features.Authentication,
		Tests:          p.Features.Tests,
	}
}

// Context is everything a renderer may read.
type Context struct {
	Project  *descriptor.ProjectDescriptor
	Names    *naming.Table
	Flags    Flags
	Provider Provider
	Year     int

	loader   *templates.Loader
	project  *projectView
	entities []*entityView
}

// Option configures a Context.
type Option func(*Context)

// WithYear pins the copyright year written into assembly metadata.
func WithYear(year int) Option {
	return func(c *Context) { c.Year = year }
}

// WithLoader replaces the embedded templates.
func WithLoader(l *templates.Loader) Option {
	return func(c *Context) { c.loader = l }
}

// NewContext derives the name table for p and prepares every view.
func NewContext(p *descriptor.ProjectDescriptor, ids naming.IDSource, opts ...Option) (*Context, error) {
	names, err := naming.NewTable(p, ids)
	if err != nil {
		return nil, err
	}
	c := &Context{
		Project:  p,
		Names:    names,
		Flags:    FlagsOf(p),
		Provider: ProviderFor(p.Provider),
		Year:     time.Now().Year(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.loader == nil {
		c.loader = templates.Default()
	}

	c.project = newProjectView(c)
	for i, e := range p.Entities {
		v, err := newEntityView(c, e, names.Entities[i])
		if err != nil {
			return nil, err
		}
		c.entities = append(c.entities, v)
	}
	c.project.Entities = c.entities
	return c, nil
}

func (c *Context) render(op, tmpl, out string, data any) (Artifact, error) {
	content, err := c.loader.Render(tmpl, data)
	if err != nil {
		return Artifact{}, errors.Wrap(errors.CodeInternal, "render."+op, err)
	}
	return Artifact{Path: out, Content: content}, nil
}

func (c *Context) entityView(e naming.Entity) (*entityView, error) {
	for _, v := range c.entities {
		if v.Name == e.Name {
			return v, nil
		}
	}
	return nil, errors.New(errors.CodeInvalidArgument, "unknown entity "+e.Name)
}

// projectView is the data passed to project-level templates.
type projectView struct {
	P                naming.Project
	IDs              naming.BuildIDs
	Flags            Flags
	Provider         Provider
	ConnectionString string
	KindDescription  string
	Entities         []*entityView

	CSharpProjectType string
	WebProjectType    string
	ProjectTypeGuids  string
	OutputType        string
	SolutionProjects  []string

	FrameworkReferences []string
	References          []Reference
	Compiles            []string

	TestProjectTypeGuids    string
	TestFrameworkReferences []string
	TestReferences          []Reference
	TestCompiles            []string
}

var kindDescriptions = map[descriptor.ProjectKind]string{
	descriptor.KindWebAPI:  "An ASP.NET Web API project",
	descriptor.KindMVC:     "An ASP.NET MVC project with Web API endpoints",
	descriptor.KindConsole: "A console-hosted project with Web API components",
}

func newProjectView(c *Context) *projectView {
	names := c.Names
	v := &projectView{
		P:                names.Project,
		IDs:              names.IDs,
		Flags:            c.Flags,
		Provider:         c.Provider,
		ConnectionString: c.Project.EffectiveConnectionString(),
		KindDescription:  kindDescriptions[c.Project.Kind],

		CSharpProjectType: csharpProjectType,
		WebProjectType:    webProjectType,
		ProjectTypeGuids:  webProjectTypeList,
		OutputType:        "Library",
		SolutionProjects:  []string{names.IDs.MainProject},

		FrameworkReferences: mainFrameworkReferences,
		References:          references(MainPackages(c.Flags, c.Provider)),

		TestProjectTypeGuids:    "{" + testProjectType + "};{" + csharpProjectType + "}",
		TestFrameworkReferences: testFrameworkReferences,
		TestReferences:          references(TestPackages(c.Flags, c.Provider)),
	}
	if v.KindDescription == "" {
		v.KindDescription = kindDescriptions[descriptor.KindWebAPI]
	}
	if c.Project.Kind == descriptor.KindConsole {
		v.ProjectTypeGuids = "{" + csharpProjectType + "}"
		v.OutputType = "Exe"
	}
	if c.Flags.Tests {
		v.SolutionProjects = append(v.SolutionProjects, names.IDs.TestProject)
	}

	p := names.Project
	v.Compiles = []string{
		`App_Start\FilterConfig.cs`,
		`App_Start\RouteConfig.cs`,
	}
	if c.Flags.Swagger {
		v.Compiles = append(v.Compiles, `App_Start\SwaggerConfig.cs`)
	}
	v.Compiles = append(v.Compiles, `App_Start\WebApiConfig.cs`)
	if c.Flags.Database {
		v.Compiles = append(v.Compiles, manifestPath(p.MainDir, p.ContextFile))
	}
	for _, e := range names.Entities {
		v.Compiles = append(v.Compiles, manifestPath(p.MainDir, e.ModelFile))
		if c.Flags.Database {
			v.Compiles = append(v.Compiles, manifestPath(p.MainDir, e.ConfigurationFile))
		}
		v.Compiles = append(v.Compiles,
			manifestPath(p.MainDir, e.ServiceInterfaceFile),
			manifestPath(p.MainDir, e.ServiceFile),
			manifestPath(p.MainDir, e.ControllerFile),
		)
		v.TestCompiles = append(v.TestCompiles,
			manifestPath(p.TestDir, e.ControllerTestFile),
			manifestPath(p.TestDir, e.ServiceTestFile),
		)
	}
	v.Compiles = append(v.Compiles, `Properties\AssemblyInfo.cs`)
	v.TestCompiles = append(v.TestCompiles, `Properties\AssemblyInfo.cs`)
	return v
}

// manifestPath converts a project-root path into the backslash path a
// manifest below dir uses.
func manifestPath(dir, file string) string {
	return strings.ReplaceAll(strings.TrimPrefix(file, dir+"/"), "/", `\`)
}

// propView is one model property.
type propView struct {
	Name       string
	CSharpType string
	Attributes []string
}

// entityView is the data passed to entity-level templates.
type entityView struct {
	naming.Entity

	P        naming.Project
	Flags    Flags
	Provider Provider
	Props    []propView

	Constraints   []string
	KeyAssignment []string

	CreatedLocation  string
	ExpectedLocation string

	SampleInit []string
	MissingKey string
	UpdateProp *UpdateProp
}

func newEntityView(c *Context, e descriptor.EntityDescriptor, names naming.Entity) (*entityView, error) {
	pk, err := e.PrimaryKey()
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, "render.NewContext", err)
	}
	v := &entityView{
		Entity:   names,
		P:        c.Names.Project,
		Flags:    c.Flags,
		Provider: c.Provider,

		KeyAssignment: keyAssignment(names, pk),

		CreatedLocation:  location(names, "created"),
		ExpectedLocation: location(names, "result.Content"),

		SampleInit: sampleInit(e),
		MissingKey: MissingKey(names.Key),
		UpdateProp: updateProp(e),
	}
	for _, p := range e.Properties {
		v.Props = append(v.Props, propView{
			Name:       p.Name,
			CSharpType: naming.CSharpType(p),
			Attributes: attributes(p),
		})
		if line := constraint(p); line != "" {
			v.Constraints = append(v.Constraints, line)
		}
	}
	return v, nil
}

// location is the interpolated C# string for a created record's URI.
func location(e naming.Entity, receiver string) string {
	return `$"` + e.RoutePrefix + "/{" + receiver + "." + e.Key.Property + `}"`
}

func attributes(p descriptor.PropertyDescriptor) []string {
	var attrs []string
	if p.PrimaryKey {
		attrs = append(attrs, "Key")
	}
	if p.Required && !p.PrimaryKey {
		attrs = append(attrs, "Required")
	}
	if p.HasMaxLength() {
		attrs = append(attrs, "MaxLength("+strconv.Itoa(p.MaxLength)+")")
	}
	if p.ForeignEntity != "" {
		attrs = append(attrs, `ForeignKey("`+p.ForeignEntity+`")`)
	}
	return attrs
}

func constraint(p descriptor.PropertyDescriptor) string {
	var b strings.Builder
	if p.HasMaxLength() {
		b.WriteString(".HasMaxLength(" + strconv.Itoa(p.MaxLength) + ")")
	}
	if p.Type == descriptor.TypeDecimal {
		b.WriteString(".HasPrecision(18, 2)")
	}
	if p.Required && !p.PrimaryKey {
		b.WriteString(".IsRequired()")
	}
	if b.Len() == 0 {
		return ""
	}
	return "Property(x => x." + p.Name + ")" + b.String()
}

type assemblyInfoView struct {
	Title string
	Year  int
	GUID  string
}

// Solution renders the solution file.
func Solution(c *Context) (Artifact, error) {
	return c.render("Solution", "project/solution.sln.tmpl", c.Names.Project.SolutionFile, c.project)
}

// MainProject renders the main project manifest.
func MainProject(c *Context) (Artifact, error) {
	return c.render("MainProject", "project/main.csproj.tmpl", c.Names.Project.ProjectFile, c.project)
}

// MainPackagesConfig renders the main project's package list.
func MainPackagesConfig(c *Context) (Artifact, error) {
	return c.render("MainPackagesConfig", "project/packages.config.tmpl", c.Names.Project.PackagesFile, MainPackages(c.Flags, c.Provider))
}

// MainAssemblyInfo renders the main project's assembly metadata.
func MainAssemblyInfo(c *Context) (Artifact, error) {
	p := c.Names.Project
	data := assemblyInfoView{Title: p.Name, Year: c.Year, GUID: c.Names.IDs.MainAssembly}
	return c.render("MainAssemblyInfo", "project/AssemblyInfo.cs.tmpl", p.Main("Properties/AssemblyInfo.cs"), data)
}

// Configuration renders the web host configuration files: Web.config and
// its transforms, Global.asax and the App_Start classes. SwaggerConfig is
// rendered only when Swagger is enabled.
func Configuration(c *Context) ([]Artifact, error) {
	p := c.Names.Project
	files := []struct{ tmpl, out string }{
		{"config/Web.config.tmpl", "Web.config"},
		{"config/Web.Debug.config.tmpl", "Web.Debug.config"},
		{"config/Web.Release.config.tmpl", "Web.Release.config"},
		{"config/Global.asax.tmpl", "Global.asax"},
		{"config/Global.asax.cs.tmpl", "Global.asax.cs"},
		{"config/WebApiConfig.cs.tmpl", "App_Start/WebApiConfig.cs"},
		{"config/RouteConfig.cs.tmpl", "App_Start/RouteConfig.cs"},
		{"config/FilterConfig.cs.tmpl", "App_Start/FilterConfig.cs"},
	}
	if c.Flags.Swagger {
		files = append(files, struct{ tmpl, out string }{"config/SwaggerConfig.cs.tmpl", "App_Start/SwaggerConfig.cs"})
	}
	arts := make([]Artifact, 0, len(files))
	for _, f := range files {
		art, err := c.render("Configuration", f.tmpl, p.Main(f.out), c.project)
		if err != nil {
			return nil, err
		}
		arts = append(arts, art)
	}
	return arts, nil
}

// Model renders the model class of e.
func Model(c *Context, e naming.Entity) (Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return Artifact{}, err
	}
	return c.render("Model", "models/model.cs.tmpl", e.ModelFile, v)
}

// DataContext renders the EF context listing every entity.
func DataContext(c *Context) (Artifact, error) {
	return c.render("DataContext", "data/context.cs.tmpl", c.Names.Project.ContextFile, c.project)
}

// EntityConfiguration renders the EF mapping of e.
func EntityConfiguration(c *Context, e naming.Entity) (Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return Artifact{}, err
	}
	return c.render("EntityConfiguration", "data/configuration.cs.tmpl", e.ConfigurationFile, v)
}

// ServiceInterface renders the service contract of e.
func ServiceInterface(c *Context, e naming.Entity) (Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return Artifact{}, err
	}
	return c.render("ServiceInterface", "services/interface.cs.tmpl", e.ServiceInterfaceFile, v)
}

// Service renders the service implementation of e, backed by the EF
// context when the project has a database and by an in-memory list otherwise.
func Service(c *Context, e naming.Entity) (Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return Artifact{}, err
	}
	tmpl := "services/service_memory.cs.tmpl"
	if c.Flags.Database {
		tmpl = "services/service_ef.cs.tmpl"
	}
	return c.render("Service", tmpl, e.ServiceFile, v)
}

// Controller renders the REST controller of e.
func Controller(c *Context, e naming.Entity) (Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return Artifact{}, err
	}
	return c.render("Controller", "controllers/controller.cs.tmpl", e.ControllerFile, v)
}

// TestProject renders the test project manifest, package list, assembly
// metadata and, with a database, its App.config.
func TestProject(c *Context) ([]Artifact, error) {
	p := c.Names.Project
	var arts []Artifact
	art, err := c.render("TestProject", "project/tests.csproj.tmpl", p.TestProjectFile, c.project)
	if err != nil {
		return nil, err
	}
	arts = append(arts, art)

	if art, err = c.render("TestProject", "project/packages.config.tmpl", p.TestPackagesFile, TestPackages(c.Flags, c.Provider)); err != nil {
		return nil, err
	}
	arts = append(arts, art)

	info := assemblyInfoView{Title: p.TestName, Year: c.Year, GUID: c.Names.IDs.TestAssembly}
	if art, err = c.render("TestProject", "project/AssemblyInfo.cs.tmpl", p.Test("Properties/AssemblyInfo.cs"), info); err != nil {
		return nil, err
	}
	arts = append(arts, art)

	if c.Flags.Database {
		if art, err = c.render("TestProject", "tests/App.config.tmpl", p.Test("App.config"), c.project); err != nil {
			return nil, err
		}
		arts = append(arts, art)
	}
	return arts, nil
}

// EntityTests renders the service and controller test classes of e.
func EntityTests(c *Context, e naming.Entity) ([]Artifact, error) {
	v, err := c.entityView(e)
	if err != nil {
		return nil, err
	}
	svc, err := c.render("EntityTests", "tests/service_tests.cs.tmpl", e.ServiceTestFile, v)
	if err != nil {
		return nil, err
	}
	ctrl, err := c.render("EntityTests", "tests/controller_tests.cs.tmpl", e.ControllerTestFile, v)
	if err != nil {
		return nil, err
	}
	return []Artifact{svc, ctrl}, nil
}

// Readme renders README.md.
func Readme(c *Context) (Artifact, error) {
	return c.render("Readme", "docs/README.md.tmpl", "README.md", c.project)
}

// GitIgnore renders .gitignore.
func GitIgnore(c *Context) (Artifact, error) {
	return c.render("GitIgnore", "docs/gitignore.tmpl", ".gitignore", c.project)
}

// Dir returns the directory an artifact is written into.
func (a Artifact) Dir() string {
	return path.Dir(a.Path)
}
