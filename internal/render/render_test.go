package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/errors"
	"go.eggybyte.com/netgen/internal/naming"
	"go.eggybyte.com/netgen/internal/testingx"
)

func shopProject(database bool) *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:            "Shop",
		Kind:            descriptor.KindWebAPI,
		IncludeDatabase: database,
		Provider:        descriptor.ProviderSQLServer,
		Features:        descriptor.Features{Swagger: true, Tests: true},
		Entities: []descriptor.EntityDescriptor{
			{Name: "User", Properties: []descriptor.PropertyDescriptor{
				{Name: "Id", Type: descriptor.TypeInt, PrimaryKey: true, Required: true},
				{Name: "Username", Type: descriptor.TypeString, Required: true, MaxLength: 50},
				{Name: "Email", Type: descriptor.TypeString, MaxLength: 100},
				{Name: "Age", Type: descriptor.TypeInt},
			}},
			{Name: "Product", Properties: []descriptor.PropertyDescriptor{
				{Name: "Code", Type: descriptor.TypeString, PrimaryKey: true, MaxLength: 20},
				{Name: "Price", Type: descriptor.TypeDecimal, Required: true},
				{Name: "OwnerId", Type: descriptor.TypeInt, ForeignEntity: "User"},
			}},
		},
	}
}

func newTestContext(t *testing.T, p *descriptor.ProjectDescriptor) *Context {
	t.Helper()
	c, err := NewContext(p, naming.NewSequenceIDs("render"), WithYear(2024))
	require.NoError(t, err)
	return c
}

// renderAll renders every artifact the context can produce.
func renderAll(t *testing.T, c *Context) map[string]string {
	t.Helper()
	out := make(map[string]string)
	add := func(arts ...Artifact) {
		for _, a := range arts {
			_, dup := out[a.Path]
			require.False(t, dup, "duplicate artifact %s", a.Path)
			out[a.Path] = a.Content
		}
	}
	one := func(a Artifact, err error) {
		require.NoError(t, err)
		add(a)
	}
	many := func(arts []Artifact, err error) {
		require.NoError(t, err)
		add(arts...)
	}

	one(Solution(c))
	one(MainProject(c))
	one(MainPackagesConfig(c))
	one(MainAssemblyInfo(c))
	many(Configuration(c))
	if c.Flags.Database {
		one(DataContext(c))
	}
	for _, e := range c.Names.Entities {
		one(Model(c, e))
		if c.Flags.Database {
			one(EntityConfiguration(c, e))
		}
		one(ServiceInterface(c, e))
		one(Service(c, e))
		one(Controller(c, e))
		if c.Flags.Tests {
			many(EntityTests(c, e))
		}
	}
	if c.Flags.Tests {
		many(TestProject(c))
	}
	one(Readme(c))
	one(GitIgnore(c))
	return out
}

func TestNewContextRejectsInvalidDescriptor(t *testing.T) {
	p := shopProject(false)
	p.Entities[0].Properties[0].PrimaryKey = false

	_, err := NewContext(p, nil)
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
}

func TestRenderedArtifactsAreComplete(t *testing.T) {
	for _, db := range []bool{false, true} {
		files := renderAll(t, newTestContext(t, shopProject(db)))
		for path, content := range files {
			assert.NotContains(t, content, "<no value>", path)
			assert.NotContains(t, content, "{{", path)
			assert.NotEmpty(t, strings.TrimSpace(content), path)
		}
	}
}

func TestModel(t *testing.T) {
	c := newTestContext(t, shopProject(false))
	user, _ := c.Names.Entity("User")

	art, err := Model(c, user)
	require.NoError(t, err)
	assert.Equal(t, "src/Shop/Models/User.cs", art.Path)
	assert.Contains(t, art.Content, "namespace Shop.Models")
	assert.Contains(t, art.Content, "[Key]\n        public int Id { get; set; }")
	assert.Contains(t, art.Content, "[Required]\n        [MaxLength(50)]\n        public string Username { get; set; }")
	assert.Contains(t, art.Content, "public int? Age { get; set; }")

	product, _ := c.Names.Entity("Product")
	art, err = Model(c, product)
	require.NoError(t, err)
	assert.Contains(t, art.Content, `[ForeignKey("User")]`)
	assert.Contains(t, art.Content, "public decimal Price { get; set; }")
}

func TestModelIsIndependentOfDatabase(t *testing.T) {
	without := renderAll(t, newTestContext(t, shopProject(false)))
	with := renderAll(t, newTestContext(t, shopProject(true)))

	for _, path := range []string{
		"src/Shop/Models/User.cs",
		"src/Shop/Services/IUserService.cs",
		"src/Shop/Controllers/UserController.cs",
	} {
		assert.Equal(t, without[path], with[path], path)
	}
	assert.NotEqual(t, without["src/Shop/Services/UserService.cs"], with["src/Shop/Services/UserService.cs"])

	for path := range without {
		_, ok := with[path]
		assert.True(t, ok, "enabling the database dropped %s", path)
	}
}

func TestController(t *testing.T) {
	c := newTestContext(t, shopProject(false))
	user, _ := c.Names.Entity("User")

	art, err := Controller(c, user)
	require.NoError(t, err)
	content := art.Content
	assert.Contains(t, content, `[RoutePrefix("api/user")]`)
	assert.Contains(t, content, `[Route("{id:int}")]`)
	assert.Contains(t, content, "public IHttpActionResult Get(int id)")
	assert.Contains(t, content, "private readonly IUserService _userService;")
	assert.Contains(t, content, `return Created($"api/user/{created.Id}", created);`)
	assert.NotContains(t, content, "EnableCors")
	assert.NotContains(t, content, "[Authorize]")

	product, _ := c.Names.Entity("Product")
	art, err = Controller(c, product)
	require.NoError(t, err)
	assert.Contains(t, art.Content, `[Route("{code}")]`)
	assert.Contains(t, art.Content, "public IHttpActionResult Delete(string code)")
}

func TestControllerFeatures(t *testing.T) {
	p := shopProject(false)
	p.Features.CORS = true
	p.Features.Authentication = true
	c := newTestContext(t, p)
	user, _ := c.Names.Entity("User")

	art, err := Controller(c, user)
	require.NoError(t, err)
	assert.Contains(t, art.Content, "using System.Web.Http.Cors;")
	assert.Contains(t, art.Content, `[EnableCors(origins: "*", headers: "*", methods: "*")]`)
	assert.Contains(t, art.Content, "[Authorize]")

	arts, err := Configuration(c)
	require.NoError(t, err)
	byPath := map[string]string{}
	for _, a := range arts {
		byPath[a.Path] = a.Content
	}
	assert.Contains(t, byPath["src/Shop/App_Start/WebApiConfig.cs"], "config.EnableCors();")
	assert.Contains(t, byPath["src/Shop/Web.config"], `<authentication mode="Windows" />`)
}

func TestService(t *testing.T) {
	mem := newTestContext(t, shopProject(false))
	user, _ := mem.Names.Entity("User")
	art, err := Service(mem, user)
	require.NoError(t, err)
	assert.Contains(t, art.Content, "private static readonly List<User> SharedStore")
	assert.Contains(t, art.Content, "user.Id = _store.Count == 0 ? 1 : _store.Max(x => x.Id) + 1;")
	assert.NotContains(t, art.Content, "ShopContext")

	db := newTestContext(t, shopProject(true))
	art, err = Service(db, user)
	require.NoError(t, err)
	assert.Contains(t, art.Content, "private readonly ShopContext _context;")
	assert.Contains(t, art.Content, "_context.Users.Find(id)")
}

func TestDataLayer(t *testing.T) {
	c := newTestContext(t, shopProject(true))

	art, err := DataContext(c)
	require.NoError(t, err)
	assert.Equal(t, "src/Shop/Data/ShopContext.cs", art.Path)
	assert.Contains(t, art.Content, `: base("name=DefaultConnection")`)
	assert.Contains(t, art.Content, "public DbSet<User> Users { get; set; }")
	assert.Contains(t, art.Content, "public DbSet<Product> Products { get; set; }")
	assert.Contains(t, art.Content, "modelBuilder.Configurations.Add(new ProductConfiguration());")

	product, _ := c.Names.Entity("Product")
	art, err = EntityConfiguration(c, product)
	require.NoError(t, err)
	assert.Contains(t, art.Content, `ToTable("Products");`)
	assert.Contains(t, art.Content, "HasKey(x => x.Code);")
	assert.Contains(t, art.Content, "Property(x => x.Code).HasMaxLength(20);")
	assert.Contains(t, art.Content, "Property(x => x.Price).HasPrecision(18, 2).IsRequired();")
	assert.NotContains(t, art.Content, "Username")
}

func TestSolutionAndManifests(t *testing.T) {
	c := newTestContext(t, shopProject(true))
	ids := c.Names.IDs

	sln, err := Solution(c)
	require.NoError(t, err)
	assert.Equal(t, "Shop.sln", sln.Path)
	assert.Contains(t, sln.Content, `"Shop", "src\Shop\Shop.csproj", "{`+ids.MainProject+`}"`)
	assert.Contains(t, sln.Content, `"Shop.Tests", "tests\Shop.Tests\Shop.Tests.csproj", "{`+ids.TestProject+`}"`)
	assert.Contains(t, sln.Content, "{"+ids.TestProject+"}.Release|Any CPU.Build.0")

	csproj, err := MainProject(c)
	require.NoError(t, err)
	assert.Contains(t, csproj.Content, "<ProjectGuid>{"+ids.MainProject+"}</ProjectGuid>")
	assert.Contains(t, csproj.Content, `<Compile Include="Data\ShopContext.cs" />`)
	assert.Contains(t, csproj.Content, `<Compile Include="Data\Configurations\UserConfiguration.cs" />`)
	assert.Contains(t, csproj.Content, `<Compile Include="Controllers\ProductController.cs" />`)
	assert.Contains(t, csproj.Content, `<Compile Include="App_Start\SwaggerConfig.cs" />`)
	assert.Contains(t, csproj.Content, `<HintPath>..\..\packages\EntityFramework.6.4.4\lib\net45\EntityFramework.dll</HintPath>`)

	tests, err := TestProject(c)
	require.NoError(t, err)
	require.Len(t, tests, 4)
	assert.Contains(t, tests[0].Content, `<ProjectReference Include="..\..\src\Shop\Shop.csproj">`)
	assert.Contains(t, tests[0].Content, "<Project>{"+ids.MainProject+"}</Project>")
	assert.Equal(t, "tests/Shop.Tests/App.config", tests[3].Path)
}

func TestSolutionWithoutTests(t *testing.T) {
	p := shopProject(false)
	p.Features.Tests = false
	c := newTestContext(t, p)

	sln, err := Solution(c)
	require.NoError(t, err)
	assert.NotContains(t, sln.Content, "Shop.Tests")
	assert.NotContains(t, sln.Content, c.Names.IDs.TestProject)
}

func TestConsoleKind(t *testing.T) {
	p := shopProject(false)
	p.Kind = descriptor.KindConsole
	c := newTestContext(t, p)

	csproj, err := MainProject(c)
	require.NoError(t, err)
	assert.Contains(t, csproj.Content, "<OutputType>Exe</OutputType>")
	assert.NotContains(t, csproj.Content, "<ProjectTypeGuids>{349c5851")
}

func TestPackagesFollowFlags(t *testing.T) {
	p := shopProject(true)
	p.Provider = descriptor.ProviderSQLite
	p.Features.Swagger = false
	p.Features.CORS = true
	c := newTestContext(t, p)

	art, err := MainPackagesConfig(c)
	require.NoError(t, err)
	assert.Contains(t, art.Content, `<package id="EntityFramework" version="6.4.4" targetFramework="net48" />`)
	assert.Contains(t, art.Content, `<package id="System.Data.SQLite.EF6" version="1.0.118.0"`)
	assert.Contains(t, art.Content, `<package id="Microsoft.AspNet.WebApi.Cors" version="5.2.7"`)
	assert.NotContains(t, art.Content, "Swashbuckle")

	arts, err := Configuration(c)
	require.NoError(t, err)
	for _, a := range arts {
		assert.NotEqual(t, "src/Shop/App_Start/SwaggerConfig.cs", a.Path)
		if a.Path == "src/Shop/Web.config" {
			assert.Contains(t, a.Content, `providerName="System.Data.SQLite.EF6"`)
			assert.Contains(t, a.Content, "<DbProviderFactories>")
			assert.NotContains(t, a.Content, "LocalDbConnectionFactory")
		}
	}
}

func TestWebConfigEscapesConnectionString(t *testing.T) {
	p := shopProject(true)
	p.ConnectionString = `Server=.;Database=Shop;Password=a<b&"c"`
	c := newTestContext(t, p)

	arts, err := Configuration(c)
	require.NoError(t, err)
	require.Equal(t, "src/Shop/Web.config", arts[0].Path)
	assert.Contains(t, arts[0].Content, `connectionString="Server=.;Database=Shop;Password=a&lt;b&amp;&#34;c&#34;"`)
}

func TestEntityTests(t *testing.T) {
	c := newTestContext(t, shopProject(false))
	product, _ := c.Names.Entity("Product")

	arts, err := EntityTests(c, product)
	require.NoError(t, err)
	require.Len(t, arts, 2)
	svc, ctrl := arts[0].Content, arts[1].Content

	assert.Equal(t, "tests/Shop.Tests/Services/ProductServiceTests.cs", arts[0].Path)
	assert.Contains(t, svc, "namespace Shop.Tests.Services")
	assert.Contains(t, svc, `Code = Guid.NewGuid().ToString("N").Substring(0, 20),`)
	assert.Contains(t, svc, "Price = 9.99m,")
	assert.Contains(t, svc, `_service.GetById("missing-key")`)
	assert.Contains(t, svc, "created.Price = 19.99m;")
	assert.Contains(t, svc, "_service = new ProductService(new List<Product>());")

	assert.Contains(t, ctrl, "public class FakeProductService : IProductService")
	assert.Contains(t, ctrl, `Assert.AreEqual($"api/product/{result.Content.Code}", result.Location.ToString());`)
}

func TestAssemblyInfo(t *testing.T) {
	c := newTestContext(t, shopProject(false))

	art, err := MainAssemblyInfo(c)
	require.NoError(t, err)
	assert.Equal(t, "src/Shop/Properties/AssemblyInfo.cs", art.Path)
	assert.Contains(t, art.Content, `[assembly: AssemblyTitle("Shop")]`)
	assert.Contains(t, art.Content, "Copyright ©  2024")
	assert.Contains(t, art.Content, `[assembly: Guid("`+c.Names.IDs.MainAssembly+`")]`)
}

func TestReadme(t *testing.T) {
	c := newTestContext(t, shopProject(true))

	art, err := Readme(c)
	require.NoError(t, err)
	assert.Contains(t, art.Content, "# Shop")
	assert.Contains(t, art.Content, "Entity Framework 6 (SQL Server)")
	assert.Contains(t, art.Content, "| GET | `/api/user/{id}` | Get a user by Id |")
	assert.Contains(t, art.Content, "| DELETE | `/api/product/{code}` | Delete a product |")
	assert.Contains(t, art.Content, "Swagger UI is available")
}

func TestRenderingIsDeterministic(t *testing.T) {
	a := renderAll(t, newTestContext(t, shopProject(true)))
	b := renderAll(t, newTestContext(t, shopProject(true)))
	assert.Equal(t, a, b)
}

func TestDottedProjectNameUsesLastSegmentForContext(t *testing.T) {
	p := shopProject(true)
	p.Name = "Contoso.Shop"
	c := newTestContext(t, p)

	art, err := DataContext(c)
	require.NoError(t, err)
	assert.Equal(t, "src/Contoso.Shop/Data/ShopContext.cs", art.Path)
	assert.Contains(t, art.Content, "namespace Contoso.Shop.Data")
	assert.Contains(t, art.Content, "public class ShopContext : DbContext")

	user, _ := c.Names.Entity("User")
	svc, err := Service(c, user)
	require.NoError(t, err)
	assert.Contains(t, svc.Content, "private readonly ShopContext _context;")

	manifest, err := MainProject(c)
	require.NoError(t, err)
	assert.Contains(t, manifest.Content, `<Compile Include="Data\ShopContext.cs" />`)
}

func TestSampleLiteralTruncatesByRune(t *testing.T) {
	p := descriptor.PropertyDescriptor{Name: "Größe", Type: descriptor.TypeString, MaxLength: 9}

	assert.Equal(t, `"SampleGrö"`, SampleLiteral(p, false))
	assert.Equal(t, `"UpdatedGr"`, SampleLiteral(p, true))

	p.MaxLength = 0
	assert.Equal(t, `"SampleGröße"`, SampleLiteral(p, false))
}
