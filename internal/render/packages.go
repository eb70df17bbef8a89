package render

import (
	"go.eggybyte.com/netgen/internal/descriptor"
)

// Package is a NuGet package pinned in packages.config. Assemblies are the
// DLLs below lib/{Lib} that the project manifest references.
type Package struct {
	ID         string
	Version    string
	Lib        string
	Assemblies []string
}

// Reference is an assembly reference with a HintPath into the solution-level
// packages folder.
type Reference struct {
	Include  string
	HintPath string
}

// references expands packages into assembly references relative to a
// project two levels below the solution root.
func references(pkgs []Package) []Reference {
	var refs []Reference
	for _, p := range pkgs {
		for _, asm := range p.Assemblies {
			refs = append(refs, Reference{
				Include:  asm,
				HintPath: `..\..\packages\` + p.ID + "." + p.Version + `\lib\` + p.Lib + `\` + asm + ".dll",
			})
		}
	}
	return refs
}

var (
	pkgMvc           = Package{"Microsoft.AspNet.Mvc", "5.2.7", "net45", []string{"System.Web.Mvc"}}
	pkgRazor         = Package{"Microsoft.AspNet.Razor", "3.2.7", "net45", []string{"System.Web.Razor"}}
	pkgOptimization  = Package{"Microsoft.AspNet.Web.Optimization", "1.1.3", "net40", []string{"System.Web.Optimization"}}
	pkgWebAPI        = Package{"Microsoft.AspNet.WebApi", "5.2.7", "", nil}
	pkgWebAPIClient  = Package{"Microsoft.AspNet.WebApi.Client", "5.2.7", "net45", []string{"System.Net.Http.Formatting"}}
	pkgWebAPICore    = Package{"Microsoft.AspNet.WebApi.Core", "5.2.7", "net45", []string{"System.Web.Http"}}
	pkgWebAPIWebHost = Package{"Microsoft.AspNet.WebApi.WebHost", "5.2.7", "net45", []string{"System.Web.Http.WebHost"}}
	pkgWebPages      = Package{"Microsoft.AspNet.WebPages", "3.2.7", "net45", []string{"System.Web.Helpers", "System.Web.WebPages", "System.Web.WebPages.Deployment", "System.Web.WebPages.Razor"}}
	pkgInfra         = Package{"Microsoft.Web.Infrastructure", "1.0.0.0", "net40", []string{"Microsoft.Web.Infrastructure"}}
	pkgJSON          = Package{"Newtonsoft.Json", "12.0.2", "net45", []string{"Newtonsoft.Json"}}
	pkgWebGrease     = Package{"WebGrease", "1.5.2", "", nil}

	pkgEntityFramework = Package{"EntityFramework", "6.4.4", "net45", []string{"EntityFramework", "EntityFramework.SqlServer"}}

	pkgSwashbuckle     = Package{"Swashbuckle", "5.6.0", "", nil}
	pkgSwashbuckleCore = Package{"Swashbuckle.Core", "5.6.0", "net40", []string{"Swashbuckle.Core"}}
	pkgWebActivator    = Package{"WebActivatorEx", "2.2.0", "net40", []string{"WebActivatorEx"}}

	pkgCors       = Package{"Microsoft.AspNet.Cors", "5.2.7", "net45", []string{"System.Web.Cors"}}
	pkgWebAPICors = Package{"Microsoft.AspNet.WebApi.Cors", "5.2.7", "net45", []string{"System.Web.Http.Cors"}}

	pkgTestAdapter   = Package{"MSTest.TestAdapter", "2.1.2", "", nil}
	pkgTestFramework = Package{"MSTest.TestFramework", "2.1.2", "net45", []string{"Microsoft.VisualStudio.TestPlatform.TestFramework", "Microsoft.VisualStudio.TestPlatform.TestFramework.Extensions"}}
)

// Provider describes how Entity Framework talks to a database engine.
type Provider struct {
	Name          descriptor.DatabaseProvider
	DisplayName   string
	InvariantName string
	ServicesType  string
	DbFactory     string // registered under system.data when the engine ships its own ADO.NET provider
	LocalDB       bool
	Packages      []Package
}

var providers = map[descriptor.DatabaseProvider]Provider{
	descriptor.ProviderSQLServer: {
		Name:          descriptor.ProviderSQLServer,
		DisplayName:   "SQL Server",
		InvariantName: "System.Data.SqlClient",
		ServicesType:  "System.Data.Entity.SqlServer.SqlProviderServices, EntityFramework.SqlServer",
		LocalDB:       true,
	},
	descriptor.ProviderSQLite: {
		Name:          descriptor.ProviderSQLite,
		DisplayName:   "SQLite",
		InvariantName: "System.Data.SQLite.EF6",
		ServicesType:  "System.Data.SQLite.EF6.SQLiteProviderServices, System.Data.SQLite.EF6",
		DbFactory:     "System.Data.SQLite.EF6.SQLiteProviderFactory, System.Data.SQLite.EF6",
		Packages: []Package{
			{"System.Data.SQLite.Core", "1.0.118.0", "net46", []string{"System.Data.SQLite"}},
			{"System.Data.SQLite.EF6", "1.0.118.0", "net46", []string{"System.Data.SQLite.EF6"}},
		},
	},
	descriptor.ProviderMySQL: {
		Name:          descriptor.ProviderMySQL,
		DisplayName:   "MySQL",
		InvariantName: "MySql.Data.MySqlClient",
		ServicesType:  "MySql.Data.MySqlClient.MySqlProviderServices, MySql.Data.EntityFramework",
		DbFactory:     "MySql.Data.MySqlClient.MySqlClientFactory, MySql.Data",
		Packages: []Package{
			{"MySql.Data", "8.0.33", "net48", []string{"MySql.Data"}},
			{"MySql.Data.EntityFramework", "8.0.33", "net48", []string{"MySql.Data.EntityFramework"}},
		},
	},
	descriptor.ProviderPostgreSQL: {
		Name:          descriptor.ProviderPostgreSQL,
		DisplayName:   "PostgreSQL",
		InvariantName: "Npgsql",
		ServicesType:  "Npgsql.NpgsqlServices, EntityFramework6.Npgsql",
		DbFactory:     "Npgsql.NpgsqlFactory, Npgsql",
		Packages: []Package{
			{"Npgsql", "4.1.13", "net461", []string{"Npgsql"}},
			{"EntityFramework6.Npgsql", "6.4.3", "net461", []string{"EntityFramework6.Npgsql"}},
		},
	},
}

// ProviderFor returns the provider description, falling back to SQL Server.
func ProviderFor(name descriptor.DatabaseProvider) Provider {
	if p, ok := providers[name]; ok {
		return p
	}
	return providers[descriptor.ProviderSQLServer]
}

// MainPackages lists the packages of the main project for the given flags.
func MainPackages(f Flags, provider Provider) []Package {
	pkgs := []Package{
		pkgMvc, pkgRazor, pkgOptimization, pkgWebAPI, pkgWebAPIClient,
		pkgWebAPICore, pkgWebAPIWebHost, pkgWebPages, pkgInfra, pkgJSON, pkgWebGrease,
	}
	if f.Database {
		pkgs = append(pkgs, pkgEntityFramework)
		pkgs = append(pkgs, provider.Packages...)
	}
	if f.Swagger {
		pkgs = append(pkgs, pkgSwashbuckle, pkgSwashbuckleCore, pkgWebActivator)
	}
	if f.CORS {
		pkgs = append(pkgs, pkgCors, pkgWebAPICors)
	}
	return pkgs
}

// TestPackages lists the packages of the test project for the given flags.
func TestPackages(f Flags, provider Provider) []Package {
	pkgs := []Package{pkgTestAdapter, pkgTestFramework, pkgWebAPIClient, pkgWebAPICore, pkgJSON}
	if f.Database {
		pkgs = append(pkgs, pkgEntityFramework)
		pkgs = append(pkgs, provider.Packages...)
	}
	return pkgs
}

var mainFrameworkReferences = []string{
	"Microsoft.CSharp",
	"System",
	"System.Data",
	"System.Drawing",
	"System.Web.DynamicData",
	"System.Web.Entity",
	"System.Web.ApplicationServices",
	"System.ComponentModel.DataAnnotations",
	"System.Core",
	"System.Data.DataSetExtensions",
	"System.Xml.Linq",
	"System.Web",
	"System.Web.Extensions",
	"System.Web.Abstractions",
	"System.Web.Routing",
	"System.Xml",
	"System.Configuration",
	"System.Web.Services",
	"System.EnterpriseServices",
	"System.Net.Http",
	"System.Net.Http.WebRequest",
}

var testFrameworkReferences = []string{
	"System",
	"System.ComponentModel.DataAnnotations",
	"System.Core",
	"System.Data",
	"System.Net.Http",
	"System.Xml",
}
