package configschema

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/naming"
)

var (
	identPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// ValidatorOption configures the descriptor validator.
type ValidatorOption func(*validator.Validate)

// NewValidator creates a validator that knows the descriptor tags and
// reports fields by their YAML names.
func NewValidator(opts ...ValidatorOption) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("csident", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return identPattern.MatchString(s) && !naming.IsKeyword(s)
	})
	_ = v.RegisterValidation("csnamespace", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !namespacePattern.MatchString(s) {
			return false
		}
		for _, part := range strings.Split(s, ".") {
			if naming.IsKeyword(part) {
				return false
			}
		}
		return true
	})
	_ = v.RegisterValidation("proptype", func(fl validator.FieldLevel) bool {
		_, ok := descriptor.ParsePropertyType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("projectkind", func(fl validator.FieldLevel) bool {
		_, ok := descriptor.ParseProjectKind(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("dbprovider", func(fl validator.FieldLevel) bool {
		_, ok := descriptor.ParseProvider(fl.Field().String())
		return ok
	})
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate checks f after defaults were applied and records every problem in
// diags. Field rules run first; cross-field checks run only on a
// structurally valid file.
func Validate(f *File, diags *Diagnostics) {
	if err := defaultValidator.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			diags.AddError(fmt.Sprintf("validation failed: %v", err), "", "")
			return
		}
		for _, fe := range verrs {
			msg, hint := describe(fe)
			diags.AddError(msg, fieldPath(fe), hint)
		}
		return
	}
	validateEntities(f, diags)
}

// fieldPath strips the root struct name: "File.entities[0].name" -> "entities[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field()), ""
	case "min":
		return fmt.Sprintf("%s needs at least %s item(s)", fe.Field(), fe.Param()), ""
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field()), "Use 0 for unbounded"
	case "csident":
		return fmt.Sprintf("%q is not a valid C# identifier", fe.Value()), "Use letters, digits and underscores, not starting with a digit or a keyword"
	case "csnamespace":
		return fmt.Sprintf("%q is not a valid C# namespace", fe.Value()), "Use dot-separated identifiers such as Contoso.Shop"
	case "proptype":
		return fmt.Sprintf("Unknown property type %q", fe.Value()), "Valid types: " + joinTypes()
	case "projectkind":
		return fmt.Sprintf("Unknown project type %q", fe.Value()), "Valid types: webapi, mvc, console"
	case "dbprovider":
		return fmt.Sprintf("Unknown database provider %q", fe.Value()), "Valid providers: sqlserver, sqlite, mysql, postgresql"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()), ""
}

func joinTypes() string {
	var names []string
	for _, t := range descriptor.PropertyTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func validateEntities(f *File, diags *Diagnostics) {
	if len(f.Entities) == 0 {
		diags.AddWarning("Project has no entities", "entities", "Only the host skeleton will be generated")
	}
	entities := make(map[string]bool, len(f.Entities))
	for _, e := range f.Entities {
		entities[e.Name] = true
	}

	seen := make(map[string]bool, len(f.Entities))
	for i, e := range f.Entities {
		path := fmt.Sprintf("entities[%d]", i)
		if seen[e.Name] {
			diags.AddError(fmt.Sprintf("Duplicate entity %q", e.Name), path+".name", "Entity names must be unique")
		}
		seen[e.Name] = true

		props := make(map[string]bool, len(e.Properties))
		keys := 0
		for j, p := range e.Properties {
			ppath := fmt.Sprintf("%s.properties[%d]", path, j)
			if props[p.Name] {
				diags.AddError(fmt.Sprintf("Duplicate property %q in %s", p.Name, e.Name), ppath+".name", "")
			}
			props[p.Name] = true
			if p.Name == e.Name {
				diags.AddError(fmt.Sprintf("Property %q has the same name as its entity", p.Name), ppath+".name", "C# members cannot share the enclosing type name")
			}
			if p.Key {
				keys++
			}

			t, _ := descriptor.ParsePropertyType(p.Type)
			if p.MaxLength > 0 && t != descriptor.TypeString {
				diags.AddWarning(fmt.Sprintf("max_length is ignored for %s property %q", t, p.Name), ppath+".max_length", "Remove max_length")
			}
			if p.Key && (t == descriptor.TypeBytes || t == descriptor.TypeBool) {
				diags.AddError(fmt.Sprintf("%s property %q cannot be a key", t, p.Name), ppath+".key", "Use an int, long or string key")
			}
			if p.ForeignEntity != "" && !entities[p.ForeignEntity] {
				diags.AddError(fmt.Sprintf("Foreign entity %q is not defined", p.ForeignEntity), ppath+".foreign_entity", "Declare the entity or remove the reference")
			}
		}

		switch keys {
		case 0:
			diags.AddError(fmt.Sprintf("Entity %q has no key property", e.Name), path+".properties", "Mark exactly one property with key: true")
		case 1:
		default:
			diags.AddError(fmt.Sprintf("Entity %q has %d key properties", e.Name, keys), path+".properties", "Composite keys are not supported")
		}
	}
}
