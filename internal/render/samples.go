package render

import (
	"fmt"

	"go.eggybyte.com/netgen/internal/descriptor"
	"go.eggybyte.com/netgen/internal/naming"
)

// UpdateProp is the property the generated update test mutates.
type UpdateProp struct {
	Name      string
	AltSample string
}

var sampleLiterals = map[descriptor.PropertyType][2]string{
	descriptor.TypeInt:      {"1", "2"},
	descriptor.TypeLong:     {"1L", "2L"},
	descriptor.TypeDecimal:  {"9.99m", "19.99m"},
	descriptor.TypeDouble:   {"1.5", "2.5"},
	descriptor.TypeFloat:    {"1.5f", "2.5f"},
	descriptor.TypeBool:     {"true", "false"},
	descriptor.TypeDateTime: {"new DateTime(2024, 1, 1)", "new DateTime(2024, 6, 1)"},
	descriptor.TypeBytes:    {"new byte[] { 1, 2, 3 }", "new byte[] { 4, 5, 6 }"},
}

var missingKeys = map[descriptor.PropertyType]string{
	descriptor.TypeString:   `"missing-key"`,
	descriptor.TypeInt:      "-1",
	descriptor.TypeLong:     "-1L",
	descriptor.TypeDecimal:  "-1m",
	descriptor.TypeDouble:   "-1d",
	descriptor.TypeFloat:    "-1f",
	descriptor.TypeBool:     "false",
	descriptor.TypeDateTime: "DateTime.MinValue",
	descriptor.TypeBytes:    "new byte[0]",
}

// SampleLiteral returns a C# literal valid for p. The alternate literal
// always differs from the primary one, including after truncation to the
// property's maximum length.
func SampleLiteral(p descriptor.PropertyDescriptor, alt bool) string {
	if p.Type == descriptor.TypeString {
		s := "Sample" + p.Name
		if alt {
			s = "Updated" + p.Name
		}
		if r := []rune(s); p.HasMaxLength() && len(r) > p.MaxLength {
			s = string(r[:p.MaxLength])
		}
		return fmt.Sprintf("%q", s)
	}
	lits, ok := sampleLiterals[p.Type]
	if !ok {
		return "default"
	}
	if alt {
		return lits[1]
	}
	return lits[0]
}

// MissingKey returns a key literal no sample record ever uses.
func MissingKey(k naming.Key) string {
	if lit, ok := missingKeys[k.Type]; ok {
		return lit
	}
	return "default"
}

// storeGeneratedKey reports whether the in-memory store assigns the key
// itself (and EF treats it as an identity column).
func storeGeneratedKey(t descriptor.PropertyType) bool {
	return t == descriptor.TypeInt || t == descriptor.TypeLong
}

func sampleInit(e descriptor.EntityDescriptor) []string {
	var lines []string
	for _, p := range e.Properties {
		switch {
		case p.PrimaryKey && storeGeneratedKey(p.Type):
			continue
		case p.PrimaryKey && p.Type == descriptor.TypeString:
			lines = append(lines, p.Name+" = "+newGUIDExpr(p.MaxLength))
		default:
			lines = append(lines, p.Name+" = "+SampleLiteral(p, false))
		}
	}
	return lines
}

func newGUIDExpr(maxLength int) string {
	if maxLength > 0 && maxLength < 32 {
		return fmt.Sprintf(`Guid.NewGuid().ToString("N").Substring(0, %d)`, maxLength)
	}
	return `Guid.NewGuid().ToString("N")`
}

func keyAssignment(names naming.Entity, pk descriptor.PropertyDescriptor) []string {
	target := names.Var + "." + names.Key.Property
	switch {
	case storeGeneratedKey(pk.Type):
		return []string{
			"if (" + target + " == 0)",
			"{",
			"    " + target + " = _store.Count == 0 ? 1 : _store.Max(x => x." + names.Key.Property + ") + 1;",
			"}",
		}
	case pk.Type == descriptor.TypeString:
		return []string{
			"if (string.IsNullOrEmpty(" + target + "))",
			"{",
			"    " + target + " = " + newGUIDExpr(pk.MaxLength) + ";",
			"}",
		}
	}
	return nil
}

func updateProp(e descriptor.EntityDescriptor) *UpdateProp {
	for _, p := range e.Properties {
		if p.PrimaryKey || p.ForeignEntity != "" || p.Type == descriptor.TypeBytes {
			continue
		}
		return &UpdateProp{Name: p.Name, AltSample: SampleLiteral(p, true)}
	}
	return nil
}
