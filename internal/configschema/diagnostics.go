package configschema

import (
	"fmt"
	"strings"

	"go.eggybyte.com/netgen/internal/errors"
)

// Diagnostic is one problem found in a descriptor file.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// String formats the diagnostic on one line.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	if d.Path != "" {
		b.WriteString(d.Path)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Suggestion != "" {
		b.WriteString(" (")
		b.WriteString(d.Suggestion)
		b.WriteString(")")
	}
	return b.String()
}

// DiagnosticSeverity orders diagnostics; only errors block generation.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityInfo    DiagnosticSeverity = "info"
)

// Diagnostics collects the problems found while loading one descriptor.
// The zero value is ready to use.
type Diagnostics struct {
	items    []Diagnostic
	notFound bool
}

// NewDiagnostics returns an empty collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Add records a diagnostic. path uses descriptor field names, for example
// "entities[0].properties[1].type"; path and suggestion may be empty.
func (d *Diagnostics) Add(severity DiagnosticSeverity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{Severity: severity, Message: message, Path: path, Suggestion: suggestion})
}

func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

func (d *Diagnostics) AddInfo(message, path, suggestion string) {
	d.Add(SeverityInfo, message, path, suggestion)
}

func (d *Diagnostics) count(severity DiagnosticSeverity) int {
	n := 0
	for _, item := range d.items {
		if item.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether loading must stop.
func (d *Diagnostics) HasErrors() bool { return d.count(SeverityError) > 0 }

// HasWarnings reports whether any warning was recorded.
func (d *Diagnostics) HasWarnings() bool { return d.count(SeverityWarning) > 0 }

// Items returns a copy of the diagnostics in the order they were added.
func (d *Diagnostics) Items() []Diagnostic {
	return append([]Diagnostic(nil), d.items...)
}

// Err folds the error diagnostics into one coded error, or nil when there
// are none. A missing descriptor file yields NOT_FOUND, anything else
// INVALID_ARGUMENT.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}
	var msgs []string
	for _, item := range d.items {
		if item.Severity == SeverityError {
			msgs = append(msgs, item.String())
		}
	}
	code := errors.CodeInvalidArgument
	if d.notFound {
		code = errors.CodeNotFound
	}
	if len(msgs) == 1 {
		return errors.New(code, msgs[0])
	}
	return errors.New(code, fmt.Sprintf("%d problems: %s", len(msgs), strings.Join(msgs, "; ")))
}
