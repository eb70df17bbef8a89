// Package templates loads and executes the embedded artifact templates.
//
// Overview:
//   - Responsibility: Parse every embedded .tmpl once and render them by name
//   - Key Types: Loader
//   - Concurrency Model: A Loader is immutable after NewLoader and safe for concurrent use
//   - Error Semantics: Parse and execution errors are wrapped with the template name
//   - Performance Notes: Templates are parsed once per process
//
// Usage:
//
//	loader := templates.Default()
//	content, err := loader.Render("models/model.cs.tmpl", data)
package templates

import (
	"embed"
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed all:templates
var templateFS embed.FS

const templateRoot = "templates"

// Loader holds the parsed artifact templates keyed by their path below the
// templates directory, e.g. "project/solution.sln.tmpl".
type Loader struct {
	templates map[string]*template.Template
}

var (
	defaultLoader    *Loader
	defaultLoaderErr error
	defaultOnce      sync.Once
)

// Default returns the process-wide Loader over the embedded templates.
// It panics if the embedded templates fail to parse, which only a broken
// build can cause.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader, defaultLoaderErr = NewLoader(templateFS, templateRoot)
	})
	if defaultLoaderErr != nil {
		panic(defaultLoaderErr)
	}
	return defaultLoader
}

// NewLoader parses every .tmpl file below root in fsys. Files whose base
// name starts with "_" are partials: they are not renderable on their own
// but their {{define}} blocks are available to every other template.
func NewLoader(fsys fs.FS, root string) (*Loader, error) {
	sources := make(map[string]string)
	var partials []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to load template %s: %w", p, err)
		}
		name := strings.TrimPrefix(p, root+"/")
		sources[name] = string(content)
		if strings.HasPrefix(path.Base(name), "_") {
			partials = append(partials, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(partials)

	l := &Loader{templates: make(map[string]*template.Template)}
	for name, src := range sources {
		if strings.HasPrefix(path.Base(name), "_") {
			continue
		}
		tmpl, err := template.New(path.Base(name)).Funcs(Funcs()).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		for _, partial := range partials {
			if _, err := tmpl.New(partial).Parse(sources[partial]); err != nil {
				return nil, fmt.Errorf("failed to parse partial %s: %w", partial, err)
			}
		}
		l.templates[name] = tmpl
	}
	return l, nil
}

// Render executes the template called name against data.
func (l *Loader) Render(name string, data any) (string, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out.String(), nil
}

// Names lists the loaded template names in sorted order.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Funcs returns the helper functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"lower":  strings.ToLower,
		"upper":  strings.ToUpper,
		"join":   strings.Join,
		"braced": func(s string) string { return "{" + s + "}" },
		"quote":  func(s string) string { return fmt.Sprintf("%q", s) },
		"xml":    escapeXML,
		"bs":     func(s string) string { return strings.ReplaceAll(s, "/", `\`) },
	}
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
