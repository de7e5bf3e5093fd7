package render

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/modu-ai/themeport/internal/theme"
)

// Output formats with a built-in template.
const (
	FormatCSS      = "css"
	FormatTailwind = "tailwind"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// formatTemplates maps each output format to its template file.
var formatTemplates = map[string]string{
	FormatCSS:      "variables.css.tmpl",
	FormatTailwind: "tailwind.config.js.tmpl",
}

// Document is the data every built-in template receives.
type Document struct {
	Version string
	Themes  []theme.Theme
	Plugins []string
	// Content lists the Tailwind content globs.
	Content []string
}

// Builtin returns a Renderer over the embedded templates.
func Builtin() Renderer {
	sub, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return NewRenderer(sub)
}

// Formats returns the formats RenderDocument accepts.
func Formats() []string {
	return []string{FormatCSS, FormatTailwind}
}

// TemplateFor returns the template file that renders format.
func TemplateFor(format string) (string, error) {
	name, ok := formatTemplates[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return name, nil
}

// RenderDocument renders doc in the given format.
func RenderDocument(r Renderer, format string, doc Document) ([]byte, error) {
	name, err := TemplateFor(format)
	if err != nil {
		return nil, err
	}
	if doc.Content == nil {
		doc.Content = []string{}
	}
	return r.Render(name, doc)
}
