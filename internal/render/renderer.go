// Package render turns extracted themes into the files a Tailwind/daisyUI
// project consumes, using text/template in strict mode.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// Sentinel errors for rendering.
var (
	// ErrTemplateNotFound indicates the named template is missing from the filesystem.
	ErrTemplateNotFound = errors.New("render: template not found")

	// ErrMissingTemplateKey indicates the template referenced data that was not supplied.
	ErrMissingTemplateKey = errors.New("render: missing template key")

	// ErrUnexpandedToken indicates template syntax left over in the output.
	ErrUnexpandedToken = errors.New("render: unexpanded token in output")

	// ErrUnknownFormat indicates an output format without a template.
	ErrUnknownFormat = errors.New("render: unknown output format")
)

// jsIdentPattern matches keys that can stay unquoted in a JS object literal.
var jsIdentPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsString quotes s as a single-quoted JavaScript string literal.
	"jsString": jsString,
	// jsKey leaves identifier keys bare and quotes everything else.
	"jsKey": func(s string) string {
		if jsIdentPattern.MatchString(s) {
			return s
		}
		return jsString(s)
	},
}

func jsString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

// unexpandedTokenPattern detects leftover template actions in rendered output.
// Single braces are legal in both CSS and glob patterns, so only {{...}} counts.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
