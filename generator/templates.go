package generator

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"pad": pad,
	"fieldType": func(s string) string {
		return pad(fieldTypeWidth, s)
	},
	"macroName": func(s string) string {
		return pad(macroNameWidth, s)
	},
}

// pad left-aligns s in a column of the given width.
// Values wider than the column are returned unchanged.
func pad(width int, s string) string {
	return fmt.Sprintf("%-*s", width, s)
}

// executeTemplate executes a template by name and returns the output bytes
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
