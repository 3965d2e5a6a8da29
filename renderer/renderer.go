// Package renderer turns budgetup values into markdown reports for the
// terminal. All functions are pure string builders; printing (and ANSI
// styling) is the caller's business.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders one embedded template file with data.
func renderTemplate(name, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
