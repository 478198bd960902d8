package api

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tmplCancelSuccess  = "cancel_success.html"
	tmplCancelNotFound = "cancel_not_found.html"
	tmplCancelError    = "cancel_error.html"
)

// Templates returns the HTML pages rendered by the handlers, for engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
