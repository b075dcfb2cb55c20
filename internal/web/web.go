// Package web holds the embedded HTML page of the calculator
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexTemplate is the name of the calculator page template
const IndexTemplate = "index.html"

// Option is one entry of a select field
type Option struct {
	Code     string
	Label    string
	Selected bool
}

// Page is the data rendered by the calculator page
type Page struct {
	Pages      int
	MaxPages   int
	Language   []Option
	Difficulty []Option
	Focus      []Option

	ShowResult bool
	Formatted  string
	Minutes    int
	Status     string
}

// StatusConfirmed is the line shown under every result
const StatusConfirmed = "STATUS: Reality distortion confirmed."

// Templates parses the embedded templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
