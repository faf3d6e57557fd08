package popup

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static/*
var assetsFS embed.FS

// StaticFS returns an http.FileSystem for the popup stylesheet.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return http.FS(assetsFS)
	}
	return http.FS(sub)
}

// parseTemplates parses the embedded page templates.
func parseTemplates() (*template.Template, error) {
	return template.ParseFS(assetsFS, "templates/*.html")
}
