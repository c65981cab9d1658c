package site

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed static/**
var staticFS embed.FS

//go:embed templates/index.html.tmpl
var indexTemplate string

var page = template.Must(template.New("index").Parse(indexTemplate))

// FS returns an http.FileSystem for the embedded stylesheet and assets.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
