// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// TemplatesDir is the directory inside Templates() holding the pages.
const TemplatesDir = "templates"

func Templates() fs.FS {
	return files
}

// Static returns the assets served under /public.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
