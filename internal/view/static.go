package view

import (
	"embed"
	"io/fs"
)

//go:embed static/css/*.css static/js/*.js
var staticFiles embed.FS

// Static is the tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
