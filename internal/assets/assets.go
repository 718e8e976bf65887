// Package assets embeds the dashboard stylesheet into the binary.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the embedded files rooted at static/
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static/ is embedded at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
