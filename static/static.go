// Package static embeds the API docs and the stylesheets used by the
// server-rendered pages, served at /static.
package static

import "embed"

//go:embed openapi.html openapi.json site.css admin.css
var FS embed.FS
