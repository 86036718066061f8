package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/labstack/echo/v4"
)

// Path prefixes owned by the backend. The frontend never answers them.
var backendPrefixes = []string{"api/", "admin/", "i18n/", "static/", "media/"}

var frontendContentTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
}

// FrontendHandler serves the statically exported single page app.
type FrontendHandler struct {
	Handler
	files fs.FS
	index string
}

func NewFrontendHandler(s *server.Server, files fs.FS, index string) *FrontendHandler {
	return &FrontendHandler{
		Handler: NewHandler(s),
		files:   files,
		index:   index,
	}
}

// Serve answers every path no other route claimed. "" serves the index,
// a path without an extension is looked up as <path>.html and a missing
// file falls back to the index so client-side routing can take over.
func (h *FrontendHandler) Serve(c echo.Context) error {
	requested := strings.TrimPrefix(c.Request().URL.Path, "/")
	for _, prefix := range backendPrefixes {
		if strings.HasPrefix(requested, prefix) {
			return echo.ErrNotFound
		}
	}

	name := strings.TrimPrefix(path.Clean("/"+requested), "/")
	if name == "" {
		name = h.index
	} else if path.Ext(name) == "" {
		name += ".html"
	}

	data, err := h.read(name)
	if err != nil && name != h.index {
		middleware.GetLogger(c).Debug().
			Str("file", name).
			Msg("frontend file not found, serving index")
		name = h.index
		data, err = h.read(name)
	}
	if err != nil {
		return c.String(http.StatusNotFound, "404 Not Found")
	}

	return c.Blob(http.StatusOK, contentTypeOf(name), data)
}

// read returns the contents of a regular file.
func (h *FrontendHandler) read(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, fs.ErrNotExist
	}

	info, err := fs.Stat(h.files, name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("is a directory")
	}
	return fs.ReadFile(h.files, name)
}

func contentTypeOf(name string) string {
	if contentType, ok := frontendContentTypes[strings.ToLower(path.Ext(name))]; ok {
		return contentType
	}
	return "application/octet-stream"
}
