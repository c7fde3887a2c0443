package handlers

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"crackershop/internal/storage"
)

// UploadsHandlers serves stored images read-only under /uploads when the
// image store is not a local directory the router can serve statically.
type UploadsHandlers struct {
	store storage.ImageStore
}

// NewUploadsHandlers creates a new uploads handlers instance
func NewUploadsHandlers(store storage.ImageStore) *UploadsHandlers {
	return &UploadsHandlers{store: store}
}

// ServeImage handles GET /uploads/:filename
func (h *UploadsHandlers) ServeImage(c echo.Context) error {
	name := c.Param("filename")

	reader, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.Stream(http.StatusOK, contentType, reader)
}
