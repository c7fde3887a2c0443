package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"crackershop/internal/services"
)

// CatalogHandlers handles HTTP requests for the category listing
type CatalogHandlers struct {
	catalogService services.CatalogService
}

// NewCatalogHandlers creates a new catalog handlers instance
func NewCatalogHandlers(catalogService services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
	}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandlers) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.CategoriesWithProducts(ctx)
	if err != nil {
		log.Printf("fetching categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching categories")
	}

	return c.JSON(http.StatusOK, categories)
}
