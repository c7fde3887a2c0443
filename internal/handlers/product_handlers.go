package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crackershop/internal/models"
	"crackershop/internal/services"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
	}
}

// storeUpload writes the optional img file to the image store and returns its
// /uploads path, or nil when the form carries no file. It runs before field
// validation on purpose: the upload is persisted exactly when the framework's
// upload middleware would have persisted it, even if validation then fails.
func (h *ProductHandlers) storeUpload(c echo.Context) (*string, error) {
	file, err := c.FormFile("img")
	if err != nil {
		return nil, nil // no file attached
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	path, err := h.productService.SaveImage(c.Request().Context(), file.Filename, src, file.Size)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// parseProduct validates and converts the four required form fields.
func parseProduct(c echo.Context) (*models.Product, error) {
	name := c.FormValue("name")
	mktPrice := c.FormValue("Mkt_price")
	ourPrice := c.FormValue("our_price")
	categoryID := c.FormValue("categoryId")

	if name == "" || mktPrice == "" || ourPrice == "" || categoryID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	mkt, err := strconv.ParseFloat(mktPrice, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Mkt_price must be a number")
	}
	our, err := strconv.ParseFloat(ourPrice, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "our_price must be a number")
	}
	catID, err := strconv.ParseInt(categoryID, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "categoryId must be a number")
	}

	return &models.Product{
		Name:       name,
		MktPrice:   mkt,
		OurPrice:   our,
		CategoryID: catID,
	}, nil
}

// CreateProduct handles POST /api/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	imgPath, err := h.storeUpload(c)
	if err != nil {
		log.Printf("adding product: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error adding product")
	}

	product, err := parseProduct(c)
	if err != nil {
		return err
	}
	product.Img = imgPath

	productID, err := h.productService.Create(ctx, product)
	if err != nil {
		log.Printf("adding product: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error adding product")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Product added successfully",
		"productId": productID,
		"img":       imgPath,
	})
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	uploaded, err := h.storeUpload(c)
	if err != nil {
		log.Printf("updating product: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating product")
	}

	product, err := parseProduct(c)
	if err != nil {
		return err
	}
	product.ID = productID

	// A new upload replaces the image path; otherwise the client-echoed img
	// field is stored verbatim, without checking that the file exists.
	if uploaded != nil {
		product.Img = uploaded
	} else if img := c.FormValue("img"); img != "" {
		product.Img = &img
	}

	found, err := h.productService.Update(ctx, product)
	if err != nil {
		log.Printf("updating product: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating product")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product updated successfully",
		"img":     product.Img,
	})
}
