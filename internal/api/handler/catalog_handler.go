package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipay/ledger-api/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type addProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
}

type addProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// AddProduct inserts a catalog entry. Products are read-only afterwards.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalogService.AddProduct(c.Request().Context(), req.Name, req.Price, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, addProductResponse{ID: product.ID, Message: "Product added"})
}

// ListProducts returns the whole catalog. No auth required.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
