package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
)

type CatalogHandler struct {
	api client.StorefrontClient
}

func NewCatalogHandler(api client.StorefrontClient) *CatalogHandler {
	return &CatalogHandler{api: api}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.api.GetProducts(c.Request().Context(), page, limit, c.QueryParam("keyword"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result, "")
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, svcErr := h.api.GetProduct(c.Request().Context(), productID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return respond(c, http.StatusOK, product, "")
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.api.CreateProduct(c.Request().Context(), &product); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Product created")
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var product model.Product
	if err := c.Bind(&product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	product.ProductID = productID

	if err := h.api.UpdateProduct(c.Request().Context(), &product); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Product updated")
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.api.DeleteProduct(c.Request().Context(), productID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Product deleted")
}

func (h *CatalogHandler) ListShops(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.api.GetShops(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result, "")
}
