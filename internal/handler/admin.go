package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/client"
)

type AdminHandler struct {
	api client.StorefrontClient
}

func NewAdminHandler(api client.StorefrontClient) *AdminHandler {
	return &AdminHandler{api: api}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.api.GetUsers(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result, "")
}

func (h *AdminHandler) BlockUnblockUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.api.BlockUnblockUser(c.Request().Context(), userID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "User moderation updated")
}

func (h *AdminHandler) BlockUnblockShop(c echo.Context) error {
	shopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid shop id")
	}

	if err := h.api.BlockUnblockShop(c.Request().Context(), shopID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Shop moderation updated")
}
