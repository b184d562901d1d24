package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/service"
)

type ToggleHandler struct {
	toggles service.ToggleService
}

func NewToggleHandler(toggles service.ToggleService) *ToggleHandler {
	return &ToggleHandler{toggles: toggles}
}

// currentPath is where the user was when they clicked; remembered for the
// post-login redirect when the toggle is rejected as anonymous.
func currentPath(c echo.Context) string {
	if p := c.Request().Header.Get("X-Current-Path"); p != "" {
		return p
	}
	return "/"
}

func (h *ToggleHandler) ToggleFavorite(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	state, svcErr := h.toggles.ToggleFavorite(c.Request().Context(), currentPath(c), productID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return respond(c, http.StatusOK, echo.Map{"favorited": state}, "")
}

func (h *ToggleHandler) Favorites(c echo.Context) error {
	members, err := h.toggles.Favorites()
	if err != nil {
		return respondError(c, err)
	}

	ids := make([]int64, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return respond(c, http.StatusOK, ids, "")
}

func (h *ToggleHandler) ToggleBlogLike(c echo.Context) error {
	blogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid blog id")
	}

	state, svcErr := h.toggles.ToggleBlogLike(c.Request().Context(), currentPath(c), blogID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return respond(c, http.StatusOK, echo.Map{"liked": state}, "")
}
