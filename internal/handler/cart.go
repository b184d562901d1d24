package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
)

type CartHandler struct {
	cart     service.CartService
	checkout service.CheckoutService
}

func NewCartHandler(cart service.CartService, checkout service.CheckoutService) *CartHandler {
	return &CartHandler{cart: cart, checkout: checkout}
}

func cartPayload(items []model.CartItem) echo.Map {
	return echo.Map{
		"items": items,
		"total": model.CartTotal(items),
	}
}

func (h *CartHandler) View(c echo.Context) error {
	items, err := h.cart.View(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, cartPayload(items), "")
}

func (h *CartHandler) Add(c echo.Context) error {
	var req struct {
		ProductID int64 `json:"productID"`
		Quantity  int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	items, err := h.cart.Add(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, cartPayload(items), "Added to cart")
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	cartItemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart item id")
	}

	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Quantity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	items, err := h.cart.UpdateQuantity(c.Request().Context(), cartItemID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, cartPayload(items), "")
}

func (h *CartHandler) Remove(c echo.Context) error {
	cartItemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart item id")
	}

	items, err := h.cart.Remove(c.Request().Context(), cartItemID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, cartPayload(items), "Removed from cart")
}

type checkoutRequest struct {
	service.CheckoutForm
	CartItemIDs []int64 `json:"cartItemIDs"`
}

// Checkout submits the checkout form against the current cart contents.
func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	items, err := h.cart.View(ctx)
	if err != nil {
		return respondError(c, err)
	}
	if len(req.CartItemIDs) > 0 {
		items = filterCartItems(items, req.CartItemIDs)
	}
	if len(items) == 0 {
		return respond(c, http.StatusBadRequest, nil, "Your cart is empty")
	}

	result, err := h.checkout.Submit(ctx, req.CheckoutForm, items)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result, "Order placed successfully")
}

func filterCartItems(items []model.CartItem, ids []int64) []model.CartItem {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []model.CartItem
	for _, it := range items {
		if wanted[it.CartItemID] {
			out = append(out, it)
		}
	}
	return out
}
