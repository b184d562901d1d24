package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("pageIndex"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func orderIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	return id, nil
}

// orderView decorates an order with the actions the current status allows.
type orderView struct {
	model.Order
	CanCancel          bool                `json:"canCancel"`
	NeedsOnlinePayment bool                `json:"needsOnlinePayment"`
	NextStatuses       []model.OrderStatus `json:"nextStatuses"`
}

func toOrderViews(orders []model.Order) []orderView {
	views := make([]orderView, len(orders))
	for i, o := range orders {
		views[i] = orderView{
			Order:              o,
			CanCancel:          service.CanCancel(o.Status),
			NeedsOnlinePayment: service.NeedsOnlinePayment(o),
			NextStatuses:       service.AllowedNextStatuses(o.Status),
		}
	}
	return views
}

func (h *OrderHandler) ListByUser(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.orders.ListByUser(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"items":      toOrderViews(result.Items),
		"totalItems": result.TotalItems,
		"pageIndex":  result.PageIndex,
		"pageSize":   result.PageSize,
	}, "")
}

func (h *OrderHandler) ListByShop(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.orders.ListByShop(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"items":      toOrderViews(result.Items),
		"totalItems": result.TotalItems,
		"pageIndex":  result.PageIndex,
		"pageSize":   result.PageSize,
	}, "")
}

func (h *OrderHandler) Details(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	items, svcErr := h.orders.Details(c.Request().Context(), orderID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return respond(c, http.StatusOK, items, "")
}

// Cancel requires the caller to have passed the confirmation step; the
// cancellation is irreversible once accepted.
func (h *OrderHandler) Cancel(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if !req.Confirmed {
		return respond(c, http.StatusBadRequest, nil, "Cancellation must be confirmed")
	}

	if err := h.orders.Cancel(c.Request().Context(), orderID); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Order cancelled")
}

func (h *OrderHandler) EditStatus(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var req struct {
		Current model.OrderStatus `json:"current"`
		Next    model.OrderStatus `json:"next"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.orders.ChangeStatus(c.Request().Context(), orderID, req.Current, req.Next); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Order status updated")
}

// QRPayment requests a payment QR for a WaitForPayment + OnlineBanking
// order. The caller sends the order as currently rendered.
func (h *OrderHandler) QRPayment(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	qrURL, err := h.orders.GenerateQRPayment(c.Request().Context(), order)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"qrURL": qrURL}, "")
}

// PaymentComplete is the manual "I have paid" action: no proof is checked
// client-side, the refreshed list reflects whatever the server recorded.
func (h *OrderHandler) PaymentComplete(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.orders.ListByUser(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"items":      toOrderViews(result.Items),
		"totalItems": result.TotalItems,
		"pageIndex":  result.PageIndex,
		"pageSize":   result.PageSize,
	}, "")
}

func (h *OrderHandler) Revenue(c echo.Context) error {
	stats, err := h.orders.RevenueByShop(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, stats, "")
}
