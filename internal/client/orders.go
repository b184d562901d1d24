package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"mall-storefront/internal/model"
)

type CreateOrderRequest struct {
	ReceiverName    string              `json:"receiverName"`
	ReceiverPhone   string              `json:"receiverPhone"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
	CartItemIDs     []int64             `json:"cartItemIDs"`
}

func (c *storefrontClientImpl) CreateOrder(ctx context.Context, req *CreateOrderRequest) ([]model.CreatedOrder, error) {
	var created []model.CreatedOrder
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/orders/create", nil, req, &created); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (c *storefrontClientImpl) GetOrdersByUser(ctx context.Context, page, limit int) (*model.Page[model.Order], error) {
	var result model.Page[model.Order]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/orders/get-by-user", pageQuery(page, limit), nil, &result); err != nil {
		return nil, fmt.Errorf("get orders by user: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) GetOrdersByShop(ctx context.Context, page, limit int) (*model.Page[model.Order], error) {
	var result model.Page[model.Order]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/orders/get-by-shop", pageQuery(page, limit), nil, &result); err != nil {
		return nil, fmt.Errorf("get orders by shop: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) GetOrderDetails(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	q := url.Values{}
	q.Set("orderID", fmt.Sprint(orderID))

	var lines []model.OrderLine
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/orders/get-details", q, nil, &lines); err != nil {
		return nil, fmt.Errorf("get order details: %w", err)
	}
	return lines, nil
}

func (c *storefrontClientImpl) CreateQRPayment(ctx context.Context, orderID int64) (string, error) {
	payload := map[string]int64{"orderID": orderID}

	var result struct {
		QRURL string `json:"qrURL"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/orders/create-qr-payment", nil, payload, &result); err != nil {
		return "", fmt.Errorf("create qr payment: %w", err)
	}
	return result.QRURL, nil
}

// EditOrderStatus is the one form-encoded call in the API surface.
func (c *storefrontClientImpl) EditOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	form := url.Values{}
	form.Set("status", string(status))

	path := fmt.Sprintf("/api/v1/orders/edit-order-status/%d", orderID)
	if _, err := c.doForm(ctx, http.MethodPatch, path, form, nil); err != nil {
		return fmt.Errorf("edit order status: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) CancelOrder(ctx context.Context, orderID int64) error {
	payload := map[string]int64{"orderID": orderID}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/orders/cancel-order", nil, payload, nil); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	return nil
}
