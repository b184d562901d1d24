package client

import (
	"context"
	"fmt"
	"net/http"

	"mall-storefront/internal/model"
)

func (c *storefrontClientImpl) GetCart(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/carts/get-cart", nil, nil, &items); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return items, nil
}

func (c *storefrontClientImpl) AddToCart(ctx context.Context, productID, quantity int64) error {
	payload := map[string]int64{
		"productID": productID,
		"quantity":  quantity,
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/carts/add-to-cart", nil, payload, nil); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) UpdateCartQuantity(ctx context.Context, cartItemID, quantity int64) error {
	payload := map[string]int64{"quantity": quantity}
	path := fmt.Sprintf("/api/v1/carts/update-quantity/%d", cartItemID)
	if _, err := c.do(ctx, http.MethodPatch, path, nil, payload, nil); err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	path := fmt.Sprintf("/api/v1/carts/remove/%d", cartItemID)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}
