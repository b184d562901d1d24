package service

import (
	"context"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
)

// CartService mutates the remote cart and always refetches the whole cart
// afterwards. The server is the source of truth; nothing is patched locally.
type CartService interface {
	View(ctx context.Context) ([]model.CartItem, error)
	Add(ctx context.Context, productID, quantity int64) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID, quantity int64) ([]model.CartItem, error)
	Remove(ctx context.Context, cartItemID int64) ([]model.CartItem, error)
}

type cartServiceImpl struct {
	api client.StorefrontClient
}

func NewCartService(api client.StorefrontClient) CartService {
	return &cartServiceImpl{api: api}
}

func (s *cartServiceImpl) View(ctx context.Context) ([]model.CartItem, error) {
	return s.api.GetCart(ctx)
}

func (s *cartServiceImpl) Add(ctx context.Context, productID, quantity int64) ([]model.CartItem, error) {
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return s.api.GetCart(ctx)
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, cartItemID, quantity int64) ([]model.CartItem, error) {
	if err := s.api.UpdateCartQuantity(ctx, cartItemID, quantity); err != nil {
		return nil, err
	}
	return s.api.GetCart(ctx)
}

func (s *cartServiceImpl) Remove(ctx context.Context, cartItemID int64) ([]model.CartItem, error) {
	if err := s.api.RemoveCartItem(ctx, cartItemID); err != nil {
		return nil, err
	}
	return s.api.GetCart(ctx)
}
