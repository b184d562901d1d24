package client

import (
	"context"
	"fmt"
	"net/http"

	"mall-storefront/internal/model"
)

func (c *storefrontClientImpl) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	var result model.UserProfile
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/users/get-profile", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) UpdateProfile(ctx context.Context, p *model.UserProfile) error {
	if _, err := c.do(ctx, http.MethodPatch, "/api/v1/users/update-profile", nil, p, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) GetUsers(ctx context.Context, page, limit int) (*model.Page[model.UserProfile], error) {
	var result model.Page[model.UserProfile]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/users/get-all", pageQuery(page, limit), nil, &result); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) BlockUnblockUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/v1/users/block-unblock-user/%d", userID)
	if _, err := c.do(ctx, http.MethodPatch, path, nil, nil, nil); err != nil {
		return fmt.Errorf("block/unblock user: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) GetShops(ctx context.Context, page, limit int) (*model.Page[model.Shop], error) {
	var result model.Page[model.Shop]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/shops/get-all", pageQuery(page, limit), nil, &result); err != nil {
		return nil, fmt.Errorf("get shops: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) BlockUnblockShop(ctx context.Context, shopID int64) error {
	path := fmt.Sprintf("/api/v1/shops/block-unblock-shop/%d", shopID)
	if _, err := c.do(ctx, http.MethodPatch, path, nil, nil, nil); err != nil {
		return fmt.Errorf("block/unblock shop: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) GetShopRevenue(ctx context.Context) (*model.RevenueStats, error) {
	var result model.RevenueStats
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/statistics/revenue-by-shop", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("get shop revenue: %w", err)
	}
	return &result, nil
}
