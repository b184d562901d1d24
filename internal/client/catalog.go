package client

import (
	"context"
	"fmt"
	"net/http"

	"mall-storefront/internal/model"
)

func (c *storefrontClientImpl) GetProducts(ctx context.Context, page, limit int, keyword string) (*model.Page[model.Product], error) {
	q := pageQuery(page, limit)
	if keyword != "" {
		q.Set("keyword", keyword)
	}

	var result model.Page[model.Product]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/products/get-all", q, nil, &result); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	var result model.Product
	path := fmt.Sprintf("/api/v1/products/get-by-id/%d", productID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) CreateProduct(ctx context.Context, p *model.Product) error {
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/products/create", nil, p, nil); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) UpdateProduct(ctx context.Context, p *model.Product) error {
	path := fmt.Sprintf("/api/v1/products/update/%d", p.ProductID)
	if _, err := c.do(ctx, http.MethodPut, path, nil, p, nil); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) DeleteProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/v1/products/delete/%d", productID)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
