package client

import (
	"context"
	"fmt"
	"net/http"

	"mall-storefront/internal/model"
)

// ToggleFavorite flips the favorite flag server-side and returns the
// envelope message.
func (c *storefrontClientImpl) ToggleFavorite(ctx context.Context, productID int64) (string, error) {
	path := fmt.Sprintf("/api/v1/products/favorite/%d", productID)
	msg, err := c.do(ctx, http.MethodPost, path, nil, nil, nil)
	if err != nil {
		return msg, fmt.Errorf("toggle favorite: %w", err)
	}
	return msg, nil
}

func (c *storefrontClientImpl) GetBlogs(ctx context.Context, page, limit int) (*model.Page[model.Blog], error) {
	var result model.Page[model.Blog]
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/blogs/get-all", pageQuery(page, limit), nil, &result); err != nil {
		return nil, fmt.Errorf("get blogs: %w", err)
	}
	return &result, nil
}

func (c *storefrontClientImpl) GetBlog(ctx context.Context, blogID int64) (*model.Blog, error) {
	var result model.Blog
	path := fmt.Sprintf("/api/v1/blogs/get-by-id/%d", blogID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &result, nil
}

// ToggleBlogLike returns the envelope message; the backend reports the
// recorded direction only through that human-readable text.
func (c *storefrontClientImpl) ToggleBlogLike(ctx context.Context, blogID int64) (string, error) {
	path := fmt.Sprintf("/api/v1/blogs/toggle-like/%d", blogID)
	msg, err := c.do(ctx, http.MethodPost, path, nil, nil, nil)
	if err != nil {
		return msg, fmt.Errorf("toggle blog like: %w", err)
	}
	return msg, nil
}

func (c *storefrontClientImpl) CreateComment(ctx context.Context, blogID int64, content string, parentCommentID *int64) error {
	payload := map[string]any{
		"blogID":  blogID,
		"content": content,
	}
	if parentCommentID != nil {
		payload["parentCommentID"] = *parentCommentID
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/comments/create", nil, payload, nil); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) EditComment(ctx context.Context, commentID int64, content string) error {
	payload := map[string]string{"content": content}
	path := fmt.Sprintf("/api/v1/comments/edit/%d", commentID)
	if _, err := c.do(ctx, http.MethodPut, path, nil, payload, nil); err != nil {
		return fmt.Errorf("edit comment: %w", err)
	}
	return nil
}

func (c *storefrontClientImpl) DeleteComment(ctx context.Context, commentID int64) error {
	path := fmt.Sprintf("/api/v1/comments/delete/%d", commentID)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
