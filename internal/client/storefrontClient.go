package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mall-storefront/internal/config"
	"mall-storefront/internal/model"
)

// ErrNotFound marks a 404 envelope so callers can show the dedicated
// out-of-stock message instead of a generic failure.
var ErrNotFound = errors.New("resource not found")

// APIError is an envelope that completed but reported a non-success
// statusCode. Message is the server-provided text, surfaced verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// TokenSource yields the current bearer token, empty when anonymous.
type TokenSource interface {
	Token() string
}

type StorefrontClient interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	GetCart(ctx context.Context) ([]model.CartItem, error)
	AddToCart(ctx context.Context, productID, quantity int64) error
	UpdateCartQuantity(ctx context.Context, cartItemID, quantity int64) error
	RemoveCartItem(ctx context.Context, cartItemID int64) error

	CreateOrder(ctx context.Context, req *CreateOrderRequest) ([]model.CreatedOrder, error)
	GetOrdersByUser(ctx context.Context, page, limit int) (*model.Page[model.Order], error)
	GetOrdersByShop(ctx context.Context, page, limit int) (*model.Page[model.Order], error)
	GetOrderDetails(ctx context.Context, orderID int64) ([]model.OrderLine, error)
	CreateQRPayment(ctx context.Context, orderID int64) (string, error)
	EditOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	CancelOrder(ctx context.Context, orderID int64) error

	GetProducts(ctx context.Context, page, limit int, keyword string) (*model.Page[model.Product], error)
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, productID int64) error

	ToggleFavorite(ctx context.Context, productID int64) (string, error)
	GetBlogs(ctx context.Context, page, limit int) (*model.Page[model.Blog], error)
	GetBlog(ctx context.Context, blogID int64) (*model.Blog, error)
	ToggleBlogLike(ctx context.Context, blogID int64) (string, error)
	CreateComment(ctx context.Context, blogID int64, content string, parentCommentID *int64) error
	EditComment(ctx context.Context, commentID int64, content string) error
	DeleteComment(ctx context.Context, commentID int64) error

	GetProfile(ctx context.Context) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, p *model.UserProfile) error
	GetUsers(ctx context.Context, page, limit int) (*model.Page[model.UserProfile], error)
	BlockUnblockUser(ctx context.Context, userID int64) error
	GetShops(ctx context.Context, page, limit int) (*model.Page[model.Shop], error)
	BlockUnblockShop(ctx context.Context, shopID int64) error
	GetShopRevenue(ctx context.Context) (*model.RevenueStats, error)
}

type storefrontClientImpl struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func NewStorefrontClient(cfg *config.Upstream, tokens TokenSource) StorefrontClient {
	return &storefrontClientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  tokens,
	}
}

// do sends one request and decodes the {statusCode, data, message} envelope.
// It returns the envelope message so callers that rely on it (the blog-like
// toggle) can inspect it. out may be nil when data is not needed.
func (c *storefrontClientImpl) do(ctx context.Context, method, path string, query url.Values, payload any, out any) (string, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doForm is for the one form-encoded endpoint (edit-order-status).
func (c *storefrontClientImpl) doForm(ctx context.Context, method, path string, form url.Values, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *storefrontClientImpl) send(req *http.Request, out any) (string, error) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode response envelope: %w", err)
	}

	if env.StatusCode == http.StatusNotFound {
		return env.Message, fmt.Errorf("%s: %w", env.Message, ErrNotFound)
	}
	if env.StatusCode < 200 || env.StatusCode >= 300 {
		return env.Message, &APIError{StatusCode: env.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Message, fmt.Errorf("decode envelope data: %w", err)
		}
	}
	return env.Message, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("pageIndex", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(limit))
	return q
}

func (c *storefrontClientImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	var result LoginResult
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, payload, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &result, nil
}
