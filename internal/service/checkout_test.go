package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
)

// fakeAPI stubs only the endpoints a test exercises; anything else panics,
// which is exactly what we want from an unexpected network call.
type fakeAPI struct {
	client.StorefrontClient

	mu               sync.Mutex
	createOrderCalls int
	qrCalls          int

	createOrderFn    func(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error)
	createQRFn       func(ctx context.Context, orderID int64) (string, error)
	toggleFavoriteFn func(ctx context.Context, productID int64) (string, error)
	toggleBlogLikeFn func(ctx context.Context, blogID int64) (string, error)
	editStatusFn     func(ctx context.Context, orderID int64, status model.OrderStatus) error
	getProfileFn     func(ctx context.Context) (*model.UserProfile, error)
	loginFn          func(ctx context.Context, username, password string) (*client.LoginResult, error)
}

func (f *fakeAPI) CreateOrder(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error) {
	f.mu.Lock()
	f.createOrderCalls++
	f.mu.Unlock()
	return f.createOrderFn(ctx, req)
}

func (f *fakeAPI) CreateQRPayment(ctx context.Context, orderID int64) (string, error) {
	f.mu.Lock()
	f.qrCalls++
	f.mu.Unlock()
	return f.createQRFn(ctx, orderID)
}

func (f *fakeAPI) ToggleFavorite(ctx context.Context, productID int64) (string, error) {
	return f.toggleFavoriteFn(ctx, productID)
}

func (f *fakeAPI) ToggleBlogLike(ctx context.Context, blogID int64) (string, error) {
	return f.toggleBlogLikeFn(ctx, blogID)
}

func (f *fakeAPI) EditOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.editStatusFn(ctx, orderID, status)
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *fakeNotifier) Active() []service.Toast { return nil }

func validForm(method model.PaymentMethod) service.CheckoutForm {
	return service.CheckoutForm{
		ReceiverName:    "Nguyen Van A",
		DeliveryAddress: "12 Le Loi, District 1",
		ReceiverPhone:   "0123456789",
		PaymentMethod:   method,
	}
}

func oneItemCart() []model.CartItem {
	unit := decimal.NewFromInt(100000)
	return []model.CartItem{{
		CartItemID:   7,
		ProductID:    3,
		ProductName:  "Ceramic mug",
		UnitPrice:    unit,
		Quantity:     2,
		TotalAmounts: unit.Mul(decimal.NewFromInt(2)),
	}}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, service.IsValidPhone("0123456789"))
	assert.False(t, service.IsValidPhone("12345"))
	assert.False(t, service.IsValidPhone("012345678a"))
	assert.False(t, service.IsValidPhone("01234567890"))
	assert.False(t, service.IsValidPhone(""))
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "0123456789", service.SanitizePhone("01 2345-678a9"))
	assert.Equal(t, "0123456789", service.SanitizePhone("01234567891234"))
	assert.Equal(t, "", service.SanitizePhone("abc"))
}

func TestValidateCheckoutMissingFields(t *testing.T) {
	errs := service.ValidateCheckout(service.CheckoutForm{
		ReceiverName:    "   ",
		DeliveryAddress: "",
		ReceiverPhone:   "12345",
	})

	assert.Contains(t, errs, "receiverName")
	assert.Contains(t, errs, "deliveryAddress")
	assert.Contains(t, errs, "receiverPhone")
}

func TestSubmitBlockedByValidation(t *testing.T) {
	api := &fakeAPI{}
	notifier := &fakeNotifier{}
	checkout := service.NewCheckoutService(api, notifier, time.Millisecond)

	form := validForm(model.PaymentDirect)
	form.ReceiverPhone = ""

	result, err := checkout.Submit(context.Background(), form, oneItemCart())

	require.Error(t, err)
	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "receiverPhone")
	assert.Nil(t, result)
	assert.Equal(t, 0, api.createOrderCalls, "no network call on invalid form")
}

func TestSubmitDirectHappyPath(t *testing.T) {
	api := &fakeAPI{
		createOrderFn: func(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error) {
			assert.Equal(t, []int64{7}, req.CartItemIDs)
			assert.Equal(t, model.PaymentDirect, req.PaymentMethod)
			return []model.CreatedOrder{{OrderID: 42}}, nil
		},
	}
	notifier := &fakeNotifier{}
	checkout := service.NewCheckoutService(api, notifier, time.Millisecond)

	result, err := checkout.Submit(context.Background(), validForm(model.PaymentDirect), oneItemCart())

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, "orders", result.RedirectTo)
	assert.Equal(t, 1, api.createOrderCalls)
	assert.Equal(t, 0, api.qrCalls, "direct payment must not request a QR")
	assert.Contains(t, notifier.successes, "Order placed successfully")
}

func TestSubmitOnlineBankingRequestsQR(t *testing.T) {
	api := &fakeAPI{
		createOrderFn: func(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error) {
			return []model.CreatedOrder{{OrderID: 42}}, nil
		},
		createQRFn: func(ctx context.Context, orderID int64) (string, error) {
			assert.Equal(t, int64(42), orderID)
			return "https://pay.example/qr/42.png", nil
		},
	}
	notifier := &fakeNotifier{}
	checkout := service.NewCheckoutService(api, notifier, time.Millisecond)

	result, err := checkout.Submit(context.Background(), validForm(model.PaymentOnlineBanking), oneItemCart())

	require.NoError(t, err)
	assert.Equal(t, 1, api.qrCalls)
	assert.Equal(t, "https://pay.example/qr/42.png", result.QRURL)
}

func TestSubmitQRFailureIsNonBlocking(t *testing.T) {
	api := &fakeAPI{
		createOrderFn: func(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error) {
			return []model.CreatedOrder{{OrderID: 42}}, nil
		},
		createQRFn: func(ctx context.Context, orderID int64) (string, error) {
			return "", errors.New("qr service down")
		},
	}
	notifier := &fakeNotifier{}
	checkout := service.NewCheckoutService(api, notifier, time.Millisecond)

	result, err := checkout.Submit(context.Background(), validForm(model.PaymentOnlineBanking), oneItemCart())

	require.NoError(t, err, "a failed QR request must not fail the checkout")
	assert.Equal(t, int64(42), result.OrderID)
	assert.Empty(t, result.QRURL)
	assert.Contains(t, notifier.successes, "Order placed successfully")
}

func TestSubmitMissingOrderID(t *testing.T) {
	api := &fakeAPI{
		createOrderFn: func(ctx context.Context, req *client.CreateOrderRequest) ([]model.CreatedOrder, error) {
			return nil, nil
		},
	}
	notifier := &fakeNotifier{}
	checkout := service.NewCheckoutService(api, notifier, time.Millisecond)

	_, err := checkout.Submit(context.Background(), validForm(model.PaymentDirect), oneItemCart())

	require.ErrorIs(t, err, service.ErrMissingOrderID)
	assert.Equal(t, 0, api.qrCalls)
	assert.NotEmpty(t, notifier.errors)
}
