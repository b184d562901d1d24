package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
)

// QRSettleDelay is how long the flow waits after order creation before
// requesting the payment QR, letting the order settle server-side.
const QRSettleDelay = 2 * time.Second

// ErrMissingOrderID marks a create-order response whose data array carried
// no order, distinct from a plain request failure.
var ErrMissingOrderID = errors.New("order was created but no order id was returned")

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// IsValidPhone accepts exactly 10 digits.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// SanitizePhone is applied on every keystroke: strip non-digits, cap at 10.
func SanitizePhone(s string) string {
	s = nonDigits.ReplaceAllString(s, "")
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}

// FieldErrors maps a form field to its validation message. Submission is
// blocked while any key is present.
type FieldErrors map[string]string

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout form invalid: %d field(s)", len(e.Fields))
}

type CheckoutForm struct {
	ReceiverName    string              `json:"receiverName"`
	DeliveryAddress string              `json:"deliveryAddress"`
	ReceiverPhone   string              `json:"receiverPhone"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
}

func ValidateCheckout(form CheckoutForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(form.ReceiverName) == "" {
		errs["receiverName"] = "Receiver name is required"
	}
	if strings.TrimSpace(form.DeliveryAddress) == "" {
		errs["deliveryAddress"] = "Delivery address is required"
	}
	phone := strings.TrimSpace(form.ReceiverPhone)
	if phone == "" {
		errs["receiverPhone"] = "Phone number is required"
	} else if !IsValidPhone(phone) {
		errs["receiverPhone"] = "Phone number must be exactly 10 digits"
	}
	return errs
}

type CheckoutResult struct {
	OrderID    int64  `json:"orderID"`
	QRURL      string `json:"qrURL,omitempty"`
	RedirectTo string `json:"redirectTo"`
}

type CheckoutService interface {
	Submit(ctx context.Context, form CheckoutForm, items []model.CartItem) (*CheckoutResult, error)
}

type checkoutServiceImpl struct {
	api         client.StorefrontClient
	notifier    Notifier
	settleDelay time.Duration
}

func NewCheckoutService(api client.StorefrontClient, notifier Notifier, settleDelay time.Duration) CheckoutService {
	return &checkoutServiceImpl{api: api, notifier: notifier, settleDelay: settleDelay}
}

// Submit turns the cart into an order. For online banking the QR request is
// fire-and-forget: its failure never blocks the "order placed" outcome.
func (s *checkoutServiceImpl) Submit(ctx context.Context, form CheckoutForm, items []model.CartItem) (*CheckoutResult, error) {
	if errs := ValidateCheckout(form); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	cartItemIDs := make([]int64, len(items))
	for i, item := range items {
		cartItemIDs[i] = item.CartItemID
	}

	created, err := s.api.CreateOrder(ctx, &client.CreateOrderRequest{
		ReceiverName:    strings.TrimSpace(form.ReceiverName),
		ReceiverPhone:   strings.TrimSpace(form.ReceiverPhone),
		DeliveryAddress: strings.TrimSpace(form.DeliveryAddress),
		PaymentMethod:   form.PaymentMethod,
		CartItemIDs:     cartItemIDs,
	})
	if err != nil {
		s.notifier.Error(genericFailureMessage)
		return nil, fmt.Errorf("create order: %w", err)
	}
	if len(created) == 0 {
		s.notifier.Error("Order could not be confirmed, please check your orders")
		return nil, ErrMissingOrderID
	}

	result := &CheckoutResult{
		OrderID:    created[0].OrderID,
		RedirectTo: "orders",
	}

	if form.PaymentMethod == model.PaymentOnlineBanking {
		select {
		case <-time.After(s.settleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		qrURL, qrErr := s.api.CreateQRPayment(ctx, result.OrderID)
		if qrErr != nil {
			// Secondary failure: the order stands, the user retries
			// payment from the orders tab.
			log.Printf("create qr payment for order %d: %v", result.OrderID, qrErr)
		} else {
			result.QRURL = qrURL
		}
	}

	s.notifier.Success("Order placed successfully")
	return result, nil
}
