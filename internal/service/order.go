package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
)

var (
	ErrStatusUnchanged    = errors.New("selected status equals the current status")
	ErrPaymentNotRequired = errors.New("order does not need online payment")
)

// CanCancel reports whether an order in the given status may still be
// cancelled. Completed and Cancelled are terminal.
func CanCancel(status model.OrderStatus) bool {
	return status == model.StatusWaitForPayment || status == model.StatusPaid
}

// NeedsOnlinePayment reports whether the payment QR step applies.
func NeedsOnlinePayment(o model.Order) bool {
	return o.PaymentMethod == model.PaymentOnlineBanking &&
		o.Status == model.StatusWaitForPayment
}

// AllowedNextStatuses lists the transitions the shop view may request.
func AllowedNextStatuses(status model.OrderStatus) []model.OrderStatus {
	switch status {
	case model.StatusWaitForPayment:
		return []model.OrderStatus{model.StatusPaid, model.StatusCancelled}
	case model.StatusPaid:
		return []model.OrderStatus{model.StatusCompleted, model.StatusCancelled}
	case model.StatusCompleted, model.StatusCancelled:
		return nil
	default:
		return nil
	}
}

// GroupOrderLines merges raw detail rows that share a product name: one
// entry per product, quantities merged, totals summed, distinct non-empty
// notes collected. First-seen order is preserved.
func GroupOrderLines(lines []model.OrderLine) []model.OrderLineItem {
	grouped := []model.OrderLineItem{}
	index := map[string]int{}

	for _, line := range lines {
		i, ok := index[line.ProductName]
		if !ok {
			i = len(grouped)
			index[line.ProductName] = i
			grouped = append(grouped, model.OrderLineItem{
				ProductName: line.ProductName,
				UnitPrice:   line.UnitPrice,
			})
		}

		item := &grouped[i]
		item.Quantity += line.Quantity
		item.TotalPrice = item.TotalPrice.Add(
			line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
		if line.Note != "" && !slices.Contains(item.Notes, line.Note) {
			item.Notes = append(item.Notes, line.Note)
		}
	}
	return grouped
}

// OrderService drives the order lifecycle. Every mutation is a single
// attempt; the caller refetches the list afterwards instead of patching
// state incrementally.
type OrderService interface {
	ListByUser(ctx context.Context, page, limit int) (*model.Page[model.Order], error)
	ListByShop(ctx context.Context, page, limit int) (*model.Page[model.Order], error)
	Details(ctx context.Context, orderID int64) ([]model.OrderLineItem, error)
	ChangeStatus(ctx context.Context, orderID int64, current, next model.OrderStatus) error
	Cancel(ctx context.Context, orderID int64) error
	GenerateQRPayment(ctx context.Context, o model.Order) (string, error)
	RevenueByShop(ctx context.Context) (*model.RevenueStats, error)
}

type orderServiceImpl struct {
	api      client.StorefrontClient
	notifier Notifier
}

func NewOrderService(api client.StorefrontClient, notifier Notifier) OrderService {
	return &orderServiceImpl{api: api, notifier: notifier}
}

func (s *orderServiceImpl) ListByUser(ctx context.Context, page, limit int) (*model.Page[model.Order], error) {
	return s.api.GetOrdersByUser(ctx, page, limit)
}

func (s *orderServiceImpl) ListByShop(ctx context.Context, page, limit int) (*model.Page[model.Order], error) {
	return s.api.GetOrdersByShop(ctx, page, limit)
}

func (s *orderServiceImpl) Details(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	lines, err := s.api.GetOrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return GroupOrderLines(lines), nil
}

func (s *orderServiceImpl) ChangeStatus(ctx context.Context, orderID int64, current, next model.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("invalid order status %q", next)
	}
	if next == current {
		return ErrStatusUnchanged
	}

	if err := s.api.EditOrderStatus(ctx, orderID, next); err != nil {
		s.notifier.Error(toggleErrorMessage(err))
		return err
	}
	return nil
}

func (s *orderServiceImpl) Cancel(ctx context.Context, orderID int64) error {
	if err := s.api.CancelOrder(ctx, orderID); err != nil {
		s.notifier.Error(toggleErrorMessage(err))
		return err
	}
	s.notifier.Success("Order cancelled")
	return nil
}

func (s *orderServiceImpl) GenerateQRPayment(ctx context.Context, o model.Order) (string, error) {
	if !NeedsOnlinePayment(o) {
		return "", ErrPaymentNotRequired
	}
	return s.api.CreateQRPayment(ctx, o.OrderID)
}

func (s *orderServiceImpl) RevenueByShop(ctx context.Context) (*model.RevenueStats, error) {
	return s.api.GetShopRevenue(ctx)
}
