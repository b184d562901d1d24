package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
)

func TestCanCancel(t *testing.T) {
	cases := map[model.OrderStatus]bool{
		model.StatusWaitForPayment: true,
		model.StatusPaid:           true,
		model.StatusCompleted:      false,
		model.StatusCancelled:      false,
	}
	for status, want := range cases {
		assert.Equal(t, want, service.CanCancel(status), "status %s", status)
	}
}

func TestNeedsOnlinePayment(t *testing.T) {
	cases := []struct {
		method model.PaymentMethod
		status model.OrderStatus
		want   bool
	}{
		{model.PaymentOnlineBanking, model.StatusWaitForPayment, true},
		{model.PaymentOnlineBanking, model.StatusPaid, false},
		{model.PaymentOnlineBanking, model.StatusCancelled, false},
		{model.PaymentDirect, model.StatusWaitForPayment, false},
		{model.PaymentDirect, model.StatusPaid, false},
	}
	for _, tc := range cases {
		o := model.Order{PaymentMethod: tc.method, Status: tc.status}
		assert.Equal(t, tc.want, service.NeedsOnlinePayment(o),
			"%s/%s", tc.method, tc.status)
	}
}

func TestAllowedNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]model.OrderStatus{model.StatusPaid, model.StatusCancelled},
		service.AllowedNextStatuses(model.StatusWaitForPayment))
	assert.ElementsMatch(t,
		[]model.OrderStatus{model.StatusCompleted, model.StatusCancelled},
		service.AllowedNextStatuses(model.StatusPaid))
	assert.Empty(t, service.AllowedNextStatuses(model.StatusCompleted))
	assert.Empty(t, service.AllowedNextStatuses(model.StatusCancelled))
}

func TestGroupOrderLinesMergesByProductName(t *testing.T) {
	unit := decimal.NewFromInt(100000)
	lines := []model.OrderLine{
		{ProductName: "Ceramic mug", Quantity: 2, UnitPrice: unit, Note: "gift wrap"},
		{ProductName: "Tea pot", Quantity: 1, UnitPrice: decimal.NewFromInt(250000)},
		{ProductName: "Ceramic mug", Quantity: 3, UnitPrice: unit, Note: "blue one"},
		{ProductName: "Ceramic mug", Quantity: 1, UnitPrice: unit, Note: "gift wrap"},
	}

	grouped := service.GroupOrderLines(lines)

	require.Len(t, grouped, 2)

	mug := grouped[0]
	assert.Equal(t, "Ceramic mug", mug.ProductName)
	assert.Equal(t, int64(6), mug.Quantity)
	assert.True(t, mug.TotalPrice.Equal(decimal.NewFromInt(600000)),
		"got total %s", mug.TotalPrice)
	assert.Equal(t, []string{"gift wrap", "blue one"}, mug.Notes)

	pot := grouped[1]
	assert.Equal(t, "Tea pot", pot.ProductName)
	assert.Equal(t, int64(1), pot.Quantity)
	assert.Empty(t, pot.Notes)
}

func TestGroupOrderLinesEmpty(t *testing.T) {
	assert.Empty(t, service.GroupOrderLines(nil))
}

func TestChangeStatusRejectsUnchanged(t *testing.T) {
	called := false
	api := &fakeAPI{
		editStatusFn: func(ctx context.Context, orderID int64, status model.OrderStatus) error {
			called = true
			return nil
		},
	}
	orders := service.NewOrderService(api, &fakeNotifier{})

	err := orders.ChangeStatus(context.Background(), 1, model.StatusPaid, model.StatusPaid)

	require.ErrorIs(t, err, service.ErrStatusUnchanged)
	assert.False(t, called, "no request when the status did not change")
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	orders := service.NewOrderService(&fakeAPI{}, &fakeNotifier{})

	err := orders.ChangeStatus(context.Background(), 1, model.StatusPaid, model.OrderStatus("Shipped"))
	require.Error(t, err)
}

func TestGenerateQRPaymentGuards(t *testing.T) {
	orders := service.NewOrderService(&fakeAPI{}, &fakeNotifier{})

	_, err := orders.GenerateQRPayment(context.Background(), model.Order{
		OrderID:       9,
		Status:        model.StatusPaid,
		PaymentMethod: model.PaymentOnlineBanking,
	})
	require.ErrorIs(t, err, service.ErrPaymentNotRequired)

	_, err = orders.GenerateQRPayment(context.Background(), model.Order{
		OrderID:       9,
		Status:        model.StatusWaitForPayment,
		PaymentMethod: model.PaymentDirect,
	})
	require.ErrorIs(t, err, service.ErrPaymentNotRequired)
}
