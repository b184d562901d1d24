package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusWaitForPayment OrderStatus = "WaitForPayment"
	StatusPaid           OrderStatus = "Paid"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusCompleted      OrderStatus = "Completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusWaitForPayment, StatusPaid, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentDirect        PaymentMethod = "Direct"
	PaymentOnlineBanking PaymentMethod = "OnlineBanking"
)

type Order struct {
	OrderID         int64           `json:"orderID"`
	OrderCode       string          `json:"orderCode"`
	Status          OrderStatus     `json:"status"`
	TotalAmounts    decimal.Decimal `json:"totalAmounts"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ReceiverName    string          `json:"receiverName"`
	ReceiverPhone   string          `json:"receiverPhone"`
	DeliveryAddress string          `json:"deliveryAddress"`
	CreatedDate     time.Time       `json:"createdDate"`
}

// OrderLine is one raw detail row as the backend returns it. The same
// product can appear on several rows (one per cart addition).
type OrderLine struct {
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Note        string          `json:"note"`
}

// OrderLineItem is the grouped, display-ready form: rows with the same
// product name merged, totals summed, distinct notes collected.
type OrderLineItem struct {
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Notes       []string        `json:"notes"`
}

type CreatedOrder struct {
	OrderID int64 `json:"orderID"`
}

type RevenueStats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	CompletedOrders int64           `json:"completedOrders"`
	CancelledOrders int64           `json:"cancelledOrders"`
	PendingOrders   int64           `json:"pendingOrders"`
}
