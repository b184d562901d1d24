package model

import "github.com/shopspring/decimal"

type CartItem struct {
	CartItemID   int64           `json:"cartItemID"`
	ProductID    int64           `json:"productID"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int64           `json:"quantity"`
	TotalAmounts decimal.Decimal `json:"totalAmounts"`
}

// CartTotal sums line totals across the cart.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalAmounts)
	}
	return total
}
