package model

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   int64           `json:"productID"`
	ShopID      int64           `json:"shopID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Category    string          `json:"category"`
}

type Shop struct {
	ShopID  int64  `json:"shopID"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Address string `json:"address"`
	Blocked bool   `json:"blocked"`
	OwnerID int64  `json:"ownerID"`
}

// Page is the paged-list shape every listing endpoint returns inside the
// envelope data field.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"totalItems"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
}
