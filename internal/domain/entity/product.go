package entity

import "github.com/shopspring/decimal"

// Product is a single sellable catalog position. Code is the identity and
// is unique within the catalog; products are never deleted, only edited.
type Product struct {
	Code  string
	Name  string
	Stock int             // units on hand, never negative
	Price decimal.Decimal // retail price in rubles
}
