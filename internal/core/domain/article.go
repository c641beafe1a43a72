package domain

import "github.com/govalues/decimal"

type Article struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
