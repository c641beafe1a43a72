package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// OrderStatus is a closed set of labels. Any valid status may replace any other.
type OrderStatus string

const (
	OrderStatusComplete OrderStatus = "Complete"
	OrderStatusFailed   OrderStatus = "Failed"
	OrderStatusOpen     OrderStatus = "Open"
	OrderStatusActive   OrderStatus = "Active"
	OrderStatusCanceled OrderStatus = "Canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusComplete, OrderStatusFailed, OrderStatusOpen, OrderStatusActive, OrderStatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID     int64
	Status OrderStatus
	Lines  []OrderLine
}

// OrderLine joins an order with an article. (OrderID, ArticleID) is unique.
type OrderLine struct {
	OrderID   int64
	ArticleID int64
	Quantity  int
}

// OrderView is an order as handed out to callers, with its total cost
// computed from the article prices at read time.
type OrderView struct {
	ID        int64
	Status    OrderStatus
	Lines     []OrderLine
	TotalCost decimal.Decimal
}

// ArticleIDs returns the article ids referenced by the lines, without duplicates.
func (o *Order) ArticleIDs() []int64 {
	ids := make([]int64, 0, len(o.Lines))
	seen := make(map[int64]struct{}, len(o.Lines))
	for _, l := range o.Lines {
		if _, ok := seen[l.ArticleID]; ok {
			continue
		}
		seen[l.ArticleID] = struct{}{}
		ids = append(ids, l.ArticleID)
	}
	return ids
}

// TotalCost sums quantity * price over the lines whose article is present in
// articles and rounds the result to cents. Lines without a matching article
// do not contribute.
func TotalCost(lines []OrderLine, articles []*Article) (decimal.Decimal, error) {
	prices := make(map[int64]decimal.Decimal, len(articles))
	for _, a := range articles {
		prices[a.ID] = a.Price
	}

	total := decimal.Zero
	for _, l := range lines {
		price, ok := prices[l.ArticleID]
		if !ok {
			continue
		}
		qty, err := decimal.New(int64(l.Quantity), 0)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		cost, err := price.Mul(qty)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(cost)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
	}

	return total.Round(2), nil
}
