package domain

import "github.com/govalues/decimal"

// Inbound request shapes. The validate tags are the rule sets checked by the
// validation package before any request reaches storage.

type IDRequest struct {
	ID int64 `validate:"gt=0"`
}

type MultipleIDRequest struct {
	IDs []int64 `validate:"required,min=1,dive,gt=0"`
}

type CreateArticleRequest struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"gt=0"`
}

type CreateArticlesRequest struct {
	Articles []CreateArticleRequest `validate:"dive"`
}

type OrderLineRequest struct {
	ArticleID int64 `validate:"gt=0"`
	Quantity  int   `validate:"gte=0"`
}

type CreateOrderRequest struct {
	Lines []OrderLineRequest `validate:"required,min=1,dive"`
}

type OrderStatusRequest struct {
	Status OrderStatus `validate:"order_status"`
}

type CreatePaymentRequest struct {
	OrderID int64           `validate:"gt=0"`
	Amount  decimal.Decimal `validate:"gte=0"`
	Method  PaymentMethod   `validate:"payment_method"`
	Status  PaymentStatus   `validate:"payment_status"`
}
