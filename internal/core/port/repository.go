package port

import (
	"context"

	"github.com/MikeRez0/checkout/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type ArticleRepository interface {
	ListArticles(ctx context.Context) ([]*domain.Article, error)
	ListArticlesByIDs(ctx context.Context, ids []int64) ([]*domain.Article, error)
	CreateArticles(ctx context.Context, articles []*domain.Article) ([]*domain.Article, error)
}

type OrderRepository interface {
	// CreateOrder stores the order header together with its lines.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ReadPayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
}

type Repository interface {
	ArticleRepository
	OrderRepository
	PaymentRepository
}
