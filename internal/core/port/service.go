package port

import (
	"context"

	"github.com/MikeRez0/checkout/internal/core/domain"
)

// A nil result with a nil error means "nothing found" or "nothing created";
// it is never reported as an error.

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*domain.Article, error)
	ListArticlesByIDs(ctx context.Context, req domain.MultipleIDRequest) ([]*domain.Article, error)
	CreateArticles(ctx context.Context, reqs []domain.CreateArticleRequest) ([]*domain.Article, error)
	CreateArticle(ctx context.Context, req domain.CreateArticleRequest) (*domain.Article, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, req domain.IDRequest) (*domain.OrderView, error)
	ChangeStatus(ctx context.Context, req domain.IDRequest, status domain.OrderStatus) (bool, error)
	DeleteOrder(ctx context.Context, req domain.IDRequest) (bool, error)
}

type PaymentService interface {
	GetPayment(ctx context.Context, req domain.IDRequest) (*domain.Payment, error)
	CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)
}
