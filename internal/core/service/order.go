package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/MikeRez0/checkout/internal/core/validation"
	"github.com/govalues/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type OrderService struct {
	repo      port.OrderRepository
	articles  port.ArticleService
	validator *validation.Validator
	logger    *zap.Logger
}

func NewOrderService(repo port.OrderRepository, articles port.ArticleService,
	validator *validation.Validator, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:      repo,
		articles:  articles,
		validator: validator,
		logger:    logger,
	}, nil
}

// CreateOrder creates an open order with one line per requested article that
// exists. Lines for unknown articles are dropped. If no requested article
// exists, nothing is stored and the result is nil.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return nil, err
	}

	// the last quantity requested for an article wins
	quantities := make(map[int64]int, len(req.Lines))
	ids := make([]int64, 0, len(req.Lines))
	for _, l := range req.Lines {
		if _, ok := quantities[l.ArticleID]; !ok {
			ids = append(ids, l.ArticleID)
		}
		quantities[l.ArticleID] = l.Quantity
	}

	known, err := s.articles.ListArticlesByIDs(ctx, domain.MultipleIDRequest{IDs: ids})
	if err != nil {
		return nil, err
	}
	if len(known) == 0 {
		s.logger.Warn("No articles found for the provided ids", zap.Int64s("articleIds", ids))
		return nil, nil
	}

	order := &domain.Order{
		Status: domain.OrderStatusOpen,
		Lines:  make([]domain.OrderLine, 0, len(known)),
	}
	for _, a := range known {
		order.Lines = append(order.Lines, domain.OrderLine{
			ArticleID: a.ID,
			Quantity:  quantities[a.ID],
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int64("order.id", newOrder.ID))
	s.logger.Info("Created order",
		zap.Int64("orderId", newOrder.ID), zap.Int("lines", len(newOrder.Lines)))
	return newOrder, nil
}

// GetOrder returns the order with its total cost at current article prices,
// or nil if there is no such order.
func (s *OrderService) GetOrder(ctx context.Context, req domain.IDRequest) (*domain.OrderView, error) {
	ctx, span := tracer.Start(ctx, "OrderService.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", req.ID))

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return nil, err
	}

	order, err := s.repo.ReadOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Info("Can not find an order", zap.Int64("orderId", req.ID))
			return nil, nil
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Found an order", zap.Int64("orderId", req.ID))

	view := &domain.OrderView{
		ID:        order.ID,
		Status:    order.Status,
		Lines:     order.Lines,
		TotalCost: decimal.Zero,
	}
	if len(order.Lines) == 0 {
		view.Lines = []domain.OrderLine{}
		return view, nil
	}

	articles, err := s.articles.ListArticlesByIDs(ctx, domain.MultipleIDRequest{IDs: order.ArticleIDs()})
	if err != nil {
		return nil, err
	}

	total, err := domain.TotalCost(order.Lines, articles)
	if err != nil {
		s.logger.Error("Total cost", zap.Int64("orderId", req.ID), zap.Error(err))
		return nil, fmt.Errorf("order %d total cost: %w", req.ID, err)
	}
	view.TotalCost = total

	return view, nil
}

// ChangeStatus overwrites the order status with any valid status. It reports
// false if the order does not exist.
func (s *OrderService) ChangeStatus(ctx context.Context, req domain.IDRequest, status domain.OrderStatus) (bool, error) {
	ctx, span := tracer.Start(ctx, "OrderService.ChangeStatus")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", req.ID), attribute.String("order.status", string(status)))

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return false, err
	}
	if err := checkRequest(s.validator, s.logger, domain.OrderStatusRequest{Status: status}); err != nil {
		return false, err
	}

	order, err := s.repo.ReadOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return false, nil
		}
		s.logger.Error("Read order", zap.Error(err))
		return false, err
	}

	order.Status = status

	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err = s.repo.UpdateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return false, nil
		}
		s.logger.Error("Update order", zap.Error(err))
		return false, err
	}

	s.logger.Info("Changed order status",
		zap.Int64("orderId", req.ID), zap.String("status", string(status)))
	return true, nil
}

// DeleteOrder removes the order and its lines. It reports false if the order
// does not exist.
func (s *OrderService) DeleteOrder(ctx context.Context, req domain.IDRequest) (bool, error) {
	ctx, span := tracer.Start(ctx, "OrderService.DeleteOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", req.ID))

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return false, err
	}

	err := s.repo.DeleteOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return false, nil
		}
		s.logger.Error("Delete order", zap.Error(err))
		return false, err
	}

	s.logger.Info("Deleted order", zap.Int64("orderId", req.ID))
	return true, nil
}
