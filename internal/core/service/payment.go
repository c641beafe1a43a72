package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/MikeRez0/checkout/internal/core/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type PaymentService struct {
	repo      port.PaymentRepository
	orders    port.OrderService
	validator *validation.Validator
	logger    *zap.Logger
}

func NewPaymentService(repo port.PaymentRepository, orders port.OrderService,
	validator *validation.Validator, logger *zap.Logger) (*PaymentService, error) {
	return &PaymentService{
		repo:      repo,
		orders:    orders,
		validator: validator,
		logger:    logger,
	}, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, req domain.IDRequest) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "PaymentService.GetPayment")
	defer span.End()
	span.SetAttributes(attribute.Int64("payment.id", req.ID))

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return nil, err
	}

	payment, err := s.repo.ReadPayment(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil
		}
		s.logger.Error("Read payment", zap.Error(err))
		return nil, err
	}

	return payment, nil
}

// CreatePayment stores a payment for an existing order. If the order does not
// exist, nothing is stored and the result is nil.
func (s *PaymentService) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "PaymentService.CreatePayment")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", req.OrderID))

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrder(ctx, domain.IDRequest{ID: req.OrderID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		s.logger.Warn("There is no order for the payment", zap.Int64("orderId", req.OrderID))
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payment, err := s.repo.CreatePayment(ctx, &domain.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  req.Status,
	})
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Created payment",
		zap.Int64("paymentId", payment.ID), zap.Int64("orderId", payment.OrderID))
	return payment, nil
}
