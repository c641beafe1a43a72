package http

import (
	"net/http"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.PaymentService
}

func NewPaymentHandler(service port.PaymentService, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentResponse struct {
	ID      int64           `json:"id"`
	OrderID int64           `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Status  string          `json:"status"`
}

func newPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:      p.ID,
		OrderID: p.OrderID,
		Amount:  p.Amount,
		Method:  string(p.Method),
		Status:  string(p.Status),
	}
}

// GetPayment godoc
//
//	@Summary	Get a payment
//	@Tags		payment
//	@Produce	json
//	@Param		id	query		int	true	"Payment id"
//	@Success	200	{object}	paymentResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/payment [get]
func (ph *PaymentHandler) GetPayment(ctx *gin.Context) {
	query := idQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ph.handleBindError(ctx, err)
		return
	}

	payment, err := ph.service.GetPayment(ctx.Request.Context(), domain.IDRequest{ID: query.ID})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	if payment == nil {
		ph.handleError(ctx, domain.ErrDataNotFound)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

type createPaymentRequest struct {
	OrderID int64   `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
}

// CreatePayment godoc
//
//	@Summary	Create a payment for an existing order
//	@Tags		payment
//	@Accept		json
//	@Produce	json
//	@Param		payment	body		createPaymentRequest	true	"Payment"
//	@Success	201		{object}	paymentResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/payment [post]
func (ph *PaymentHandler) CreatePayment(ctx *gin.Context) {
	req := createPaymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleBindError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleBindError(ctx, err)
		return
	}

	payment, err := ph.service.CreatePayment(ctx.Request.Context(), domain.CreatePaymentRequest{
		OrderID: req.OrderID,
		Amount:  amount,
		Method:  domain.PaymentMethod(req.Method),
		Status:  domain.PaymentStatus(req.Status),
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	if payment == nil {
		ph.handleError(ctx, domain.ErrOrderNotFound)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}
