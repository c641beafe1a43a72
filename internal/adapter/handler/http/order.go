package http

import (
	"net/http"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderLineDto struct {
	ArticleID int64 `json:"articleId"`
	Quantity  int   `json:"quantity"`
}

type OrderResp struct {
	ID        int64            `json:"id"`
	Status    string           `json:"status"`
	Articles  []orderLineDto   `json:"articles"`
	TotalCost *decimal.Decimal `json:"totalCost,omitempty"`
}

func newOrderLines(lines []domain.OrderLine) []orderLineDto {
	result := make([]orderLineDto, 0, len(lines))
	for _, l := range lines {
		result = append(result, orderLineDto{ArticleID: l.ArticleID, Quantity: l.Quantity})
	}
	return result
}

// GetOrder godoc
//
//	@Summary	Get an order with its total cost at current prices
//	@Tags		order
//	@Produce	json
//	@Param		id	query		int	true	"Order id"
//	@Success	200	{object}	OrderResp
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/order [get]
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	query := idQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		oh.handleBindError(ctx, err)
		return
	}

	view, err := oh.service.GetOrder(ctx.Request.Context(), domain.IDRequest{ID: query.ID})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if view == nil {
		oh.handleError(ctx, domain.ErrDataNotFound)
		return
	}

	total := view.TotalCost
	oh.handleSuccess(ctx, OrderResp{
		ID:        view.ID,
		Status:    string(view.Status),
		Articles:  newOrderLines(view.Lines),
		TotalCost: &total,
	})
}

type createOrderRequest struct {
	Articles []orderLineDto `json:"articles"`
}

// CreateOrder godoc
//
//	@Summary	Create an order from article ids and quantities
//	@Tags		order
//	@Accept		json
//	@Produce	json
//	@Param		order	body		createOrderRequest	true	"Requested articles"
//	@Success	201		{object}	OrderResp
//	@Failure	400		{object}	errorResponse
//	@Failure	422		{object}	errorResponse
//	@Router		/order [post]
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleBindError(ctx, err)
		return
	}

	lines := make([]domain.OrderLineRequest, 0, len(req.Articles))
	for _, a := range req.Articles {
		lines = append(lines, domain.OrderLineRequest{ArticleID: a.ArticleID, Quantity: a.Quantity})
	}

	order, err := oh.service.CreateOrder(ctx.Request.Context(), domain.CreateOrderRequest{Lines: lines})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if order == nil {
		oh.handleError(ctx, domain.ErrUnknownArticles)
		return
	}

	oh.handleSuccessWithStatus(ctx, OrderResp{
		ID:       order.ID,
		Status:   string(order.Status),
		Articles: newOrderLines(order.Lines),
	}, http.StatusCreated)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatus godoc
//
//	@Summary	Overwrite the status of an order
//	@Tags		order
//	@Accept		json
//	@Produce	json
//	@Param		id		query		int					true	"Order id"
//	@Param		status	body		changeStatusRequest	true	"New status"
//	@Success	200		{boolean}	boolean
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/order [put]
func (oh *OrderHandler) ChangeStatus(ctx *gin.Context) {
	query := idQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		oh.handleBindError(ctx, err)
		return
	}
	req := changeStatusRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleBindError(ctx, err)
		return
	}

	ok, err := oh.service.ChangeStatus(ctx.Request.Context(), domain.IDRequest{ID: query.ID}, domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if !ok {
		oh.handleError(ctx, domain.ErrDataNotFound)
		return
	}

	oh.handleSuccess(ctx, true)
}

// DeleteOrder godoc
//
//	@Summary	Delete an order and its lines
//	@Tags		order
//	@Produce	json
//	@Param		id	query		int	true	"Order id"
//	@Success	200	{boolean}	boolean
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/order [delete]
func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	query := idQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		oh.handleBindError(ctx, err)
		return
	}

	ok, err := oh.service.DeleteOrder(ctx.Request.Context(), domain.IDRequest{ID: query.ID})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if !ok {
		oh.handleError(ctx, domain.ErrDataNotFound)
		return
	}

	oh.handleSuccess(ctx, true)
}
