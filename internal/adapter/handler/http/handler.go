package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MikeRez0/checkout/internal/adapter/logger"
	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrEmptyArticleList: http.StatusBadRequest,
	domain.ErrUnknownArticles:  http.StatusUnprocessableEntity,
	domain.ErrOrderNotFound:    http.StatusNotFound,
}

type errorResponse struct {
	Message       string `json:"message"`
	DetailMessage string `json:"detailMessage,omitempty"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) log(ctx *gin.Context) *zap.Logger {
	return logger.FromContext(ctx.Request.Context(), h.logger)
}

// handleBindError sends a 400 for a request that could not be decoded
func (h *Handler) handleBindError(ctx *gin.Context, err error) {
	h.log(ctx).Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{
		Message:       domain.ErrBadRequest.Error(),
		DetailMessage: err.Error(),
	})
}

// handleError sends the status mapped for err; validation errors list every violated rule
func (h *Handler) handleError(ctx *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		ctx.JSON(http.StatusBadRequest, errorResponse{
			Message:       "Validation failed for " + vErr.Request + ".",
			DetailMessage: strings.Join(vErr.Messages(), ", "),
		})
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.log(ctx).Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Message: "Internal server error!"})
		return
	}
	ctx.JSON(statusCode, errorResponse{Message: err.Error()})
}

// handleSuccessWithStatus sends data with the given status, or just the status when data is nil
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

type idQuery struct {
	ID int64 `form:"id"`
}
