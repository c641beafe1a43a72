package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/checkout/internal/adapter/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.App,
	articleHandler *ArticleHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	log *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	m := newMetrics()

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), tracing(), requestLogger(log), m.middleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "API is working"})
	})
	router.GET("/metrics", gin.WrapH(m.handler()))

	articles := router.Group("/articles")
	{
		articles.GET("", articleHandler.ListArticles)
		articles.GET("/getByIds", articleHandler.ListArticlesByIDs)
		articles.POST("", articleHandler.CreateArticles)
		articles.POST("/single", articleHandler.CreateArticle)
	}

	order := router.Group("/order")
	{
		order.GET("", orderHandler.GetOrder)
		order.POST("", orderHandler.CreateOrder)
		order.PUT("", orderHandler.ChangeStatus)
		order.DELETE("", orderHandler.DeleteOrder)
	}

	payment := router.Group("/payment")
	{
		payment.GET("", paymentHandler.GetPayment)
		payment.POST("", paymentHandler.CreatePayment)
	}

	return &Router{router}, nil
}

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is done, then shuts it down letting
// in-flight requests finish.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
