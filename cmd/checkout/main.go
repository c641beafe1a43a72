package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/checkout/internal/adapter/config"
	"github.com/MikeRez0/checkout/internal/adapter/handler/http"
	"github.com/MikeRez0/checkout/internal/adapter/logger"
	"github.com/MikeRez0/checkout/internal/adapter/storage"
	"github.com/MikeRez0/checkout/internal/adapter/storage/repository"
	"github.com/MikeRez0/checkout/internal/core/service"
	"github.com/MikeRez0/checkout/internal/core/validation"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	defer db.Close()

	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	validator, err := validation.New()
	if err != nil {
		log.Error("validator creating error", zap.Error(err))
		return
	}

	articleSvc, err := service.NewArticleService(repo, validator, log.Named("Article service"))
	if err != nil {
		log.Error("article service creating error", zap.Error(err))
		return
	}
	orderSvc, err := service.NewOrderService(repo, articleSvc, validator, log.Named("Order service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	paymentSvc, err := service.NewPaymentService(repo, orderSvc, validator, log.Named("Payment service"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	articleHandler, err := http.NewArticleHandler(articleSvc, log.Named("Article handler"))
	if err != nil {
		log.Error("article handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orderSvc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(paymentSvc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.App, articleHandler, orderHandler, paymentHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("starting server", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
	log.Info("server stopped")
}
