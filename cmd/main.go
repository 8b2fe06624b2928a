package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/KIBUTI-SOFTWARE/swahili-api/docs"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/app"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/audit"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/config"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/gateway"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/handler"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/notification"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/postgres"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/repo"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/service"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/cache"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm"
)

// @title           Swahili Marketplace Order API
// @version         1.0
// @description     Order lifecycle and payment reconciliation service.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productStore := repo.NewProductStore(db)
	userStore := repo.NewUserStore(db)
	notificationStore := repo.NewNotificationStore(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	zenopay := gateway.NewZenopayClient(logger, conf.Zenopay)
	expo := notification.NewExpoClient(conf.Expo)
	notifier := notification.NewDispatcher(logger, notificationStore, expo)
	auditLog := audit.NewKafkaLog(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, productStore, userStore, zenopay, notifier, orderCache)
	webhookService := service.NewWebhookService(logger, txManager, orderRepo, productStore, userStore, notifier, auditLog, orderCache)

	orderHandler := handler.NewOrderHandler(logger, orderService)
	webhookHandler := handler.NewWebhookHandler(logger, webhookService, conf.Zenopay.WebhookSecret)

	app := app.New(logger, conf)
	app.SetHttpHandlers(orderHandler, webhookHandler)
	app.SetClosers(auditLog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
