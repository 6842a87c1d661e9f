package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/smolin/riskgate/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	flags, err := NewRedisFlags(ctx, cfg.RedisAddress, "")
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	producer, err := NewProducer(cfg.KafkaBrokers, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer producer.Close()

	converter := NewConverter(repository, cfg.ReportingCurrency)
	builder := NewInquiryBuilder(converter, NewPaymentRegistry(), repository, NewSessionBuilder(), flags, cfg, sugaredLogger)
	scoring := NewScoringClient(sugaredLogger, cfg.ScoringAddress, cfg.ScoringAPIKey)
	decline := NewDeclineEngine(repository, NewMessageManager(), cfg, sugaredLogger)
	service := NewService(repository, builder, scoring, decline, sugaredLogger)

	workflow, err := NewWorkflow(cfg, service, flags, producer, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	sugaredLogger.Infof("running %s scoring workflow", workflow.Mode)

	consumer, err := NewOrderUpdateConsumer(cfg.KafkaBrokers, repository, service, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer consumer.Close()
	go consumer.Run(ctx)

	handlers := NewHandlers(repository, decline, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	api.Post("/events", handlers.Events)
	api.Get("/health", handlers.Health)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
