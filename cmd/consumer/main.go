package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-backoffice/config"
	"travel-backoffice/config/sqlite"
	bookingConsumer "travel-backoffice/internal/booking/delivery/rabbitmq"
	bookingRepo "travel-backoffice/internal/booking/repository/sqlite"
	bookingUC "travel-backoffice/internal/booking/usecase"
	invoiceRepo "travel-backoffice/internal/invoice/repository/sqlite"
	invoiceUC "travel-backoffice/internal/invoice/usecase"
	paymentRepo "travel-backoffice/internal/payment/repository/sqlite"
	paymentUC "travel-backoffice/internal/payment/usecase"
	"travel-backoffice/pkg/gcalendar"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/rabbitmq"
)

// main is the entry point for the ingest consumer.
// It applies booking, invoice and payment events from RabbitMQ to the SQLite store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	// Infrastructure
	db, err := sqlite.Connect(ctx, sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		return
	}
	defer sqlite.Disconnect(db)

	if cfg.RabbitMQ.URL == "" {
		logger.Error(ctx, "RABBITMQ_URL (or AMQP_URL) is required")
		return
	}
	broker, err := rabbitmq.Connect(rabbitmq.Config{
		URL:      cfg.RabbitMQ.URL,
		Exchange: cfg.RabbitMQ.Exchange,
		Queue:    cfg.RabbitMQ.Queue,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer broker.Close()

	// Optional Google Calendar
	var calendar bookingUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
		}
	}

	// UseCases
	paymentU := paymentUC.New(paymentRepo.New(db, logger), logger)
	invoiceU := invoiceUC.New(invoiceRepo.New(db, logger), paymentU, logger)
	bookingU := bookingUC.New(bookingRepo.New(db, logger), invoiceU, paymentU, calendar, logger)

	consumer := bookingConsumer.New(logger, bookingU, invoiceU, paymentU)

	logger.Infof(ctx, "Consuming %s from exchange %s", cfg.RabbitMQ.Queue, cfg.RabbitMQ.Exchange)
	if err := consumer.Run(ctx, broker); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Consumer stopped: ", err)
		return
	}

	logger.Info(context.Background(), "Consumer service stopped gracefully")
}
