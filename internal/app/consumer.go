package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"worknest/internal/config"
	"worknest/internal/events"
	"worknest/internal/messaging/kafka/consumer"
	"worknest/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer starts the notification consumer: it drains the decision
// topic and sends the requester and approver emails.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	var mailer notification.Mailer
	if cfg.SMTPAddr != "" {
		mailer = notification.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, nil)
	} else {
		// Without an SMTP endpoint the mails land in the log, which is
		// enough for local runs.
		mailer = notification.NewLogMailer(zap.L())
	}
	notificationService := notification.NewService(mailer)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.RequestDecisionTopic,
		GroupID:        "worknest-notification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRequestDecisions(ctx, reader, notificationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
