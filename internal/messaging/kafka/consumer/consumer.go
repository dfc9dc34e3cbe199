package consumer

import (
	"context"
	"encoding/json"

	"worknest/internal/events"
	"worknest/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRequestDecisions drains the decision topic and hands each event to
// the notification service. Messages are committed only after delivery, so
// a crashed send is retried (at-least-once; the mails are idempotent to
// resend).
func ConsumeRequestDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_decision")
	log.Info("request decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request decision consumer stopped")
				return
			}
			log.Error("fetch request decision message failed", zap.Error(err))
			continue
		}

		var event events.RequestDecisionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.Notify(ctx, event); err != nil {
			log.Error("send decision notification failed",
				zap.String("request_id", event.RequestID),
				zap.String("action", event.Action),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request decision message failed", zap.Error(err))
			continue
		}

		log.Info("decision notification delivered",
			zap.String("request_id", event.RequestID),
			zap.String("action", event.Action),
			zap.String("wfh_date", event.WfhDate),
		)
	}
}
