package producer

import (
	"context"
	"time"

	"centraljuan-hris/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const drainBatchSize = 50

// ProcessOutboxEvents polls the outbox on pollInterval and relays due
// events to Kafka until ctx is cancelled. Events that fail to publish are
// marked failed and picked up again once their backoff elapses.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	log := logger.Named("kafka.producer.worker")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			drainOnce(ctx, repo, writer, log)
		}
	}
}

func drainOnce(ctx context.Context, repo kafka.OutboxRepository, writer *kafkago.Writer, log *zap.Logger) {
	events, err := repo.ListPending(ctx, drainBatchSize)
	if err != nil {
		log.Error("list pending outbox events failed", zap.Error(err))
		return
	}
	if len(events) == 0 {
		return
	}

	sent := 0
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			log.Error("publish outbox event failed", append(fields, zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox failed errored", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		// If MarkSent fails here the event gets republished next tick;
		// consumers must stay idempotent on redelivery.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			continue
		}
		sent++
	}

	log.Info("outbox batch drained",
		zap.Int("picked_up", len(events)),
		zap.Int("sent", sent),
	)
}
