package consumer

import (
	"context"
	"encoding/json"

	"go-staffpay/internal/events"

	"go.uber.org/zap"
)

// OptionsInvalidator drops cached staff pick lists for a location.
type OptionsInvalidator interface {
	InvalidateOptions(ctx context.Context, location string) error
}

func ConsumeStaffLifecycle(
	ctx context.Context,
	reader MessageReader,
	cache OptionsInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.staff_lifecycle")
	log.Info("staff lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("staff lifecycle consumer stopped")
				return
			}
			log.Error("fetch staff lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.StaffLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode staff lifecycle event failed", zap.Error(err))
			commitSkipped(ctx, reader, msg, log)
			continue
		}

		if err := cache.InvalidateOptions(ctx, event.Location); err != nil {
			log.Error("invalidate staff options failed",
				zap.String("staff_id", event.StaffID),
				zap.String("location", event.Location),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit staff lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("staff options invalidated",
			zap.String("event_type", event.EventType),
			zap.String("staff_id", event.StaffID),
			zap.String("location", event.Location),
		)
	}
}
