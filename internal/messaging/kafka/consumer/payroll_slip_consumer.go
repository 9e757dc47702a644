package consumer

import (
	"context"
	"encoding/json"

	"go-staffpay/internal/events"
	"go-staffpay/internal/payroll"

	"go.uber.org/zap"
)

// ConsumePayrollSlipRequested turns slip requests into slip ready events.
// Messages that fail validation are committed and dropped; other failures
// are left uncommitted so the group redelivers them.
func ConsumePayrollSlipRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_slip")
	log.Info("payroll slip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll slip consumer stopped")
				return
			}
			log.Error("fetch payroll slip message failed", zap.Error(err))
			continue
		}

		var event events.SlipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll slip event failed", zap.Error(err))
			commitSkipped(ctx, reader, msg, log)
			continue
		}

		queued, err := payrollService.PublishSlips(ctx, event)
		if err != nil {
			if isPermanent(err) {
				log.Warn("payroll slip request rejected, skipping",
					zap.Int("year", event.Year),
					zap.Int("month", event.Month),
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
				commitSkipped(ctx, reader, msg, log)
				continue
			}

			log.Error("publish payroll slips failed",
				zap.Int("year", event.Year),
				zap.Int("month", event.Month),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll slip message failed", zap.Error(err))
			continue
		}

		log.Info("payroll slips queued",
			zap.Int("year", event.Year),
			zap.Int("month", event.Month),
			zap.Int("count", queued),
			zap.String("request_id", event.RequestID),
		)
	}
}
