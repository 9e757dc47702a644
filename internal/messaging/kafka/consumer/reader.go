package consumer

import (
	"context"
	"errors"
	"net/http"

	"go-staffpay/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// isPermanent reports whether retrying the message can never succeed.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusBadRequest && appErr.HTTPStatus < http.StatusInternalServerError
	}
	return false
}

// requestID reads the request id header set by the outbox publisher.
func requestID(msg kafkago.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			return string(h.Value)
		}
	}
	return ""
}

// commitSkipped commits a message that will not be processed. A failed
// commit only means the message is delivered again.
func commitSkipped(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Warn("commit skipped message failed",
			zap.Int64("offset", msg.Offset),
			zap.String("request_id", requestID(msg)),
			zap.Error(err),
		)
	}
}
