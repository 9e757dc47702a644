package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-staffpay/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepository struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
	limit   int
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	f.limit = limit
	return f.pending, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	messages []kafkago.Message
	failOn   string
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failOn {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPending(t *testing.T) {
	repo := &fakeOutboxRepository{pending: []kafka.OutboxEvent{
		{ID: "e-1", AggregateID: "s-1", Topic: "t", EventType: "a", RequestID: "rid", Payload: []byte(`{}`)},
		{ID: "e-2", AggregateID: "s-2", Topic: "t", EventType: "a", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failOn: "s-2"}

	sent, err := ProcessPending(context.Background(), repo, writer, zap.NewNop(), 25)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 25, repo.limit)
	assert.Equal(t, []string{"e-1"}, repo.sent)
	assert.Contains(t, repo.failed["e-2"], "broker unavailable")
	assert.Len(t, writer.messages, 1)
	assert.Equal(t, "t", writer.messages[0].Topic)
	assert.Equal(t, "request_id", writer.messages[0].Headers[2].Key)
	assert.Equal(t, "rid", string(writer.messages[0].Headers[2].Value))
}

func TestProcessPending_Empty(t *testing.T) {
	sent, err := ProcessPending(context.Background(), &fakeOutboxRepository{}, &fakeWriter{}, zap.NewNop(), 10)

	assert.NoError(t, err)
	assert.Zero(t, sent)
}
