package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-staffpay/internal/events"
	"go-staffpay/internal/messaging/kafka/consumer"
	"go-staffpay/internal/payroll"
	payrollerrors "go-staffpay/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// scriptedReader replays messages then cancels the context once drained.
type scriptedReader struct {
	msgs      []kafkago.Message
	cancel    context.CancelFunc
	committed []kafkago.Message
	commitErr error
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakePayrollService struct {
	payroll.Service
	publishFn func(ctx context.Context, event events.SlipRequestedEvent) (int, error)
}

func (f *fakePayrollService) PublishSlips(ctx context.Context, event events.SlipRequestedEvent) (int, error) {
	return f.publishFn(ctx, event)
}

func slipMessage(t *testing.T, offset int64, event events.SlipRequestedEvent) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Topic: events.PayrollSlipRequestedTopic, Offset: offset, Value: raw}
}

func TestConsumePayrollSlipRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			slipMessage(t, 1, events.SlipRequestedEvent{Year: 2025, Month: 1}),
			{Offset: 2, Value: []byte("{not json")},
			slipMessage(t, 3, events.SlipRequestedEvent{Year: 2025, Month: 13}),
			slipMessage(t, 4, events.SlipRequestedEvent{Year: 2025, Month: 2}),
		},
	}

	var seen []int
	svc := &fakePayrollService{
		publishFn: func(ctx context.Context, event events.SlipRequestedEvent) (int, error) {
			seen = append(seen, event.Month)
			switch event.Month {
			case 13:
				return 0, payrollerrors.ErrInvalidPeriod
			case 2:
				return 0, errors.New("database unavailable")
			}
			return 3, nil
		},
	}

	consumer.ConsumePayrollSlipRequested(ctx, reader, svc, zap.NewNop())

	assert.Equal(t, []int{1, 13, 2}, seen)

	var offsets []int64
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	// transient failure on offset 4 stays uncommitted
	assert.Equal(t, []int64{1, 2, 3}, offsets)
}

type fakeInvalidator struct {
	locations []string
	err       error
}

func (f *fakeInvalidator) InvalidateOptions(ctx context.Context, location string) error {
	f.locations = append(f.locations, location)
	return f.err
}

func TestConsumeStaffLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	raw, err := json.Marshal(events.StaffLifecycleEvent{
		EventType: events.EventStaffArchived,
		StaffID:   "s-1",
		Location:  "Big Shop",
	})
	require.NoError(t, err)

	reader := &scriptedReader{
		cancel: cancel,
		msgs:   []kafkago.Message{{Offset: 7, Value: raw}},
	}
	cache := &fakeInvalidator{}

	consumer.ConsumeStaffLifecycle(ctx, reader, cache, zap.NewNop())

	assert.Equal(t, []string{"Big Shop"}, cache.locations)
	require.Len(t, reader.committed, 1)
	assert.Equal(t, int64(7), reader.committed[0].Offset)
}

func TestConsumePayrollSlipRequested_CommitFailureIsLogged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{{
			Offset:  9,
			Value:   []byte("{not json"),
			Headers: []kafkago.Header{{Key: "request_id", Value: []byte("rid-9")}},
		}},
		commitErr: errors.New("coordinator not available"),
	}
	core, logs := observer.New(zapcore.WarnLevel)

	consumer.ConsumePayrollSlipRequested(ctx, reader, &fakePayrollService{}, zap.New(core))

	entries := logs.FilterMessage("commit skipped message failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "rid-9", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(9), entries[0].ContextMap()["offset"])
}
