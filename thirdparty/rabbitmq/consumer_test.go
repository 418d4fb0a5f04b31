package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func TestHandle(t *testing.T) {
	event := model.OrderPlacedEvent{
		OrderID:      "o1",
		CustomerName: "Budi",
		TotalAmount:  42000,
		PlacedAt:     time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        []byte
		handlerErr  error
		wantCalled  bool
		wantAcked   int
		wantNacked  int
		wantRequeue bool
	}{
		{name: "success is acked", body: body, wantCalled: true, wantAcked: 1},
		{name: "handler failure is requeued", body: body, handlerErr: errors.New("telegram down"), wantCalled: true, wantNacked: 1, wantRequeue: true},
		{name: "malformed payload is dropped", body: []byte("{not json"), wantAcked: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			msg := amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: tt.body}

			called := false
			handle(context.Background(), msg, func(ctx context.Context, got model.OrderPlacedEvent) error {
				called = true
				assert.Equal(t, event.OrderID, got.OrderID)
				assert.Equal(t, event.TotalAmount, got.TotalAmount)
				assert.True(t, event.PlacedAt.Equal(got.PlacedAt))
				return tt.handlerErr
			})

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAcked, ack.acked)
			assert.Equal(t, tt.wantNacked, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "mq", Port: 5672, User: "guest", Password: "guest"}
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.dsn())
}
