package kafka

import (
	"context"
	"testing"
	"time"
)

type stubHandler struct{ topic string }

func (h stubHandler) Topic() string { return h.topic }

func (h stubHandler) Handle(context.Context, []byte) error { return nil }

func TestConsumerStopJoinsReadersBeforeClosingQueue(t *testing.T) {
	c, err := NewConsumer(
		WithConsumerBrokers([]string{"127.0.0.1:1"}),
		WithConsumerGroupID("test-group"),
		WithConsumerWorkers(2),
	)
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}
	c.RegisterHandler(stubHandler{topic: "daily-moods"})

	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Let the readers enter their read loop before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := c.Stop(ctx); err != nil {
		t.Errorf("repeated stop: %v", err)
	}
}
