package repository

import (
	"context"
	"fmt"

	"MarketMood/internal/domain/models"
	pkgkafka "MarketMood/pkg/kafka"
	applogger "MarketMood/pkg/logger"
)

// KafkaMoodPublisher implements Publisher on top of a Kafka producer.
// Messages are keyed by symbol so per-symbol ordering holds with a hash
// balancer.
type KafkaMoodPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	l        *applogger.Logger
}

func NewKafkaMoodPublisher(producer *pkgkafka.Producer, topic string) *KafkaMoodPublisher {
	return &KafkaMoodPublisher{producer: producer, topic: topic}
}

// SetLogger injects a structured logger.
func (p *KafkaMoodPublisher) SetLogger(l *applogger.Logger) { p.l = l }

func (p *KafkaMoodPublisher) Publish(ctx context.Context, m *models.DailyMood) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(m.Symbol), m); err != nil {
		if p.l != nil {
			p.l.Error("kafka mood publish error",
				applogger.String("symbol", m.Symbol),
				applogger.String("date", m.Date),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("publish mood: %w", err)
	}
	return nil
}

func (p *KafkaMoodPublisher) PublishBatch(ctx context.Context, moods []*models.DailyMood) error {
	if len(moods) == 0 {
		return nil
	}

	msgs := make([]pkgkafka.Message, 0, len(moods))
	for _, m := range moods {
		msgs = append(msgs, pkgkafka.Message{Key: []byte(m.Symbol), Value: m})
	}

	if err := p.producer.PublishBatch(ctx, p.topic, msgs); err != nil {
		if p.l != nil {
			p.l.Error("kafka mood batch publish error",
				applogger.Int("count", len(moods)),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("publish mood batch: %w", err)
	}
	return nil
}

func (p *KafkaMoodPublisher) Close() error {
	return p.producer.Close()
}
