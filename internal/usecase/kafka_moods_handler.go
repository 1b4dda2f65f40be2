package usecase

import (
	"context"
	"encoding/json"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	pkgkafka "MarketMood/pkg/kafka"
)

// KafkaMoodsHandler consumes published mood events and writes them to the
// durable store. Used when the backend runs in kafka mode.
type KafkaMoodsHandler struct {
	topic   string
	store   domrepo.MoodStore
	metrics domrepo.Metrics
}

func NewKafkaMoodsHandler(topic string, store domrepo.MoodStore, metrics domrepo.Metrics) *KafkaMoodsHandler {
	return &KafkaMoodsHandler{topic: topic, store: store, metrics: metrics}
}

func (h *KafkaMoodsHandler) Topic() string { return h.topic }

func (h *KafkaMoodsHandler) Handle(ctx context.Context, b []byte) error {
	var m models.DailyMood
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	start := time.Now()
	if err := h.store.Upsert(ctx, &m); err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordLatency("ch_insert_seconds", time.Since(start).Seconds())
	h.metrics.RecordMoodStored("clickhouse", m.Symbol)
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaMoodsHandler)(nil)
