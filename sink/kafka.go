package sink

import (
	"context"
	"time"

	"dishseed/models"
	"github.com/segmentio/kafka-go"
)

// Kafka publishes every record to a topic, keyed by category.
type Kafka struct {
	writer *kafka.Writer
}

func NewKafka(brokers []string, topic string, writeTimeOutSec int) *Kafka {
	return &Kafka{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: time.Duration(writeTimeOutSec) * time.Second,
		// one record per call, do not wait for a batch to fill up
		BatchSize:              1,
		AllowAutoTopicCreation: true,
	}}
}

func ToKafkaMessage(r models.Record) kafka.Message {
	return kafka.Message{Key: []byte(r.Category), Value: r.JSON()}
}

func (k *Kafka) Submit(ctx context.Context, r models.Record) error {
	return k.writer.WriteMessages(ctx, ToKafkaMessage(r))
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
