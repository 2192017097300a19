// Package sink holds the destinations a seeding run can write records to.
package sink

import (
	"context"
	"fmt"

	"dishseed/config"
	"dishseed/models"
)

// Sink accepts one record at a time. Implementations must be safe for concurrent use.
type Sink interface {
	Submit(ctx context.Context, r models.Record) error
	Close() error
}

// New builds the sink selected by conf.Sink.Kind.
func New(conf config.Config) (Sink, error) {
	switch conf.Sink.Kind {
	case config.SinkHTTP, "":
		return NewHTTP(conf.Sink.HTTP.URL, conf.Seeder.MaxConcurrency, conf.Sink.HTTP.RequestTimeout), nil
	case config.SinkKafka:
		return NewKafka(conf.Sink.Kafka.Brokers, conf.Sink.Kafka.Topic, conf.Sink.Kafka.WriteTimeOutSec), nil
	case config.SinkPostgres:
		p, err := NewPostgres(conf.Sink.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.SinkRedis:
		return NewRedis(conf.Sink.Redis.Addr, conf.Sink.Redis.Key), nil
	}
	return nil, fmt.Errorf("unknown sink kind %q", conf.Sink.Kind)
}
