package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "./config.yaml"

// sink kinds
const (
	SinkHTTP     = "http"
	SinkKafka    = "kafka"
	SinkPostgres = "postgres"
	SinkRedis    = "redis"
)

type Config struct {
	Seeder struct {
		TargetCount          int           `yaml:"targetCount"`
		MaxConcurrency       int           `yaml:"maxConcurrency"`
		MinBatchSize         int           `yaml:"minBatchSize"`
		MaxBatchSize         int           `yaml:"maxBatchSize"`
		MinSleep             time.Duration `yaml:"minSleep"`
		MaxSleep             time.Duration `yaml:"maxSleep"`
		DuplicateProbability float64       `yaml:"duplicateProbability"`
		Seed                 uint64        `yaml:"seed"` // 0 means seeded from the clock
	} `yaml:"seeder"`
	History struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"history"`
	Sink struct {
		Kind string `yaml:"kind"`
		HTTP struct {
			URL            string        `yaml:"url"`
			RequestTimeout time.Duration `yaml:"requestTimeout"` // 0 means no timeout
		} `yaml:"http"`
		Kafka struct {
			Brokers         []string `yaml:"brokers"`
			Topic           string   `yaml:"topic"`
			WriteTimeOutSec int      `yaml:"writeTimeOutSec"`
		} `yaml:"kafka"`
		Postgres struct {
			DSN string `yaml:"DSN"`
		} `yaml:"postgres"`
		Redis struct {
			Addr string `yaml:"addr"`
			Key  string `yaml:"key"`
		} `yaml:"redis"`
	} `yaml:"sink"`
	Dumps struct {
		DumpFile    string `yaml:"dumpFile"`
		MaxDumpSize int    `yaml:"maxDumpSize"` // in megabytes
		MaxBufSize  int    `yaml:"maxBufSize"`
	} `yaml:"dumps"`
	Report struct {
		ExcelFile string `yaml:"excelFile"`
	} `yaml:"report"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Stub struct {
		Addr        string  `yaml:"addr"`
		FailureRate float64 `yaml:"failureRate"`
	} `yaml:"stub"`
	Logging struct {
		LogPath  string `yaml:"logPath"`
		LogLevel string `yaml:"logLevel"` // possible options are: trace, debug, info, warn, error, fatal, panic
	} `yaml:"logging"`
}

// Default is used for every field config.yaml leaves out.
func Default() Config {
	var conf Config
	conf.Seeder.TargetCount = 30000
	conf.Seeder.MaxConcurrency = 10
	conf.Seeder.MinBatchSize = 25
	conf.Seeder.MaxBatchSize = 75
	conf.Seeder.MinSleep = 300 * time.Millisecond
	conf.Seeder.MaxSleep = 700 * time.Millisecond
	conf.Seeder.DuplicateProbability = 0.02
	conf.History.Capacity = 10000
	conf.Sink.Kind = SinkHTTP
	conf.Sink.HTTP.URL = "http://localhost:8080/api/v1/dishes"
	conf.Sink.Kafka.Topic = "dishes"
	conf.Sink.Kafka.WriteTimeOutSec = 10
	conf.Sink.Redis.Key = "dishes"
	conf.Dumps.MaxDumpSize = 64
	conf.Dumps.MaxBufSize = 100
	conf.Stub.Addr = ":8080"
	conf.Logging.LogLevel = "info"
	return conf
}

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
}

func ValidateConfig(conf Config) error {
	s := conf.Seeder
	if s.TargetCount <= 0 {
		return errors.New("wrong value for target count: must be >0")
	}
	if s.MaxConcurrency <= 0 {
		return errors.New("wrong value for max concurrency: must be >0")
	}
	if s.MinBatchSize <= 0 || s.MinBatchSize > s.MaxBatchSize {
		return fmt.Errorf("batch size range [%d, %d] is invalid: need 0 < min <= max", s.MinBatchSize, s.MaxBatchSize)
	}
	if s.MinSleep < 0 || s.MinSleep > s.MaxSleep {
		return fmt.Errorf("sleep range [%v, %v] is invalid: need 0 <= min <= max", s.MinSleep, s.MaxSleep)
	}
	if s.DuplicateProbability < 0 || s.DuplicateProbability > 1 {
		return errors.New("duplicate probability must be within [0, 1]")
	}
	if conf.History.Capacity <= 0 {
		return errors.New("history capacity must be >0")
	}
	switch conf.Sink.Kind {
	case SinkHTTP:
		if conf.Sink.HTTP.URL == "" {
			return errors.New("http sink requires url")
		}
		if conf.Sink.HTTP.RequestTimeout < 0 {
			return errors.New("request timeout must be >=0")
		}
	case SinkKafka:
		if len(conf.Sink.Kafka.Brokers) == 0 || conf.Sink.Kafka.Topic == "" {
			return errors.New("kafka sink requires brokers and topic")
		}
		if conf.Sink.Kafka.WriteTimeOutSec <= 0 {
			return errors.New("wrong value for write timeout: must be >0 seconds")
		}
	case SinkPostgres:
		if conf.Sink.Postgres.DSN == "" {
			return errors.New("postgres sink requires DSN")
		}
	case SinkRedis:
		if conf.Sink.Redis.Addr == "" || conf.Sink.Redis.Key == "" {
			return errors.New("redis sink requires addr and key")
		}
	default:
		return fmt.Errorf("unknown sink kind %q", conf.Sink.Kind)
	}
	if conf.Dumps.DumpFile != "" && (conf.Dumps.MaxDumpSize <= 0 || conf.Dumps.MaxBufSize <= 0) {
		return errors.New("all values in dumps section must be >0 when dumpFile is set")
	}
	if conf.Stub.FailureRate < 0 || conf.Stub.FailureRate > 1 {
		return errors.New("stub failure rate must be within [0, 1]")
	}
	if !logLevels[conf.Logging.LogLevel] {
		return fmt.Errorf("unknown logging level %q", conf.Logging.LogLevel)
	}
	return nil
}

// ParseConfig reads the yaml file at path on top of the defaults.
// A missing file is not an error: the defaults are used as is.
func ParseConfig(path string) (Config, error) {
	conf := Default()
	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return conf, ValidateConfig(conf)
	}
	if err != nil {
		return Config{}, err
	}
	if err = yaml.Unmarshal(file, &conf); err != nil {
		return Config{}, fmt.Errorf("cant unmarshall config: %w", err)
	}
	if err = ValidateConfig(conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}
