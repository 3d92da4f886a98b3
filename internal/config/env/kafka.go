package envconfig

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                 bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                 []string `env:"KAFKA_BROKERS" envSeparator:","`
	CatalogEventsTopicName  string   `env:"CATALOG_EVENTS_TOPIC_NAME" envDefault:"catalog.events"`
	CatalogEventsConsumerID string   `env:"CATALOG_EVENTS_CONSUMER_GROUP_ID" envDefault:"catalog-events-audit"`
	AuditEnabled            bool     `env:"CATALOG_EVENTS_AUDIT_ENABLED" envDefault:"true"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool              { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string          { return cfg.raw.Brokers }
func (cfg *kafka) CatalogEventsTopic() string { return cfg.raw.CatalogEventsTopicName }
func (cfg *kafka) ConsumerGroupID() string    { return cfg.raw.CatalogEventsConsumerID }
func (cfg *kafka) AuditEnabled() bool         { return cfg.raw.Enabled && cfg.raw.AuditEnabled }

func (cfg *kafka) CatalogEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) CatalogEventsConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
