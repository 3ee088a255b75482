package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	MySQLDSN          string        `envconfig:"MYSQL_DSN" default:"root:root@tcp(localhost:3306)/fooddelivery?parseTime=true"`
	RedisAddr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	KafkaBrokers      string        `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	PaymentGatewayURL string        `envconfig:"PAYMENT_GATEWAY_URL" default:"http://localhost:9090"`
	MenuCacheTTL      time.Duration `envconfig:"MENU_CACHE_TTL" default:"30s"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
