package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string
}

// TracingConfig holds OpenTelemetry exporter configuration
type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
}

// KafkaConfig holds activity event publishing configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config holds the boycott service configuration
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	GRPCPort       string
	RequestTimeout time.Duration
	Mongo          MongoConfig
	Tracing        TracingConfig
	Kafka          KafkaConfig
}

// IsDevelopment reports whether console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load loads the service configuration from the environment
func Load() *Config {
	return &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "boycott-service"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("PORT", "5000"),
		GRPCPort:       getEnv("GRPC_PORT", ""),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 0),
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "test"),
		},
		Tracing: TracingConfig{
			Enabled:        getBool("TRACING_ENABLED", false),
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "boycott-activity"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
