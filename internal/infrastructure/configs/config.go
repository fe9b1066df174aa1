package configs

import (
	"fmt"
	"time"

	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Mongo    MongoConfig    `koanf:"mongo"`
	RabbitMQ RabbitMQConfig `koanf:"rabbitmq"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type HTTPConfig struct {
	Host           string        `koanf:"host"`
	Port           uint16        `koanf:"port"`
	AllowedOrigins []string      `koanf:"allowed_origins"`
	AllowedHeaders []string      `koanf:"allowed_headers"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
}

type MongoConfig struct {
	URI               string        `koanf:"uri"`
	Database          string        `koanf:"database"`
	ConnectionTimeout time.Duration `koanf:"connection_timeout"`
}

type RabbitMQConfig struct {
	URI string `koanf:"uri"`
}

type LoggerConfig struct {
	FilePath string `koanf:"file_path"`
	Encoding string `koanf:"encoding"`
	Level    string `koanf:"level"`
	Logger   string `koanf:"logger"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if one was found
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply defaults and environment variable overrides
	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 8080)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.allowed_origins", []string{"*"})
	setDefault(k, "http.allowed_headers", []string{"Content-Type", "Authorization"})

	// Mongo defaults
	setDefault(k, "mongo.uri", "mongodb://localhost:27017")
	setDefault(k, "mongo.database", "codernet")
	setDefault(k, "mongo.connection_timeout", 20*time.Second)

	// RabbitMQ defaults (empty URI disables event publishing)
	setDefault(k, "rabbitmq.uri", "")

	// Logger defaults
	setDefault(k, "logger.file_path", "./logs/")
	setDefault(k, "logger.encoding", "json")
	setDefault(k, "logger.level", "debug")
	setDefault(k, "logger.logger", "zap")
}

func applyEnvOverrides(k *koanf.Koanf) {
	// HTTP config from env
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if port := env.GetInt("HTTP_PORT", 0); port > 0 {
		k.Set("http.port", port)
	}
	if readTimeout := env.GetInt("HTTP_READ_TIMEOUT_SECONDS", 0); readTimeout > 0 {
		k.Set("http.read_timeout", time.Duration(readTimeout)*time.Second)
	}
	if writeTimeout := env.GetInt("HTTP_WRITE_TIMEOUT_SECONDS", 0); writeTimeout > 0 {
		k.Set("http.write_timeout", time.Duration(writeTimeout)*time.Second)
	}

	// Mongo config from env
	if uri := env.GetString("MONGODB_URI", ""); uri != "" {
		k.Set("mongo.uri", uri)
	}
	if database := env.GetString("MONGODB_DATABASE", ""); database != "" {
		k.Set("mongo.database", database)
	}
	if connectTimeout := env.GetInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 0); connectTimeout > 0 {
		k.Set("mongo.connection_timeout", time.Duration(connectTimeout)*time.Second)
	}

	// RabbitMQ config from env
	if uri := env.GetString("RABBITMQ_URI", ""); uri != "" {
		k.Set("rabbitmq.uri", uri)
	}

	// Logger config from env
	if filePath := env.GetString("LOGGER_FILE_PATH", ""); filePath != "" {
		k.Set("logger.file_path", filePath)
	}
	if encoding := env.GetString("LOGGER_ENCODING", ""); encoding != "" {
		k.Set("logger.encoding", encoding)
	}
	if level := env.GetString("LOGGER_LEVEL", ""); level != "" {
		k.Set("logger.level", level)
	}
	if logger := env.GetString("LOGGER_LOGGER", ""); logger != "" {
		k.Set("logger.logger", logger)
	}
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
