package server

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/svcbase/item-service/internal/logger"
)

// Config is the immutable settings snapshot for the process. It is built
// once in main and passed down explicitly; changing a value requires a
// restart.
type Config struct {
	AppName      string   `koanf:"app_name"`
	AppVersion   string   `koanf:"app_version"`
	Environment  string   `koanf:"environment"`
	Debug        bool     `koanf:"debug"`
	Host         string   `koanf:"host"`
	Port         int      `koanf:"port"`
	LogLevel     string   `koanf:"log_level"`
	AllowedHosts []string `koanf:"allowed_hosts"`

	// Optional readiness dependencies; empty means the check is not wired.
	RedisAddr    string `koanf:"redis_addr"`
	RedisPass    string `koanf:"redis_password"`
	PostgresConn string `koanf:"postgres_conn"`
}

func defaultConfig() Config {
	return Config{
		AppName:      "Item Service",
		AppVersion:   "0.1.0",
		Environment:  "development",
		Debug:        false,
		Host:         "0.0.0.0",
		Port:         8000,
		LogLevel:     "info",
		AllowedHosts: []string{"*"},
	}
}

// LoadConfig layers an optional YAML file (APP_CONFIG) and APP_-prefixed
// environment variables over the defaults. All keys are optional.
func LoadConfig() (Config, error) {
	config := defaultConfig()
	k := koanf.New(".")

	if path := os.Getenv("APP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// APP_APP_NAME -> app_name, APP_ALLOWED_HOSTS -> allowed_hosts, ...
	envProvider := env.ProviderWithValue("APP_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "APP_"))
		if key == "allowed_hosts" {
			hosts := strings.Split(value, ",")
			for i := range hosts {
				hosts[i] = strings.TrimSpace(hosts[i])
			}
			return key, hosts
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var errors []string
	if config.Port < 1 || config.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port: %d", config.Port))
	}
	if _, err := logger.ParseLevel(config.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}
