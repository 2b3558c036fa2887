package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/andrewpaige1/studysnap-api/utils"
	"github.com/spf13/viper"
)

type Config struct {
	Env   string      `mapstructure:"env" validate:"oneof=development production"`
	Port  string      `mapstructure:"port" validate:"required,numeric"`
	DB    DBConfig    `mapstructure:"db"`
	JWT   JWTConfig   `mapstructure:"jwt"`
	CORS  CORSConfig  `mapstructure:"cors"`
	Redis RedisConfig `mapstructure:"redis"`
	AI    AIConfig    `mapstructure:"ai"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	URL    string `mapstructure:"url" validate:"required"`
}

type JWTConfig struct {
	SecretKey string   `mapstructure:"secret_key" validate:"required,min=16"`
	Issuer    string   `mapstructure:"issuer" validate:"required"`
	Audience  []string `mapstructure:"audience" validate:"required,min=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// RedisConfig is optional: with no Addr, snapshots fan out in process only.
type RedisConfig struct {
	Addr          string `mapstructure:"addr"`
	ChannelPrefix string `mapstructure:"channel_prefix" validate:"required"`
}

type AIConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Model     string        `mapstructure:"model" validate:"required"`
	MaxTokens int           `mapstructure:"max_tokens" validate:"min=1"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=1"`
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

var envBindings = map[string]string{
	"env":                  "ENV",
	"port":                 "PORT",
	"db.driver":            "DB_DRIVER",
	"db.url":               "DB_URL",
	"jwt.secret_key":       "JWT_SECRET_KEY",
	"jwt.issuer":           "JWT_ISSUER",
	"jwt.audience":         "JWT_AUDIENCE",
	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	"redis.addr":           "REDIS_ADDR",
	"redis.channel_prefix": "REDIS_CHANNEL_PREFIX",
	"ai.base_url":          "AI_BASE_URL",
	"ai.model":             "AI_MODEL",
	"ai.max_tokens":        "AI_MAX_TOKENS",
	"ai.timeout":           "AI_TIMEOUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.url", "studysnap.db")
	v.SetDefault("jwt.issuer", "studysnap")
	v.SetDefault("jwt.audience", []string{"studysnap-api"})
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("redis.channel_prefix", "studysnap")
	v.SetDefault("ai.base_url", "https://api.aimlapi.com")
	v.SetDefault("ai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.max_tokens", 2000)
	v.SetDefault("ai.timeout", 60*time.Second)
}

// Load builds the configuration from defaults, an optional configs/<CONFIG_NAME>
// file and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	v.AddConfigPath("configs")
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := utils.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
