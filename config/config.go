package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"port"`
	StaticDir     string `mapstructure:"static_dir"`
	LogLevel      string `mapstructure:"log_level"`
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"mongo_database"`

	AIProvider     string `mapstructure:"ai_provider"` // "gemini" or "openai"
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"gemini_model"`
	OpenAIEndpoint string `mapstructure:"openai_endpoint"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string `mapstructure:"openai_model"`

	GenerateTimeoutSeconds int `mapstructure:"generate_timeout_seconds"`

	RedisAddr                string `mapstructure:"REDIS_ADDR"`
	RedisPassword            string `mapstructure:"REDIS_PASSWORD"`
	AnalyticsCacheTTLSeconds int    `mapstructure:"analytics_cache_ttl_seconds"`

	AdminUsername  string `mapstructure:"admin_username"`
	AdminPassword  string `mapstructure:"ADMIN_PASSWORD"`
	AdminJWTSecret string `mapstructure:"ADMIN_JWT_SECRET"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("port", "3001")
	v.SetDefault("static_dir", "public")
	v.SetDefault("log_level", "info")
	v.SetDefault("mongo_database", "bookly")
	v.SetDefault("ai_provider", "gemini")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("generate_timeout_seconds", 30)
	v.SetDefault("analytics_cache_ttl_seconds", 60)
	v.SetDefault("admin_username", "admin")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("MONGODB_URI")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("REDIS_ADDR")
	v.BindEnv("REDIS_PASSWORD")
	v.BindEnv("ADMIN_PASSWORD")
	v.BindEnv("ADMIN_JWT_SECRET")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func (c *Config) GenerateTimeout() time.Duration {
	return time.Duration(c.GenerateTimeoutSeconds) * time.Second
}

func (c *Config) AnalyticsCacheTTL() time.Duration {
	return time.Duration(c.AnalyticsCacheTTLSeconds) * time.Second
}
