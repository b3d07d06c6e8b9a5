package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Service ServiceConfig
	Cache   CacheConfig
	Log     LogConfig
	Labels  LabelConfig
}

// ServiceConfig locates and authenticates against the scheduling service.
type ServiceConfig struct {
	BaseURL       string        `validate:"required,url"`
	InstitutionID string        `validate:"required"`
	Username      string        `validate:"required"`
	Password      string        `validate:"required"`
	Timeout       time.Duration `validate:"gt=0"`
}

// CacheConfig governs the optional Redis schedule-response cache.
type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// LabelConfig tunes the teacher display-label policy. The shortening rules
// follow one institution's naming convention and are kept adjustable here.
type LabelConfig struct {
	Placeholder string `validate:"required"`
	MaxNames    int    `validate:"gte=1"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// a missing .env is fine, the environment alone may carry everything
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Service = ServiceConfig{
		BaseURL:       v.GetString("LECTIO_BASE_URL"),
		InstitutionID: v.GetString("LECTIO_INSTITUTION_ID"),
		Username:      v.GetString("LECTIO_USERNAME"),
		Password:      v.GetString("LECTIO_PASSWORD"),
		Timeout:       parseDuration(v.GetString("LECTIO_TIMEOUT"), 10*time.Second),
	}

	cfg.Cache = CacheConfig{
		Enabled:  v.GetBool("CACHE_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Labels = LabelConfig{
		Placeholder: v.GetString("TEACHER_LABEL_PLACEHOLDER"),
		MaxNames:    v.GetInt("TEACHER_LABEL_MAX_NAMES"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LECTIO_BASE_URL", "https://schedule.lectio.example.com")
	v.SetDefault("LECTIO_INSTITUTION_ID", "")
	v.SetDefault("LECTIO_USERNAME", "")
	v.SetDefault("LECTIO_PASSWORD", "")
	v.SetDefault("LECTIO_TIMEOUT", "10s")

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("TEACHER_LABEL_PLACEHOLDER", "?")
	v.SetDefault("TEACHER_LABEL_MAX_NAMES", 2)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
