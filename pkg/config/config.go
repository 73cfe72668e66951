package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	School SchoolConfig
	NEIS   NEISConfig
	Gemini GeminiConfig
	Cache  CacheConfig
	CORS   CORSConfig
	Log    LogConfig
}

// SchoolConfig identifies the school the portal serves.
type SchoolConfig struct {
	Name     string
	Timezone string
}

// NEISConfig points the upstream client at the NEIS open-data hub.
type NEISConfig struct {
	BaseURL    string
	APIKey     string
	OfficeCode string
	SchoolCode string
	Timeout    time.Duration
}

// GeminiConfig configures the generative chat backend.
type GeminiConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// CacheConfig bounds the in-process memoization of upstream responses.
type CacheConfig struct {
	Capacity int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.School = SchoolConfig{
		Name:     v.GetString("SCHOOL_NAME"),
		Timezone: v.GetString("SCHOOL_TIMEZONE"),
	}

	cfg.NEIS = NEISConfig{
		BaseURL:    v.GetString("NEIS_BASE_URL"),
		APIKey:     v.GetString("NEIS_API_KEY"),
		OfficeCode: v.GetString("NEIS_OFFICE_CODE"),
		SchoolCode: v.GetString("NEIS_SCHOOL_CODE"),
		Timeout:    parseDuration(v.GetString("NEIS_TIMEOUT"), 10*time.Second),
	}

	cfg.Gemini = GeminiConfig{
		BaseURL: v.GetString("GEMINI_BASE_URL"),
		APIKey:  v.GetString("GEMINI_API_KEY"),
		Model:   v.GetString("GEMINI_MODEL"),
		Timeout: parseDuration(v.GetString("GEMINI_TIMEOUT"), 10*time.Second),
	}

	cacheCapacity := v.GetInt("UPSTREAM_CACHE_CAPACITY")
	if cacheCapacity <= 0 {
		cacheCapacity = 128
	}
	cfg.Cache = CacheConfig{Capacity: cacheCapacity}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5001)

	v.SetDefault("SCHOOL_NAME", "부산소프트웨어마이스터고등학교")
	v.SetDefault("SCHOOL_TIMEZONE", "Asia/Seoul")

	v.SetDefault("NEIS_BASE_URL", "https://open.neis.go.kr/hub")
	v.SetDefault("NEIS_API_KEY", "")
	v.SetDefault("NEIS_OFFICE_CODE", "C10")
	v.SetDefault("NEIS_SCHOOL_CODE", "7150658")
	v.SetDefault("NEIS_TIMEOUT", "10s")

	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_TIMEOUT", "10s")

	v.SetDefault("UPSTREAM_CACHE_CAPACITY", 128)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
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

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
