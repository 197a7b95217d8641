package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds application-level configuration.
type AppConfig struct {
	Redis     RedisConfig
	Templates TemplateSettings
	Export    ExportSettings
	Quota     QuotaSettings
	Stats     StatsSettings
	Server    ServerSettings
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr           string
	Password       string
	PasswordSecret string // Secrets Manager secret holding the password
	DB             int
	DialTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PoolSize       int
	MinIdleConns   int

	// ElastiCache-specific settings
	ClusterMode   bool
	SentinelAddrs []string
	MasterName    string
}

// TemplateSettings controls where variant pools and the category catalog come from.
// Empty values select the embedded defaults.
type TemplateSettings struct {
	Dir            string
	Endpoint       string
	CategoriesFile string
}

// ExportSettings controls document rendering.
type ExportSettings struct {
	AssetDir  string
	Watermark string
}

// QuotaSettings controls the per-user export allowance.
type QuotaSettings struct {
	LifetimeFree int
	DailyLimit   int
	DailyTTL     time.Duration
}

// StatsSettings controls the daily aggregate counters. A zero TTL keeps them forever.
type StatsSettings struct {
	TTL time.Duration
}

// ServerSettings holds local HTTP server settings.
type ServerSettings struct {
	ListenAddr string
}

// LoadFromEnv loads configuration from environment variables with sensible defaults.
func LoadFromEnv() (*AppConfig, error) {
	redisAddr := getEnvOrDefault("REDIS_ADDR", "localhost:6379")
	if elasticacheEndpoint := os.Getenv("ELASTICACHE_ENDPOINT"); elasticacheEndpoint != "" {
		redisAddr = elasticacheEndpoint
	}

	redisCfg := RedisConfig{
		Addr:           redisAddr,
		Password:       os.Getenv("REDIS_PASSWORD"),
		PasswordSecret: os.Getenv("REDIS_PASSWORD_SECRET"),
		DB:             0,
		DialTimeout:    5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		PoolSize:       10,
		MinIdleConns:   2,
		ClusterMode:    os.Getenv("ELASTICACHE_CLUSTER_MODE") == "true",
	}

	if sentinelAddrs := os.Getenv("ELASTICACHE_SENTINEL_ADDRS"); sentinelAddrs != "" {
		redisCfg.SentinelAddrs = strings.Split(sentinelAddrs, ",")
		redisCfg.MasterName = os.Getenv("ELASTICACHE_MASTER_NAME")
	}

	cfg := &AppConfig{
		Redis: redisCfg,
		Templates: TemplateSettings{
			Dir:            os.Getenv("TEMPLATES_DIR"),
			Endpoint:       strings.TrimRight(os.Getenv("TEMPLATES_ENDPOINT"), "/"),
			CategoriesFile: os.Getenv("CATEGORIES_FILE"),
		},
		Export: ExportSettings{
			AssetDir:  os.Getenv("EXPORT_ASSET_DIR"),
			Watermark: getEnvOrDefault("EXPORT_WATERMARK", "LETTRIX - WEB"),
		},
		Quota: QuotaSettings{
			LifetimeFree: parseInt(os.Getenv("QUOTA_LIFETIME_FREE"), 10),
			DailyLimit:   parseInt(os.Getenv("QUOTA_DAILY_LIMIT"), 3),
			DailyTTL:     parseDuration(os.Getenv("QUOTA_DAILY_TTL"), 48*time.Hour),
		},
		Stats: StatsSettings{
			TTL: parseDuration(os.Getenv("STATS_TTL"), 0),
		},
		Server: ServerSettings{
			ListenAddr: getEnvOrDefault("LISTEN_ADDR", ":8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// parseInt returns def for empty input and -1 for garbage so Validate rejects it.
func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return -1
	}
	return d
}
