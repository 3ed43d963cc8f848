package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Storage  StorageConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Registry RegistryConfig
	CORS     CORSConfig
	PageSize int
}

type ServerConfig struct {
	Port    int
	GinMode string
}

type LogConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	Backend     string
	DatabaseURL string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	ContractsTable  string
	CountersTable   string
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	LockTTL  time.Duration
}

type AuthConfig struct {
	InternalServiceKey string
	JWTSecret          string
}

type RegistryConfig struct {
	ClientServiceURL  string
	UserServiceURL    string
	VehicleServiceURL string
	Timeout           time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from an optional config.toml (./config or .),
// a .env file and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"backend": cfg.Storage.Backend,
		"port":    cfg.Server.Port,
	}).Info("[config] configuration loaded")
	return cfg, nil
}

// FromViper builds a Config from v, binding every key to its environment
// variable and applying defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetInt("SERVER_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(strings.TrimSpace(v.GetString("DATA_BACKEND"))),
			DatabaseURL: v.GetString("DATABASE_URL"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			ContractsTable:  v.GetString("CONTRACTS_TABLE"),
			CountersTable:   v.GetString("COUNTERS_TABLE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Username: v.GetString("REDIS_USERNAME"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			LockTTL:  v.GetDuration("VEHICLE_LOCK_TTL"),
		},
		Auth: AuthConfig{
			InternalServiceKey: v.GetString("INTERNAL_SERVICE_KEY"),
			JWTSecret:          v.GetString("JWT_SECRET"),
		},
		Registry: RegistryConfig{
			ClientServiceURL:  strings.TrimRight(v.GetString("CLIENT_SERVICE_URL"), "/"),
			UserServiceURL:    strings.TrimRight(v.GetString("USER_SERVICE_URL"), "/"),
			VehicleServiceURL: strings.TrimRight(v.GetString("VEHICLE_SERVICE_URL"), "/"),
			Timeout:           v.GetDuration("REGISTRY_TIMEOUT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		PageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DATA_BACKEND", BackendMemory)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("CONTRACTS_TABLE", "purchase_sales")
	v.SetDefault("COUNTERS_TABLE", "purchase_sale_counters")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("VEHICLE_LOCK_TTL", "30s")
	v.SetDefault("CLIENT_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("USER_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("VEHICLE_SERVICE_URL", "http://localhost:8083")
	v.SetDefault("REGISTRY_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_PAGE_SIZE", 10)
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendDynamoDB:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown DATA_BACKEND %q", c.Storage.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid DEFAULT_PAGE_SIZE %d", c.PageSize)
	}
	if c.Registry.Timeout <= 0 {
		return fmt.Errorf("invalid REGISTRY_TIMEOUT %s", c.Registry.Timeout)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
