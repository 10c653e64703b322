package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Database DatabaseConfig `mapstructure:"database"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Local    LocalConfig    `mapstructure:"local"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AI       AIConfig       `mapstructure:"ai"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

// Remote store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type RemoteConfig struct {
	Driver       string        `mapstructure:"driver"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Local cache drivers.
const (
	LocalFile   = "file"
	LocalRedis  = "redis"
	LocalMemory = "memory"
)

type LocalConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr"`
	Namespace string `mapstructure:"namespace"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// AIConfig configures the generative content client. An empty APIKey
// disables it and every request gets the static fallback.
type AIConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	TextModel         string        `mapstructure:"text_model"`
	VisionModel       string        `mapstructure:"vision_model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

type CatalogConfig struct {
	// Path optionally points to a yaml/json catalog replacing the built-in one.
	Path     string `mapstructure:"path"`
	PageSize int    `mapstructure:"page_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
}

// LoadConfig reads config.yaml from path, overridden by environment variables
// (server.address -> SERVER_ADDRESS).
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	// A missing file is fine: defaults and env vars are enough to run.
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	return config, config.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("remote.driver", DriverMongo)
	v.SetDefault("remote.read_timeout", "2s")
	v.SetDefault("remote.write_timeout", "5s")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitguide")
	v.SetDefault("postgres.dsn", "postgres://postgres@localhost:5432/fitguide")
	v.SetDefault("local.driver", LocalFile)
	v.SetDefault("local.path", "./data")
	v.SetDefault("local.redis_addr", "localhost:6379")
	v.SetDefault("local.namespace", "fitguide")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("ai.text_model", "gemini-2.5-flash")
	v.SetDefault("ai.vision_model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout", "20s")
	v.SetDefault("ai.requests_per_minute", 30)
	v.SetDefault("catalog.page_size", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.stdout", true)

	// AutomaticEnv only sees keys viper already knows about.
	for _, key := range []string{
		"s3.endpoint", "s3.region", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name",
		"jwt.secret", "ai.api_key", "catalog.path", "log.file",
	} {
		v.SetDefault(key, "")
	}
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	switch c.Remote.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("unknown remote.driver %q", c.Remote.Driver)
	}
	switch c.Local.Driver {
	case LocalFile, LocalRedis, LocalMemory:
	default:
		return fmt.Errorf("unknown local.driver %q", c.Local.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	return nil
}
