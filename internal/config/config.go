package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the platform.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	S3     S3Config     `mapstructure:"s3"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Worker WorkerConfig `mapstructure:"worker"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
	Issuer     string        `mapstructure:"issuer"`
}

type S3Config struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	From     string `mapstructure:"from"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type WorkerConfig struct {
	EmailWorkers     int    `mapstructure:"email_workers"`
	EmailQueue       string `mapstructure:"email_queue"`
	EmailMaxAttempts int    `mapstructure:"email_max_attempts"`
}

// Load reads configuration from config.yaml (if present) and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvPrefix("JOBBOARD")
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvironmentVariables(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "jobboard")
	v.SetDefault("s3.prefix", "uploads")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("worker.email_workers", 3)
	v.SetDefault("worker.email_queue", "notifications:email")
	v.SetDefault("worker.email_max_attempts", 3)
}

func bindEnvironmentVariables(v *viper.Viper) {
	bindings := map[string]string{
		"server.port":   "PORT",
		"db.host":       "DB_HOST",
		"db.port":       "DB_PORT",
		"db.user":       "DB_USER",
		"db.password":   "DB_PASS",
		"db.name":       "DB_NAME",
		"redis.addr":    "REDIS_ADDR",
		"redis.password": "REDIS_PASS",
		"jwt.secret":    "JWT_SECRET",
		"s3.region":     "AWS_REGION",
		"s3.bucket":     "AWS_BUCKET",
		"smtp.host":     "SMTP_HOST",
		"smtp.port":     "SMTP_PORT",
		"smtp.from":     "SMTP_FROM",
		"smtp.username": "SMTP_USER",
		"smtp.password": "SMTP_PASS",
	}
	for key, env := range bindings {
		// BindEnv only errors on empty input.
		_ = v.BindEnv(key, env)
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.DB.User == "" || c.DB.Name == "" {
		errs = append(errs, errors.New("db.user and db.name are required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.Worker.EmailWorkers < 1 {
		errs = append(errs, errors.New("worker.email_workers must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
