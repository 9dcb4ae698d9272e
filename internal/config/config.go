package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete hackboard configuration
type Config struct {
	Redis       RedisConfig       `mapstructure:"redis"`
	SMTP        SMTPConfig        `mapstructure:"smtp"`
	Formation   FormationConfig   `mapstructure:"formation"`
	Dispatch    DispatchConfig    `mapstructure:"dispatch"`
	Certificate CertificateConfig `mapstructure:"certificate"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// RedisConfig controls the Redis connection
type RedisConfig struct {
	// Addr is the Redis server address as host:port
	Addr string `mapstructure:"addr"`
	// Password is the Redis password, empty for no auth
	Password string `mapstructure:"password"`
	// DB is the Redis database number
	DB int `mapstructure:"db"`
}

// SMTPConfig controls the outgoing mail transport
type SMTPConfig struct {
	// Host is the SMTP server hostname
	Host string `mapstructure:"host"`
	// Port is the SMTP server port
	Port int `mapstructure:"port"`
	// Username authenticates against the SMTP server
	Username string `mapstructure:"username"`
	// Password authenticates against the SMTP server
	Password string `mapstructure:"password"`
	// From is the sender address on outgoing mail
	From string `mapstructure:"from"`
}

// FormationConfig controls team formation
type FormationConfig struct {
	// TeamSize is the target number of members per team
	TeamSize int `mapstructure:"team_size"`
	// DefaultRole is assigned to participants without a declared role
	DefaultRole string `mapstructure:"default_role"`
}

// DispatchConfig controls certificate dispatch pacing
type DispatchConfig struct {
	// BatchSize is the number of certificates processed concurrently per batch
	BatchSize int `mapstructure:"batch_size"`
	// InterBatchDelayMs is the pause between batches (in milliseconds)
	InterBatchDelayMs int `mapstructure:"inter_batch_delay_ms"`
	// UnitTimeoutSeconds bounds a single render-and-send (in seconds)
	UnitTimeoutSeconds int `mapstructure:"unit_timeout_seconds"`
}

// CertificateConfig controls the rendered certificate image
type CertificateConfig struct {
	// Width is the certificate width in pixels
	Width int `mapstructure:"width"`
	// Height is the certificate height in pixels
	Height int `mapstructure:"height"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// InterBatchDelay returns the inter-batch delay as a time.Duration
func (d *DispatchConfig) InterBatchDelay() time.Duration {
	return time.Duration(d.InterBatchDelayMs) * time.Millisecond
}

// UnitTimeout returns the per-unit timeout as a time.Duration
func (d *DispatchConfig) UnitTimeout() time.Duration {
	return time.Duration(d.UnitTimeoutSeconds) * time.Second
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
		SMTP: SMTPConfig{
			Host: "localhost",
			Port: 587,
			From: "noreply@hackboard.dev",
		},
		Formation: FormationConfig{
			TeamSize:    4,
			DefaultRole: "Developer",
		},
		Dispatch: DispatchConfig{
			BatchSize:          3,
			InterBatchDelayMs:  2000,
			UnitTimeoutSeconds: 30,
		},
		Certificate: CertificateConfig{
			Width:  1200,
			Height: 850,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Redis defaults
	viper.SetDefault("redis.addr", defaults.Redis.Addr)
	viper.SetDefault("redis.password", defaults.Redis.Password)
	viper.SetDefault("redis.db", defaults.Redis.DB)

	// SMTP defaults
	viper.SetDefault("smtp.host", defaults.SMTP.Host)
	viper.SetDefault("smtp.port", defaults.SMTP.Port)
	viper.SetDefault("smtp.username", defaults.SMTP.Username)
	viper.SetDefault("smtp.password", defaults.SMTP.Password)
	viper.SetDefault("smtp.from", defaults.SMTP.From)

	// Formation defaults
	viper.SetDefault("formation.team_size", defaults.Formation.TeamSize)
	viper.SetDefault("formation.default_role", defaults.Formation.DefaultRole)

	// Dispatch defaults
	viper.SetDefault("dispatch.batch_size", defaults.Dispatch.BatchSize)
	viper.SetDefault("dispatch.inter_batch_delay_ms", defaults.Dispatch.InterBatchDelayMs)
	viper.SetDefault("dispatch.unit_timeout_seconds", defaults.Dispatch.UnitTimeoutSeconds)

	// Certificate defaults
	viper.SetDefault("certificate.width", defaults.Certificate.Width)
	viper.SetDefault("certificate.height", defaults.Certificate.Height)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
