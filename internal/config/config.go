package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxMessageBytes   int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	MessageRateLimit  int           `mapstructure:"message_rate_limit" yaml:"message_rate_limit"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	AdminUsername     string        `mapstructure:"admin_username" yaml:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash" yaml:"admin_password_hash"`
	JWTSecret         string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
}

// Default returns configuration with reasonable starter defaults. The admin
// credential is unset by default, which disables admin login entirely.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		MaxMessageBytes:   1 << 20,
		MessageRateLimit:  120, // intents per connection per minute, 0 disables
		LogLevel:          "info",
		AdminUsername:     "admin",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.MessageRateLimit != 0 {
		c.MessageRateLimit = other.MessageRateLimit
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.AdminUsername != "" {
		c.AdminUsername = other.AdminUsername
	}
	if other.AdminPasswordHash != "" {
		c.AdminPasswordHash = other.AdminPasswordHash
	}
	if other.JWTSecret != "" {
		c.JWTSecret = other.JWTSecret
	}
}
