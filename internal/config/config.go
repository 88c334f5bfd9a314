package config

import "time"

// Environment mode values. Production enables JSON logs, permissive CORS and
// static asset serving.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	Env               string        `mapstructure:"env" yaml:"env"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// AllowedOrigins is the CORS allow-list used outside production.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	// StaticDir is the built frontend served in production mode.
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`

	// RoomTTL is how long an empty room survives before it is reaped.
	RoomTTL time.Duration `mapstructure:"room_ttl" yaml:"room_ttl"`
	// HistoryLimit caps the number of chat messages kept per room.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3001",
		Env:               EnvDevelopment,
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		StaticDir:    "dist",
		RoomTTL:      5 * time.Minute,
		HistoryLimit: 100,
	}
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}
