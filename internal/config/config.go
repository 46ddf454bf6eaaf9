package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Bible    BibleConfig    `mapstructure:"bible"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// MaxConns bounds the connection pool shared by all request tasks.
	MaxConns int `mapstructure:"max_conns" validate:"required,gt=0"`
}

// BibleConfig locates the scripture source document loaded at startup.
type BibleConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}
