package config

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Connection type: only "sqlite" is supported for local saves
	Type string `mapstructure:"type" validate:"required,oneof=sqlite"`

	// SQLite file path (can be ":memory:" for tests)
	Path string `mapstructure:"path"`
}
