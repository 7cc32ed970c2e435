package config

import "fmt"

// MetricsConfig controls the optional Prometheus endpoint. Off by default;
// when enabled the CLI serves the registry over HTTP for the whole run.
type MetricsConfig struct {
	// Enabled turns cycle instrumentation and the HTTP endpoint on
	Enabled bool `mapstructure:"enabled"`

	// Host the endpoint binds to; defaults to localhost so nothing is
	// exposed beyond the machine unless asked for
	Host string `mapstructure:"host"`

	// Port for the endpoint, outside the privileged range
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Path the registry is served under, e.g. /metrics
	Path string `mapstructure:"path"`
}

// Address returns the host:port the metrics server listens on.
func (m MetricsConfig) Address() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}
