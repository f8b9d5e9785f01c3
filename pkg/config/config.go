package config

import "time"

// Config is the root configuration for the parking service.
type Config struct {
	// Server configures the HTTP service.
	Server ServerConfig `yaml:"server"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Parking describes the grid layout.
	Parking ParkingConfig `yaml:"parking"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	// ListenAddress is the host:port the server binds to.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout bounds reading a request, header included.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout bounds keep-alive connections between requests.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// DisableMetrics turns off the /metrics endpoint.
	DisableMetrics bool `yaml:"disable_metrics"`

	// WatchConfig reloads the configuration file on change. A changed
	// layout is applied only while the grid is empty; otherwise the
	// server keeps serving the running grid and logs a warning.
	WatchConfig bool `yaml:"watch_config"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`
}

// ParkingConfig describes the parking grid layout.
type ParkingConfig struct {
	// LaneSize is the side length of the square grid.
	LaneSize int `yaml:"lane_size"`

	// PedestrianExits lists exit bay indices; their order anchors the
	// allocation search.
	PedestrianExits []int `yaml:"pedestrian_exits"`

	// DisabledBays lists bay indices reserved for disabled vehicles.
	DisabledBays []int `yaml:"disabled_bays"`
}
