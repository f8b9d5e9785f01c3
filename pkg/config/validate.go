package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "parking.lane_size").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. All field errors are collected and reported together.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the entire configuration and returns a ValidationError
// if any rule fails. It returns nil for a valid configuration.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateParking(&cfg.Parking)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{"server.listen_address", "must not be empty"})
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, FieldError{"server.read_timeout", "must be positive"})
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, FieldError{"server.write_timeout", "must be positive"})
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, FieldError{"server.idle_timeout", "must be positive"})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, FieldError{"server.shutdown_timeout", "must be positive"})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{"logging.level",
			fmt.Sprintf("must be one of debug, info, warn, error (got %q)", cfg.Level)})
	}

	switch cfg.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{"logging.format",
			fmt.Sprintf("must be json or text (got %q)", cfg.Format)})
	}

	return errs
}

// validateParking mirrors the grid construction rules so a bad layout is
// rejected before the grid is built.
func validateParking(cfg *ParkingConfig) []FieldError {
	var errs []FieldError

	if cfg.LaneSize < 1 {
		errs = append(errs, FieldError{"parking.lane_size", "must be at least 1"})
		return errs
	}
	total := cfg.LaneSize * cfg.LaneSize

	exits := make(map[int]struct{}, len(cfg.PedestrianExits))
	for _, i := range cfg.PedestrianExits {
		if i < 0 || i >= total {
			errs = append(errs, FieldError{"parking.pedestrian_exits",
				fmt.Sprintf("index %d outside [0, %d)", i, total)})
			continue
		}
		if _, dup := exits[i]; dup {
			errs = append(errs, FieldError{"parking.pedestrian_exits",
				fmt.Sprintf("index %d listed twice", i)})
		}
		exits[i] = struct{}{}
	}

	disabled := make(map[int]struct{}, len(cfg.DisabledBays))
	for _, i := range cfg.DisabledBays {
		if i < 0 || i >= total {
			errs = append(errs, FieldError{"parking.disabled_bays",
				fmt.Sprintf("index %d outside [0, %d)", i, total)})
			continue
		}
		if _, dup := disabled[i]; dup {
			errs = append(errs, FieldError{"parking.disabled_bays",
				fmt.Sprintf("index %d listed twice", i)})
		}
		if _, clash := exits[i]; clash {
			errs = append(errs, FieldError{"parking.disabled_bays",
				fmt.Sprintf("index %d is already a pedestrian exit", i)})
		}
		disabled[i] = struct{}{}
	}

	return errs
}
