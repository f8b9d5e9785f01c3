// Package config loads, defaults and validates the service configuration.
//
// Configuration is a single YAML file with three sections:
//
//	server:
//	  listen_address: "127.0.0.1:8080"
//	  disable_metrics: false
//	  watch_config: false
//
//	logging:
//	  level: info
//	  format: json
//
//	parking:
//	  lane_size: 4
//	  pedestrian_exits: [8]
//	  disabled_bays: [5, 10]
//
// Load applies defaults and validates before returning; validation errors
// are collected into a single ValidationError listing every offending
// field. The parking section mirrors the grid construction rules so that
// a bad layout is rejected before a grid is ever built.
//
// Watcher wraps fsnotify to observe the configuration file for changes,
// debouncing bursts of filesystem events into a single reload callback.
package config
