// Parkctl manages a square parking structure: it allocates bays close to
// pedestrian exits, frees them again, and draws the structure as a
// two-dimensional diagram with alternating lane directions.
//
// Usage:
//
//	# Start the HTTP service with the default configuration
//	parkctl serve
//
//	# Start with a custom configuration file
//	parkctl serve --config /etc/parkctl/config.yaml
//
//	# Print the empty grid described by a configuration file
//	parkctl render --config config.yaml
//
//	# Check a configuration file without starting anything
//	parkctl validate --config config.yaml
//
//	# Show version information
//	parkctl version
package main

func main() {
	Execute()
}
