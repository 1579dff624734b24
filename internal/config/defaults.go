// Package config provides shared configuration defaults for LeapFrame.
// This package is decoupled from CLI concerns so other tools can reuse
// the same conventions.
package config

// Default configuration values.
const (
	DefaultSpecFile = "frame.yaml"
	DefaultOutput   = "table"

	// EnvPrefix is the prefix for configuration environment variables,
	// e.g. LEAPFRAME_OUTPUT=json.
	EnvPrefix = "LEAPFRAME_"
)

// OutputFormats lists the formats the CLI can render a frame in.
var OutputFormats = []string{"table", "json", "csv", "md"}

// ValidOutput reports whether format is a known output format.
func ValidOutput(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
