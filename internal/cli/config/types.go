// Package config provides configuration management for the LeapFrame CLI.
//
// Configuration is loaded from, in increasing precedence: built-in
// defaults, a leapframe.yaml file, LEAPFRAME_* environment variables,
// and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Spec is the default frame spec file used when a command gets no
	// positional argument.
	Spec string `koanf:"spec"`
	// OutputFormat selects how frames are rendered: table, json, csv, md.
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Vars are extra globals exposed to every column expression, merged
	// under any vars the spec file declares itself.
	Vars map[string]any `koanf:"vars"`
}
