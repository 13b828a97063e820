package config

// Default configuration values.
const (
	DefaultIncludePattern   = "**/*.conf"
	DefaultMaxFixIterations = 10
)

// defaults is the base configuration layer loaded before the config file,
// environment, and flags.
func defaults() map[string]any {
	return map[string]any{
		"include":            []string{DefaultIncludePattern},
		"max_fix_iterations": DefaultMaxFixIterations,
	}
}
