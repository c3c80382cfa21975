package config

import "flag"

// Flags holds the command-line options of a node process. Everything else
// lives in the document or the environment.
type Flags struct {
	// ConfigPath is the TOML document path; empty means "use the
	// compiled-in defaults".
	ConfigPath string
	// LogLevel names the minimum emitted log level.
	LogLevel string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-c/-config TOML config file path
//	-log-level minimum log level (trace, debug, info, warn, error)
func ParseFlags() *Flags {
	var (
		configPath string
		logLevel   string
	)

	flag.StringVar(&configPath, "c", "", "TOML config file path")
	flag.StringVar(&configPath, "config", "", "TOML config file path (alias)")
	flag.StringVar(&logLevel, "log-level", "debug", "minimum log level")

	flag.Parse()

	return &Flags{ConfigPath: configPath, LogLevel: logLevel}
}
