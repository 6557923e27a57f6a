package domain

// Config represents the uninstaller configuration.
// Every field is optional; zero values fall back to defaults, so an
// absent config file behaves exactly like no configuration at all.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string `toml:"-"`                    // Unknown-key warnings collected at load time
	BaseDir   string   `toml:"base_dir,omitempty"`   // Override for the local application data root
	LogLevel  string   `toml:"log_level,omitempty"`  // Diagnostic level: debug, info, warn, error
	AssumeYes bool     `toml:"assume_yes,omitempty"` // Skip the press-enter prompts
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path   string
	Exists bool
}
