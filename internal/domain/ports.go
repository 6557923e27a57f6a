package domain

// Privilege reports whether the current process holds administrative rights.
// The check runs before any destructive action; implementations probe the
// operating system (process token elevation on Windows, effective UID on
// Unix) and must not touch the filesystem.
type Privilege interface {
	// Elevated returns true when the process may write to the protected
	// install location.
	Elevated() (bool, error)
}

// Filesystem is the narrow filesystem surface the uninstaller needs.
type Filesystem interface {
	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)

	// Remove deletes the file at path, clearing read-only protection if
	// necessary. Removing an already absent file is not an error.
	Remove(path string) error
}

// Acknowledger blocks until the user acknowledges a prompt.
// The console implementation waits for a keypress; tests and scripted
// runs substitute a no-op.
type Acknowledger interface {
	// Acknowledge displays prompt and waits for the user.
	Acknowledge(prompt string) error
}

// ConfigLoader loads the uninstaller configuration.
type ConfigLoader interface {
	// Load returns the effective configuration, falling back to defaults
	// when no config file exists.
	Load() (*Config, error)

	// Path returns the config file location.
	Path() string

	// Exists reports whether the config file is present.
	Exists() bool
}

// ConfigManager creates the uninstaller config file.
type ConfigManager interface {
	// Init writes a default config file and returns its path.
	// Returns ErrConfigExists if the file is already present.
	Init() (string, error)
}
