package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation matching the TOML table layout, e.g. "display.precision".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage and marks the end
	// of a batch of Set calls for watchers.
	Save() error

	// Load re-reads configuration from storage, replacing cached values.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
