package config

// ServerConfig contains bind settings for the management API.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	// ReusePort enables SO_REUSEPORT on the listening socket so multiple
	// daemon instances can share the address.
	ReusePort bool `json:"reuse_port"`
}

// ParserConfig contains defaults applied to parse requests that do not
// specify their own options.
type ParserConfig struct {
	// Lenient makes parsing skip unparseable lines instead of failing.
	Lenient bool `json:"lenient"`
}

// DatabaseConfig contains zone store settings.
type DatabaseConfig struct {
	Path string `json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string            `json:"level"`
	Format      string            `json:"format"`
	IncludePID  bool              `json:"include_pid"`
	ExtraFields map[string]string `json:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	APIKey string `json:"api_key,omitempty"`
}

// Config is the root configuration structure for zonejsond.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Parser   ParserConfig   `json:"parser"`
	Database DatabaseConfig `json:"database"`
	Logging  LoggingConfig  `json:"logging"`
	API      APIConfig      `json:"api"`
}
