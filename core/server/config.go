package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address in host:port form.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// AuthEnabled reports whether requests must carry an API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
