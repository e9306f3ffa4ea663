package config

import "fmt"

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int
	JWT  *JWTConfig
}

// NewServerConfig builds the server configuration for the given port, picking
// up optional JWT settings from the environment.
func NewServerConfig(port int) (*ServerConfig, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}

	cfg := &ServerConfig{Port: port}
	if JWTEnabled() {
		jwtCfg, err := NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load JWT config: %w", err)
		}
		cfg.JWT = jwtCfg
	}
	return cfg, nil
}
