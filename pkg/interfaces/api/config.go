package api

import "github.com/kelseyhightower/envconfig"

// Config holds server configuration, populated from LOTSIZE_* environment
// variables
type Config struct {
	Address        string   `envconfig:"ADDRESS" default:":8080"`
	DatabasePath   string   `envconfig:"DB_PATH" default:"lotsize.db"`
	AllowedOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
}

// LoadConfig reads the server configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("lotsize", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
