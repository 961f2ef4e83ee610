// Package config handles configuration for the recipekeeper client,
// including defaults, JSON overlay, environment overlay, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the recipekeeper client.
//
// Fields:
//   - BackendBaseURL: base URL of the backend-as-a-service HTTP API.
//   - LocalDBPath: path of the device-local SQLite cache.
//   - APIKeys: ordered pool of recipe search API credentials.
//   - SearchEndpoint: recipe search URL template with an {apiKey} placeholder.
//   - SearchCooldown: refusal window after the key pool is exhausted.
//   - TokenSecret: optional HMAC key for verifying session tokens locally.
//   - S3*: object storage settings for the profile photo upload.
type Config struct {
	BackendBaseURL string
	LocalDBPath    string
	APIKeys        []string
	SearchEndpoint string
	SearchCooldown time.Duration
	TokenSecret    string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3PublicURL    string
}

// LoadDefaults populates c with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://127.0.0.1:8080"
	c.LocalDBPath = "recipekeeper.db"
	c.SearchEndpoint = "https://api.spoonacular.com/recipes/complexSearch?apiKey={apiKey}"
	c.SearchCooldown = 24 * time.Hour
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "profiles"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
