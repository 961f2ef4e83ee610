package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is a DTO for the environment overlay. Only variables that are
// actually set override the current Config values.
type EnvConfig struct {
	BackendBaseURL string        `env:"RK_BACKEND_URL"`
	LocalDBPath    string        `env:"RK_LOCAL_DB"`
	APIKeys        []string      `env:"RK_API_KEYS" envSeparator:","`
	SearchEndpoint string        `env:"RK_SEARCH_ENDPOINT"`
	SearchCooldown time.Duration `env:"RK_SEARCH_COOLDOWN"`
	TokenSecret    string        `env:"RK_TOKEN_SECRET"`
	S3AccessKey    string        `env:"RK_S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"RK_S3_SECRET_KEY"`
	S3Bucket       string        `env:"RK_S3_BUCKET"`
	S3Region       string        `env:"RK_S3_REGION"`
	S3BaseEndpoint string        `env:"RK_S3_ENDPOINT"`
	S3PublicURL    string        `env:"RK_S3_PUBLIC_URL"`
}

func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BackendBaseURL != "" {
		cfg.BackendBaseURL = ec.BackendBaseURL
	}
	if ec.LocalDBPath != "" {
		cfg.LocalDBPath = ec.LocalDBPath
	}
	if len(ec.APIKeys) > 0 {
		cfg.APIKeys = ec.APIKeys
	}
	if ec.SearchEndpoint != "" {
		cfg.SearchEndpoint = ec.SearchEndpoint
	}
	if ec.SearchCooldown != 0 {
		cfg.SearchCooldown = ec.SearchCooldown
	}
	if ec.TokenSecret != "" {
		cfg.TokenSecret = ec.TokenSecret
	}
	if ec.S3AccessKey != "" {
		cfg.S3AccessKey = ec.S3AccessKey
	}
	if ec.S3SecretKey != "" {
		cfg.S3SecretKey = ec.S3SecretKey
	}
	if ec.S3Bucket != "" {
		cfg.S3Bucket = ec.S3Bucket
	}
	if ec.S3Region != "" {
		cfg.S3Region = ec.S3Region
	}
	if ec.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = ec.S3BaseEndpoint
	}
	if ec.S3PublicURL != "" {
		cfg.S3PublicURL = ec.S3PublicURL
	}
}
