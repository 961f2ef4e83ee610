package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mpavlenko/recipekeeper/internal/flagx"
	"github.com/mpavlenko/recipekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	BackendBaseURL string         `json:"backend_base_url"`
	LocalDBPath    string         `json:"local_db_path"`
	APIKeys        []string       `json:"api_keys"`
	SearchEndpoint string         `json:"search_endpoint"`
	SearchCooldown timex.Duration `json:"search_cooldown"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3PublicURL    string         `json:"s3_public_url"`
}

// parseJson overlays cfg with values loaded from a JSON file named by the
// -c/-config flags. Missing flag means no JSON is loaded; read or unmarshal
// errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if len(jc.APIKeys) > 0 {
		cfg.APIKeys = jc.APIKeys
	}
	if jc.SearchEndpoint != "" {
		cfg.SearchEndpoint = jc.SearchEndpoint
	}
	if jc.SearchCooldown.Duration != 0 {
		cfg.SearchCooldown = time.Duration(jc.SearchCooldown.Duration)
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3PublicURL != "" {
		cfg.S3PublicURL = jc.S3PublicURL
	}
}
