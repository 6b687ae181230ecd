package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	ServerAddress string `json:"serverAddress"`
	// BaseURL is the externally visible origin used to build share links.
	BaseURL string `json:"baseUrl"`
	Upload  Upload `json:"upload"`
	Seed    bool   `json:"seed"`
}

// Upload configuration
type Upload struct {
	// MaxPhotosPerUpload caps one multi-photo upload; extra files are
	// silently truncated, not rejected.
	MaxPhotosPerUpload int      `json:"maxPhotosPerUpload"`
	MaxFileSizeMB      int64    `json:"maxFileSizeMB"`
	AllowedExtensions  []string `json:"allowedExtensions"`
	ThumbnailMaxDim    int      `json:"thumbnailMaxDim"`
}

// Default configuration
func defaultConfig() *Config {
	return &Config{
		ServerAddress: ":5000",
		BaseURL:       "http://localhost:5000",
		Upload: Upload{
			MaxPhotosPerUpload: 10,
			MaxFileSizeMB:      25,
			AllowedExtensions: []string{
				".jpg", ".jpeg", ".png", ".gif", ".heic", ".heif",
			},
			ThumbnailMaxDim: 200,
		},
		Seed: true,
	}
}

// Load loads configuration from file or environment
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override from environment variables
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.ServerAddress = addr
	}
	if base := os.Getenv("BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if seed := os.Getenv("SEED_SAMPLE_DATA"); seed != "" {
		cfg.Seed = seed == "true" || seed == "1"
	}
	if cap := os.Getenv("MAX_PHOTOS_PER_UPLOAD"); cap != "" {
		if n, err := strconv.Atoi(cap); err == nil && n > 0 {
			cfg.Upload.MaxPhotosPerUpload = n
		}
	}

	return cfg, nil
}
