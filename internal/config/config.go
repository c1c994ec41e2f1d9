package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Firestore struct {
		ProjectID       string `yaml:"project_id" env:"FIRESTORE_PROJECT_ID"`
		CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE"`
	} `yaml:"firestore"`

	Storage struct {
		Bucket          string        `yaml:"bucket" env:"STORAGE_BUCKET"`
		CredentialsFile string        `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE"`
		UploadTimeout   time.Duration `yaml:"upload_timeout" env:"STORAGE_UPLOAD_TIMEOUT"`
	} `yaml:"storage"`

	Gemini struct {
		APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
		Model   string        `yaml:"model" env:"GEMINI_MODEL"`
		Timeout time.Duration `yaml:"timeout" env:"GEMINI_TIMEOUT"`
	} `yaml:"gemini"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; environment variables alone can carry
	// a deployment.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Firestore.CredentialsFile = "serviceAccountKey.json"

	config.Storage.CredentialsFile = "serviceAccountKey.json"
	config.Storage.UploadTimeout = 60 * time.Second

	config.Gemini.Model = "gemini-flash-latest"
	config.Gemini.Timeout = 90 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid. Missing keys
// for external services are startup failures, not call-time surprises.
func validateConfig(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("gemini API key is required (GEMINI_API_KEY)")
	}

	if config.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required (STORAGE_BUCKET)")
	}

	if config.Firestore.ProjectID == "" {
		return fmt.Errorf("firestore project ID is required (FIRESTORE_PROJECT_ID)")
	}

	if config.Storage.UploadTimeout <= 0 {
		return fmt.Errorf("storage upload timeout must be positive")
	}

	if config.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini timeout must be positive")
	}

	return nil
}
