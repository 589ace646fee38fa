package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultGenerationModel = "gemini-1.5-flash"

// FileConfig represents configuration loaded from YAML, with environment
// variables taking precedence.
type FileConfig struct {
	APIBaseURL           string `yaml:"apiBaseURL"`
	LogLevel             string `yaml:"logLevel"`
	SessionFile          string `yaml:"sessionFile"`
	SessionRedisAddr     string `yaml:"sessionRedisAddr"`
	SessionRedisPassword string `yaml:"sessionRedisPassword"`
	GeminiAPIKey         string `yaml:"geminiAPIKey"`
	GenerationModel      string `yaml:"generationModel"`
}

// Load reads config from path (defaults to config.yaml). A .env file in the
// working directory is folded into the environment first, so secrets stay
// out of the YAML.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = "config.yaml"
	}
	_ = godotenv.Load()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	// Override with environment variables
	if v := os.Getenv("COURSEHUB_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("COURSEHUB_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("COURSEHUB_SESSION_REDIS_ADDR"); v != "" {
		cfg.SessionRedisAddr = v
	}
	if v := os.Getenv("COURSEHUB_SESSION_REDIS_PASSWORD"); v != "" {
		cfg.SessionRedisPassword = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_GENERATION_MODEL"); v != "" {
		cfg.GenerationModel = v
	}
	if cfg.GenerationModel == "" {
		cfg.GenerationModel = defaultGenerationModel
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = ".coursehub/session.json"
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.APIBaseURL == "" {
		return errors.New("config: apiBaseURL is required (set in config.yaml or COURSEHUB_API_BASE_URL)")
	}
	return nil
}
