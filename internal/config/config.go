package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// AvailabilitySlot defines a selectable availability window for the
// skills/availability onboarding step. The recurrence rule describes
// when the slot repeats.
type AvailabilitySlot struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label,omitempty"`
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	APIBaseURL        string             `yaml:"apiBaseURL" validate:"required,url"`
	StateDir          string             `yaml:"stateDir,omitempty"`
	AvailabilitySlots []AvailabilitySlot `yaml:"availabilitySlots,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" will look for "volunteerhub.test.yaml".
// A .env file, if present, may override the API base URL via
// VOLUNTEERHUB_API_URL.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.StateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(homeDir, ".volunteerhub")
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each availability slot
	for i, slot := range cfg.AvailabilitySlots {
		if _, err := rrule.StrToRRule(slot.RRule); err != nil {
			return fmt.Errorf("invalid rrule in availabilitySlots[%d]: %w", i, err)
		}
	}

	return nil
}

// SlotKeys returns the configured availability slot keys, used to
// validate step-3 availability selections
func (c *Config) SlotKeys() []string {
	keys := make([]string, 0, len(c.AvailabilitySlots))
	for _, slot := range c.AvailabilitySlots {
		keys = append(keys, slot.Key)
	}
	return keys
}

// applyEnvOverrides loads a .env file when present and applies
// environment overrides on top of the file-based config
func applyEnvOverrides(cfg *Config) {
	// Missing .env is fine; explicit env vars still apply
	_ = godotenv.Load()

	if baseURL := os.Getenv("VOLUNTEERHUB_API_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}
	if stateDir := os.Getenv("VOLUNTEERHUB_STATE_DIR"); stateDir != "" {
		cfg.StateDir = stateDir
	}
}

// findConfigFile searches for the config file in current directory and
// home directory. If env is provided, it adds it as an extension
// (e.g., "volunteerhub.test.yaml").
func findConfigFile(env string) (string, error) {
	configFileName := "volunteerhub.yaml"
	if env != "" {
		configFileName = "volunteerhub." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
