package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hapbridge/hap-go/pkg/hap"
	"github.com/hapbridge/hap-go/pkg/host"
)

// Config is the top-level configuration file.
type Config struct {
	Accessory AccessoryConfig `yaml:"accessory"`
	Logging   LoggingConfig   `yaml:"logging"`
	EventLog  EventLogConfig  `yaml:"event_log"`
}

// AccessoryConfig describes the accessory registered with the host.
type AccessoryConfig struct {
	Name            string `yaml:"name"`
	ID              string `yaml:"id"`
	SetupCode       string `yaml:"setup_code"`
	Manufacturer    string `yaml:"manufacturer"`
	Model           string `yaml:"model"`
	SerialNumber    string `yaml:"serial_number"`
	FirmwareVersion string `yaml:"firmware_version"`

	// Category is a category name such as "lightbulb" or "window-covering".
	Category string `yaml:"category"`

	// Port is the TCP port announced by the host. 0 lets the host choose.
	Port int `yaml:"port"`

	// ConfigVersion must be bumped when the characteristic set changes.
	ConfigVersion int `yaml:"config_version"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	Output string `yaml:"output"` // stdout, stderr
}

// EventLogConfig configures bridge event capture.
// An empty Path disables capture.
type EventLogConfig struct {
	Path string `yaml:"path"`
}

var (
	setupCodePattern   = regexp.MustCompile(`^\d{3}-\d{2}-\d{3}$`)
	accessoryIDPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5}$`)
)

// Load reads, overrides and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for configuration already in memory.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with defaults for every optional field.
func Default() *Config {
	return &Config{
		Accessory: AccessoryConfig{
			Manufacturer:    "hap-go",
			Model:           "hap-go accessory",
			SerialNumber:    "0000001",
			FirmwareVersion: "1.0.0",
			Category:        "other",
			ConfigVersion:   1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HAP_ACCESSORY_SETUP_CODE"); v != "" {
		cfg.Accessory.SetupCode = v
	}
	if v := os.Getenv("HAP_ACCESSORY_ID"); v != "" {
		cfg.Accessory.ID = v
	}
	if v := os.Getenv("HAP_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HAP_EVENT_LOG_PATH"); v != "" {
		cfg.EventLog.Path = v
	}
}

// Validate reports every configuration error at once.
func (c *Config) Validate() error {
	var errs []string
	a := c.Accessory

	if a.Name == "" {
		errs = append(errs, "accessory.name is required")
	}
	if a.Manufacturer == "" {
		errs = append(errs, "accessory.manufacturer is required")
	}
	if !accessoryIDPattern.MatchString(a.ID) {
		errs = append(errs, "accessory.id must look like XX:XX:XX:XX:XX:XX")
	}
	if !setupCodePattern.MatchString(a.SetupCode) {
		errs = append(errs, "accessory.setup_code must look like NNN-NN-NNN (set HAP_ACCESSORY_SETUP_CODE)")
	}
	if _, err := host.ParseCategory(a.Category); err != nil {
		errs = append(errs, "accessory.category: "+err.Error())
	}
	if a.Port < 0 || a.Port > 65535 {
		errs = append(errs, "accessory.port must be between 0 and 65535")
	}
	if a.ConfigVersion < 1 {
		errs = append(errs, "accessory.config_version must be at least 1")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Identity returns the accessory identity. Each call returns a new value
// owned by the caller.
func (c *Config) Identity() *hap.Identity {
	a := c.Accessory
	return &hap.Identity{
		Name:            a.Name,
		ID:              strings.ToUpper(a.ID),
		SetupCode:       a.SetupCode,
		Manufacturer:    a.Manufacturer,
		FirmwareVersion: a.FirmwareVersion,
		Model:           a.Model,
		SerialNumber:    a.SerialNumber,
	}
}

// Params returns the registration parameters. The category must have
// passed Validate.
func (c *Config) Params() hap.Params {
	category, err := host.ParseCategory(c.Accessory.Category)
	if err != nil {
		category = host.CategoryOther
	}
	return hap.Params{
		Category:      category,
		Port:          c.Accessory.Port,
		ConfigVersion: c.Accessory.ConfigVersion,
	}
}
