package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Rorical/RoriFactor/internal/models"
)

const (
	homeEnv       = "RORIFACTOR_HOME"
	configDirName = ".rorifactor"
	configFile    = "config.json"
	logFile       = "debug.log"
)

type Profile struct {
	Endpoint            string `json:"endpoint"`
	Model               string `json:"model,omitempty"`
	ClearResultsOnReset bool   `json:"clear_results_on_reset,omitempty"`
}

// Validate checks that the endpoint resolves and the model is known
func (p Profile) Validate() error {
	if _, err := ResolveEndpoint(p.Endpoint); err != nil {
		return err
	}
	if !models.IsKnownModel(p.Model) {
		return fmt.Errorf("unknown model %q (known: %v)", p.Model, models.KnownModels)
	}
	return nil
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// UseProfile makes name the current profile for this process without saving
func (c *Config) UseProfile(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

func (c *Config) IsValid() bool {
	return c.Validate() == nil
}

// Validate explains why the current profile cannot be used
func (c *Config) Validate() error {
	if c.currentProfile == nil {
		return fmt.Errorf("no active profile")
	}
	if err := c.currentProfile.Validate(); err != nil {
		return fmt.Errorf("profile '%s': %w", c.ActiveProfile, err)
	}
	return nil
}

// GetEndpoint returns the resolved URL of the current profile's endpoint
func (c *Config) GetEndpoint() (string, error) {
	if c.currentProfile == nil {
		return ResolveEndpoint(DefaultEndpointName)
	}
	return ResolveEndpoint(c.currentProfile.Endpoint)
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.Model
}

func (c *Config) ClearResultsOnReset() bool {
	return c.currentProfile != nil && c.currentProfile.ClearResultsOnReset
}

// ProfileNames returns profile names in a stable order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir returns the directory holding the config file and the debug log
func Dir() (string, error) {
	path, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// LogPath returns the debug log location used while the TUI owns the terminal
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

func getConfigPath() (string, error) {
	var configDir string

	if home := os.Getenv(homeEnv); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, configDirName, configFile), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultProfile targets the built-in endpoint without a model override
func DefaultProfile() Profile {
	return Profile{Endpoint: DefaultEndpointName}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	if _, exists := c.Profiles[c.ActiveProfile]; !exists {
		// Fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
	}

	profile := c.Profiles[c.ActiveProfile]
	c.currentProfile = &profile
	return nil
}
