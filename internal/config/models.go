package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. WINSNAP_LOG_LEVEL
const EnvPrefix = "WINSNAP"

// Config represents the application configuration
type Config struct {
	LogLevel     string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogPretty    bool          `json:"log_pretty" yaml:"log_pretty" mapstructure:"log_pretty"`
	OutputFormat string        `json:"output_format" yaml:"output_format" mapstructure:"output_format"`
	Display      string        `json:"display" yaml:"display" mapstructure:"display"`
	ServerPort   int           `json:"server_port" yaml:"server_port" mapstructure:"server_port"`
	Capture      CaptureConfig `json:"capture" yaml:"capture" mapstructure:"capture"`
}

// CaptureConfig represents capture and encoding settings
type CaptureConfig struct {
	UseComposite bool `json:"use_composite" yaml:"use_composite" mapstructure:"use_composite"`
	JPEGQuality  int  `json:"jpeg_quality" yaml:"jpeg_quality" mapstructure:"jpeg_quality"`
}

// Defaults returns the default configuration
func Defaults() *Config {
	return &Config{
		LogLevel:     "warn",
		LogPretty:    true,
		OutputFormat: "text",
		Display:      "",
		ServerPort:   8080,
		Capture: CaptureConfig{
			UseComposite: false,
			JPEGQuality:  90,
		},
	}
}

// flagKeys maps persistent CLI flags to configuration keys
var flagKeys = map[string]string{
	"log-level": "log_level",
	"format":    "output_format",
	"display":   "display",
	"port":      "server_port",
}

// Manager handles configuration. Reads see defaults, the config file,
// WINSNAP_* environment variables and bound flags; Save writes only the
// file contents plus values changed through Set.
type Manager struct {
	configPath string
	v          *viper.Viper
	file       *viper.Viper
	config     *Config
	mu         sync.RWMutex
}

// DefaultPath returns $HOME/.config/winsnap/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winsnap", "config.yaml"), nil
}

// NewManager loads configuration from configFile, or from the default path
// when empty. A missing file is created with defaults.
func NewManager(configFile string) (*Manager, error) {
	actualConfigPath := configFile
	if actualConfigPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		actualConfigPath = p
	}

	m := &Manager{
		configPath: actualConfigPath,
		v:          newViper(actualConfigPath),
		file:       newFileViper(actualConfigPath),
	}

	if err := m.file.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logger.WithComponent("config").Info().
			Str("path", m.configPath).
			Msg("Config file not found, creating new config")
		if err := m.reload(); err != nil {
			return nil, err
		}
		if err := m.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return m, nil
	}

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := m.reload(); err != nil {
		return nil, err
	}

	logger.WithComponent("config").Debug().
		Str("path", m.configPath).
		Msg("Config loaded")
	return m, nil
}

// newViper is the merged view used for reading
func newViper(path string) *viper.Viper {
	v := newFileViper(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// newFileViper holds defaults and file values only; it is what Save writes
func newFileViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_pretty", d.LogPretty)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("display", d.Display)
	v.SetDefault("server_port", d.ServerPort)
	v.SetDefault("capture.use_composite", d.Capture.UseComposite)
	v.SetDefault("capture.jpeg_quality", d.Capture.JPEGQuality)
	return v
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// reload rebuilds the typed config from viper's merged view
func (m *Manager) reload() error {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.mu.Lock()
	m.config = &cfg
	m.mu.Unlock()
	return nil
}

// BindFlags lets explicitly set CLI flags override file and env values
func (m *Manager) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := m.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return m.reload()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return Defaults()
	}
	cfg := *m.config
	return &cfg
}

// GetViper returns the underlying viper instance
func (m *Manager) GetViper() *viper.Viper {
	return m.v
}

// Set updates a single key, both for reads and for the next Save
func (m *Manager) Set(key string, value any) error {
	m.v.Set(key, value)
	m.file.Set(key, value)
	return m.reload()
}

// Save writes the file-backed configuration to disk. Environment and flag
// overrides are never persisted.
func (m *Manager) Save() error {
	var cfg Config
	if err := m.file.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	logger.WithComponent("config").Debug().
		Str("path", m.configPath).
		Msg("Saving config")

	// Ensure the directory exists
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		logger.WithComponent("config").Error().
			Err(err).
			Str("path", m.configPath).
			Msg("Failed to write config")
		return err
	}

	logger.WithComponent("config").Debug().
		Str("path", m.configPath).
		Msg("Config saved")
	return nil
}

// GetConfigPath returns the path to the config file
func (m *Manager) GetConfigPath() string {
	return m.configPath
}
