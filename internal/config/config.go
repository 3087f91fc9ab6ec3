package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pagescroll/internal/eventbus"
	"pagescroll/internal/scroll"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Scroll     ScrollSettings `toml:"scroll"`
	UISettings UISettings     `toml:"ui"`
}

// ScrollSettings tunes the page scroller. Sizes are in terminal cells.
type ScrollSettings struct {
	PageWidth           float32 `toml:"page_width"`  // 0 follows the terminal width
	PageHeight          float32 `toml:"page_height"` // 0 follows the terminal height
	Offset              float32 `toml:"offset"`
	SlideThreshold      float32 `toml:"slide_threshold"`
	PageChangeThreshold float32 `toml:"page_change_threshold"`
	SlideDuration       float32 `toml:"slide_duration"`
	Easing              string  `toml:"easing"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIndicator bool `toml:"show_indicator"`
	ShowHelp      bool `toml:"show_help"`
	FrameRate     int  `toml:"frame_rate"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pagescroll", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Scroll: ScrollSettings{
			SlideThreshold:      2,
			PageChangeThreshold: 10,
			SlideDuration:       scroll.DefaultSlideDuration,
			Easing:              "out-cubic",
		},
		UISettings: UISettings{
			ShowIndicator: true,
			ShowHelp:      true,
			FrameRate:     60,
		},
	}
}

// Validate checks values the scroller cannot work with
func (c *Config) Validate() error {
	s := c.Scroll
	if s.PageWidth < 0 || s.PageHeight < 0 {
		return fmt.Errorf("page size must not be negative")
	}
	if s.PageWidth > 0 && s.Offset >= s.PageWidth {
		return fmt.Errorf("offset %v must be smaller than page width %v", s.Offset, s.PageWidth)
	}
	if s.SlideThreshold < 0 || s.PageChangeThreshold < 0 {
		return fmt.Errorf("thresholds must not be negative")
	}
	if s.SlideDuration <= 0 {
		return fmt.Errorf("slide duration must be positive")
	}
	if _, err := EasingByName(s.Easing); err != nil {
		return err
	}
	if c.UISettings.FrameRate <= 0 || c.UISettings.FrameRate > 240 {
		return fmt.Errorf("frame rate %d out of range 1-240", c.UISettings.FrameRate)
	}
	return nil
}

// ScrollConfig converts the settings into a scroller configuration
func (c *Config) ScrollConfig() scroll.Config {
	s := c.Scroll
	sc := scroll.NewConfig(s.PageWidth, s.PageHeight, s.SlideThreshold, s.PageChangeThreshold)
	sc.Offset = s.Offset
	sc.SlideDuration = s.SlideDuration
	if fn, err := EasingByName(s.Easing); err == nil {
		sc.Easing = fn
	}
	return sc
}
