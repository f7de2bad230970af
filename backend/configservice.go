package backend

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const configFileName = "glacier.config"

// ConfigService persists WindowOptions as YAML.
type ConfigService struct {
	path string
}

// NewConfigService resolves the config file: a portable glacier.config in
// the working directory wins over the one in the user config directory.
func NewConfigService() (*ConfigService, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return &ConfigService{path: path}, nil
}

// NewConfigServiceAt uses the config file at path.
func NewConfigServiceAt(path string) *ConfigService {
	return &ConfigService{path: path}
}

// Path returns the config file location.
func (g *ConfigService) Path() string {
	return g.path
}

// GetConfig loads the stored options, creating the file with defaults when
// it does not exist. Unreadable or invalid values fall back to defaults.
func (g *ConfigService) GetConfig() WindowOptions {
	if _, err := os.Stat(g.path); os.IsNotExist(err) {
		slog.Info("creating window config with defaults", "path", g.path)
		if err := g.save(DefaultWindowOptions()); err != nil {
			slog.Warn("failed to write default window config", "path", g.path, "err", err)
		}
		return DefaultWindowOptions()
	}

	b, _ := os.ReadFile(g.path)
	if len(b) == 0 {
		slog.Warn("window config is empty", "path", g.path)
		return DefaultWindowOptions()
	}
	return g.load()
}

// UpdateConfig validates and stores opts.
func (g *ConfigService) UpdateConfig(opts WindowOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Width > 0 && opts.Width < 100 {
		return fmt.Errorf("width must be at least 100")
	}
	if opts.Height > 0 && opts.Height < 100 {
		return fmt.Errorf("height must be at least 100")
	}
	return g.save(opts.withDefaults())
}

func (g *ConfigService) save(opts WindowOptions) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(opts, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load window options: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	b, err := k.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("failed to marshal window options: %w", err)
	}
	if err := os.WriteFile(g.path, b, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (g *ConfigService) load() WindowOptions {
	var o WindowOptions
	k := koanf.New(".")
	if err := k.Load(file.Provider(g.path), yaml.Parser()); err != nil {
		slog.Warn("error parsing window config", "path", g.path, "err", err)
		return DefaultWindowOptions()
	}
	if err := k.Unmarshal("", &o); err != nil {
		slog.Warn("error unmarshaling window config", "path", g.path, "err", err)
		return DefaultWindowOptions()
	}

	d := DefaultWindowOptions()
	if o.Width < 0 || o.Height < 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.MinWidth < 0 || o.MinHeight < 0 {
		o.MinWidth, o.MinHeight = 0, 0
	}
	if o.MaxWidth < 0 || o.MaxHeight < 0 {
		o.MaxWidth, o.MaxHeight = 0, 0
	}
	if o.validate() != nil {
		o.MinWidth, o.MinHeight, o.MaxWidth, o.MaxHeight = 0, 0, 0, 0
	}
	return o.withDefaults()
}

func resolveConfigPath() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		portable := filepath.Join(wd, configFileName)
		if _, err := os.Stat(portable); err == nil {
			return portable, nil
		}
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "glacier", configFileName), nil
}
