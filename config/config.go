package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/unchain-tech/unchain-portal/config/format"
	"github.com/unchain-tech/unchain-portal/config/i18n"
	"github.com/unchain-tech/unchain-portal/config/preset"
	"github.com/unchain-tech/unchain-portal/config/sidebar"
	"github.com/unchain-tech/unchain-portal/config/site"
	"github.com/unchain-tech/unchain-portal/config/theme"
	"github.com/unchain-tech/unchain-portal/config/validate"
)

const (
	ENV_PREFIX = "PORTAL"

	DefaultConfigPath = "portal.yaml"
)

var (
	LogConfigEnv  = ENV_PREFIX + "_LOG_CONFIG"
	ConfigPathEnv = ENV_PREFIX + "_CONFIG"
)

// Config is the site configuration handed to the site generator. Site
// metadata keys live at the document root.
type Config struct {
	site.SiteConfig
	I18n         i18n.I18nConfig   `json:"i18n"`
	Presets      preset.Presets    `json:"presets,omitempty"`
	ThemeConfig  theme.ThemeConfig `json:"themeConfig"`
	CustomFields map[string]any    `json:"customFields,omitempty"`

	Env         Environment      `json:"-"`
	Dir         string           `json:"-"`
	Sidebars    sidebar.Sidebars `json:"-"`
	Fingerprint string           `json:"-"`

	registry *preset.Registry
}

// Loader carries the inputs of a load that do not come from the file itself.
type Loader struct {
	Env      Environment
	Registry *preset.Registry
	Now      func() time.Time
}

// DefaultLoader reads the environment from PORTAL_ENV and uses the installed
// presets and the wall clock.
func DefaultLoader() (Loader, error) {
	env, err := LoadEnvironment()
	if err != nil {
		return Loader{}, err
	}
	return Loader{
		Env:      env,
		Registry: preset.Installed,
		Now:      time.Now,
	}, nil
}

func Load(path string) (*Config, error) {
	l, err := DefaultLoader()
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

func (l Loader) Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")
	f, err := format.Detect(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return l.Parse(data, f, dir)
}

// Parse builds a validated configuration from raw file content. dir is the
// directory relative paths are resolved against.
func (l Loader) Parse(data []byte, f format.Format, dir string) (*Config, error) {
	doc, err := format.Decode(data, f)
	if err != nil {
		return nil, err
	}

	var verr validate.ValidationErrors
	if err := CheckSchema(doc, &verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, &verr
	}

	var cfg Config
	if err := format.Convert(doc, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Env = l.Env
	cfg.Dir = dir
	cfg.registry = l.Registry

	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	if err := cfg.TransformAfterValidation(now()); err != nil {
		return nil, err
	}

	writeOutSummary(&cfg)
	log.Logger.Info().Msg("Configuration loaded")
	return &cfg, nil
}

func (c *Config) presetRegistry() *preset.Registry {
	if c.registry == nil {
		return preset.Installed
	}
	return c.registry
}

func (c *Config) assets() validate.Assets {
	return validate.Assets{
		Root:   c.Dir,
		Dirs:   c.StaticDirectories,
		Strict: c.Env == EnvProduction,
	}
}

// Marshal serialises the configuration in the host's key layout.
func (c *Config) Marshal(f format.Format) ([]byte, error) {
	doc, err := format.Generic(c)
	if err != nil {
		return nil, err
	}
	return format.Encode(doc, f)
}

// Lookup reads a single value using gjson path syntax, e.g.
// "themeConfig.navbar.items.0.label".
func (c *Config) Lookup(path string) (gjson.Result, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(raw, path), nil
}
