package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/unchain-tech/unchain-portal/config/preset"
	"github.com/unchain-tech/unchain-portal/config/sidebar"
	"github.com/unchain-tech/unchain-portal/utils"
)

func (c *Config) TransformBeforeValidation() error {
	if err := c.SiteConfig.TransformBeforeValidation(); err != nil {
		return err
	}
	if err := c.I18n.TransformBeforeValidation(); err != nil {
		return err
	}
	if err := c.Presets.TransformBeforeValidation(c.presetRegistry(), c.Dir); err != nil {
		return err
	}
	if err := c.ThemeConfig.TransformBeforeValidation(); err != nil {
		return err
	}
	return c.loadSidebars()
}

func (c *Config) TransformAfterValidation(now time.Time) error {
	if err := c.SiteConfig.TransformAfterValidation(); err != nil {
		return err
	}
	if err := c.ThemeConfig.TransformAfterValidation(now); err != nil {
		return err
	}
	fingerprint, err := utils.HashDataJSON(c)
	if err != nil {
		return err
	}
	c.Fingerprint = fingerprint
	return nil
}

// loadSidebars collects the sidebars of the classic docs plugin. Without a
// classic preset, or with docs switched off, there are none.
func (c *Config) loadSidebars() error {
	c.Sidebars = nil

	p, ok := c.Presets.Find(preset.ClassicModule)
	if !ok {
		return nil
	}
	opts, err := p.Classic()
	if err != nil {
		// reported by validation
		return nil
	}
	if opts.Docs.Disabled {
		return nil
	}
	if opts.Docs.SidebarPath == "" {
		c.Sidebars = sidebar.Default()
		return nil
	}

	path := opts.Docs.SidebarPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Dir, path)
	}
	sidebars, err := sidebar.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load sidebars: %w", err)
	}
	log.Logger.Debug().Str("path", path).Strs("sidebars", sidebars.IDs()).Msg("sidebars loaded")
	c.Sidebars = sidebars
	return nil
}
