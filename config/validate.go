package config

import (
	"github.com/unchain-tech/unchain-portal/config/theme"
	"github.com/unchain-tech/unchain-portal/config/validate"
)

func (c *Config) Validate() error {
	var verr validate.ValidationErrors
	assets := c.assets()

	c.SiteConfig.Validate(&verr, "", assets)
	c.I18n.Validate(&verr, "i18n")
	c.Presets.Validate(&verr, "presets", c.presetRegistry(), c.Dir)
	c.Sidebars.Validate(&verr, "sidebars")
	c.ThemeConfig.Validate(&verr, "themeConfig", theme.Context{
		Sidebars: c.Sidebars.IDs(),
		Assets:   assets,
	})

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
