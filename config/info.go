package config

import (
	"github.com/rs/zerolog/log"
)

func writeOutSummary(c *Config) {
	log.Logger.Info().
		Str("url", c.AbsoluteBaseURL).
		Str("default_locale", c.I18n.DefaultLocale).
		Strs("locales", c.I18n.Locales).
		Str("fingerprint", c.Fingerprint).
		Msg("Site configured")

	for _, p := range c.Presets {
		log.Logger.Info().
			Str("preset", p.Name).
			Str("module", p.Resolved).
			Int("options", len(p.Options)).
			Msg("Preset enabled")
	}
	for _, item := range c.ThemeConfig.Navbar.Items {
		log.Logger.Debug().Object("item", item).Msg("Navbar item")
	}
}
