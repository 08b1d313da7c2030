package i18n

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

type I18nConfig struct {
	DefaultLocale string                  `json:"defaultLocale"`
	Locales       []string                `json:"locales"`
	Path          string                  `json:"path,omitempty"`
	LocaleConfigs map[string]LocaleConfig `json:"localeConfigs,omitempty"`
}

type LocaleConfig struct {
	Label     string    `json:"label,omitempty"`
	Direction Direction `json:"direction,omitempty"`
	HTMLLang  string    `json:"htmlLang,omitempty"`
	Path      string    `json:"path,omitempty"`
}

// IsDefault reports whether locale is the default one.
func (c I18nConfig) IsDefault(locale string) bool {
	return c.DefaultLocale == locale
}

// Locale returns the effective settings of locale, falling back to the
// locale tag itself for the html lang attribute and the path segment.
func (c I18nConfig) Locale(locale string) LocaleConfig {
	lc := c.LocaleConfigs[locale]
	if lc.Label == "" {
		lc.Label = locale
	}
	if lc.Direction == "" {
		lc.Direction = DirectionLTR
	}
	if lc.HTMLLang == "" {
		lc.HTMLLang = locale
	}
	if lc.Path == "" {
		lc.Path = locale
	}
	return lc
}
