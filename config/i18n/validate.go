package i18n

import (
	"errors"
	"fmt"
	"slices"

	"github.com/unchain-tech/unchain-portal/config/validate"
	"golang.org/x/text/language"
)

func (c *I18nConfig) Validate(v *validate.ValidationErrors, path string) {
	localesPath := validate.Join(path, "locales")
	if validate.RequireNonEmpty(v, localesPath, c.Locales) {
		for i, l := range c.Locales {
			checkTag(v, fmt.Sprintf("%s[%d]", localesPath, i), l)
		}
		if validate.RequireUnique(v, localesPath, c.Locales) {
			validate.LogConfigOK(localesPath, c.Locales)
		}
	}

	defaultPath := validate.Join(path, "defaultLocale")
	if validate.RequireString(v, defaultPath, c.DefaultLocale) {
		if !slices.Contains(c.Locales, c.DefaultLocale) {
			validate.Fail(v, defaultPath, c.DefaultLocale,
				fmt.Errorf("must be one of the configured locales %v", c.Locales))
		}
	}

	for locale, lc := range c.LocaleConfigs {
		lcPath := fmt.Sprintf("%s/localeConfigs/%s", path, locale)
		if !slices.Contains(c.Locales, locale) {
			validate.Fail(v, lcPath, locale, errors.New("locale is not listed in locales"))
		}
		if lc.Direction != "" {
			validate.RequireOneOf(v, lcPath+"/direction", lc.Direction, []Direction{DirectionLTR, DirectionRTL})
		}
		if lc.HTMLLang != "" {
			checkTag(v, lcPath+"/htmlLang", lc.HTMLLang)
		}
	}
}

func checkTag(v *validate.ValidationErrors, path string, tag string) {
	if _, err := language.Parse(tag); err != nil {
		validate.Fail(v, path, tag, fmt.Errorf("invalid locale tag: %w", err))
	}
}
