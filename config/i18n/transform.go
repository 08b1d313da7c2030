package i18n

import "strings"

const defaultPath = "i18n"

func (c *I18nConfig) TransformBeforeValidation() error {
	c.DefaultLocale = strings.TrimSpace(c.DefaultLocale)
	for i, l := range c.Locales {
		c.Locales[i] = strings.TrimSpace(l)
	}
	if c.Path == "" {
		c.Path = defaultPath
	}
	return nil
}
