package theme

import (
	"time"

	"dario.cat/mergo"
)

func (t *ThemeConfig) TransformBeforeValidation() error {
	if err := mergo.Merge(&t.ColorMode, ColorModeConfig{DefaultMode: ModeLight}); err != nil {
		return err
	}
	return mergo.Merge(&t.Prism, PrismConfig{Theme: defaultPrismTheme, DarkTheme: defaultPrismTheme})
}

func (t *ThemeConfig) TransformAfterValidation(now time.Time) error {
	rendered, err := t.Footer.RenderCopyright(now.Year())
	if err != nil {
		return err
	}
	t.Footer.RenderedCopyright = rendered
	return nil
}
