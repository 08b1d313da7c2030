package theme

import "slices"

// PrismThemes lists the highlighting themes known to the host.
var PrismThemes = []string{
	"dracula",
	"duotoneDark",
	"duotoneLight",
	"github",
	"gruvboxMaterialDark",
	"gruvboxMaterialLight",
	"jettwaveDark",
	"jettwaveLight",
	"nightOwl",
	"nightOwlLight",
	"oceanicNext",
	"okaidia",
	"oneDark",
	"oneLight",
	"palenight",
	"shadesOfPurple",
	"synthwave84",
	"ultramin",
	"vsDark",
	"vsLight",
}

const defaultPrismTheme = "palenight"

type PrismConfig struct {
	Theme               string   `json:"theme,omitempty"`
	DarkTheme           string   `json:"darkTheme,omitempty"`
	DefaultLanguage     string   `json:"defaultLanguage,omitempty"`
	AdditionalLanguages []string `json:"additionalLanguages,omitempty"`
}

func IsPrismTheme(name string) bool {
	return slices.Contains(PrismThemes, name)
}
