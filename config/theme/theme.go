package theme

type ColorModeName string

const (
	ModeLight ColorModeName = "light"
	ModeDark  ColorModeName = "dark"
)

type ThemeConfig struct {
	Image     string          `json:"image,omitempty"`
	ColorMode ColorModeConfig `json:"colorMode"`
	Navbar    NavbarConfig    `json:"navbar"`
	Footer    FooterConfig    `json:"footer"`
	Prism     PrismConfig     `json:"prism"`
}

type ColorModeConfig struct {
	DefaultMode               ColorModeName `json:"defaultMode,omitempty"`
	DisableSwitch             bool          `json:"disableSwitch,omitempty"`
	RespectPrefersColorScheme bool          `json:"respectPrefersColorScheme,omitempty"`
}

type Logo struct {
	Alt     string `json:"alt,omitempty"`
	Src     string `json:"src"`
	SrcDark string `json:"srcDark,omitempty"`
	Href    string `json:"href,omitempty"`
}
