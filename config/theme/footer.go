package theme

import (
	"strings"
	"text/template"
)

type FooterStyle string

const (
	FooterDark  FooterStyle = "dark"
	FooterLight FooterStyle = "light"
)

var FooterStyles = []FooterStyle{FooterDark, FooterLight}

type FooterConfig struct {
	Style     FooterStyle       `json:"style,omitempty"`
	Logo      *Logo             `json:"logo,omitempty"`
	Links     []FooterLinkGroup `json:"links,omitempty"`
	Copyright string            `json:"copyright,omitempty"`

	RenderedCopyright string `json:"-"`
}

type FooterLinkGroup struct {
	Title string           `json:"title"`
	Items []FooterLinkItem `json:"items"`
}

type FooterLinkItem struct {
	Label string `json:"label,omitempty"`
	To    string `json:"to,omitempty"`
	Href  string `json:"href,omitempty"`
	HTML  string `json:"html,omitempty"`
}

type copyrightData struct {
	Year int
}

func parseCopyright(text string) (*template.Template, error) {
	return template.New("copyright").Option("missingkey=error").Parse(text)
}

// RenderCopyright expands the copyright template; {{ .Year }} is the only
// field available.
func (f FooterConfig) RenderCopyright(year int) (string, error) {
	if f.Copyright == "" {
		return "", nil
	}
	tpl, err := parseCopyright(f.Copyright)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tpl.Execute(&sb, copyrightData{Year: year}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
