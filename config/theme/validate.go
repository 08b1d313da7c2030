package theme

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/unchain-tech/unchain-portal/config/validate"
)

// Context carries what theme validation needs from the rest of the configuration.
type Context struct {
	Sidebars []string
	Assets   validate.Assets
}

func (t *ThemeConfig) Validate(v *validate.ValidationErrors, path string, ctx Context) {
	validate.CheckAsset(v, path+"/image", t.Image, ctx.Assets)
	validate.RequireOneOf(v, path+"/colorMode/defaultMode", t.ColorMode.DefaultMode, []ColorModeName{ModeLight, ModeDark})
	t.Navbar.validate(v, path+"/navbar", ctx)
	t.Footer.validate(v, path+"/footer", ctx)
	t.Prism.validate(v, path+"/prism")
}

func (l *Logo) validate(v *validate.ValidationErrors, path string, ctx Context) {
	if l == nil {
		return
	}
	if validate.RequireString(v, path+"/src", l.Src) {
		validate.CheckAsset(v, path+"/src", l.Src, ctx.Assets)
	}
	validate.CheckAsset(v, path+"/srcDark", l.SrcDark, ctx.Assets)
}

func (n *NavbarConfig) validate(v *validate.ValidationErrors, path string, ctx Context) {
	n.Logo.validate(v, path+"/logo", ctx)
	if n.Title == "" && n.Logo == nil {
		log.Warn().Str("config", path).Msg("navbar has neither title nor logo")
	}
	for i, item := range n.Items {
		item.validate(v, fmt.Sprintf("%s/items[%d]", path, i), ctx, false)
	}
}

func (i NavbarItem) validate(v *validate.ValidationErrors, path string, ctx Context, nested bool) {
	if !validate.RequireOneOf(v, path+"/type", i.Kind(), ItemTypes) {
		return
	}
	if i.Position != "" {
		validate.RequireOneOf(v, path+"/position", i.Position, Positions)
	}

	switch i.Kind() {
	case ItemDefault:
		validate.RequireString(v, path+"/label", i.Label)
		validateTarget(v, path, i.To, i.Href)
	case ItemDocSidebar:
		if validate.RequireString(v, path+"/sidebarId", i.SidebarID) {
			if !slices.Contains(ctx.Sidebars, i.SidebarID) {
				validate.Fail(v, path+"/sidebarId", i.SidebarID,
					fmt.Errorf("unknown sidebar (known: %v)", ctx.Sidebars))
			}
		}
	case ItemDoc:
		validate.RequireString(v, path+"/docId", i.DocID)
	case ItemHTML:
		validate.RequireString(v, path+"/value", i.Value)
	case ItemDropdown:
		if nested {
			validate.Fail(v, path+"/type", i.Type, errors.New("dropdowns cannot be nested"))
			return
		}
		validate.RequireString(v, path+"/label", i.Label)
		if validate.RequireNonEmpty(v, path+"/items", i.Items) {
			for j, sub := range i.Items {
				sub.validate(v, fmt.Sprintf("%s/items[%d]", path, j), ctx, true)
			}
		}
	case ItemLocaleDropdown, ItemSearch:
		validate.LogConfigOK(path+"/type", i.Kind())
	}
}

// validateTarget requires exactly one of an internal route or an external url.
func validateTarget(v *validate.ValidationErrors, path string, to string, href string) {
	switch {
	case to == "" && href == "":
		validate.Fail(v, path, nil, errors.New("either to or href is required"))
	case to != "" && href != "":
		validate.Fail(v, path, map[string]string{"to": to, "href": href}, errors.New("to and href are mutually exclusive"))
	case href != "":
		u, err := url.Parse(href)
		if err != nil {
			validate.Fail(v, path+"/href", href, err)
			return
		}
		if !u.IsAbs() {
			validate.Fail(v, path+"/href", href, errors.New("must be an absolute url, use to for internal links"))
			return
		}
		validate.LogConfigOK(path+"/href", href)
	default:
		validate.LogConfigOK(path+"/to", to)
	}
}

func (f *FooterConfig) validate(v *validate.ValidationErrors, path string, ctx Context) {
	if f.Style != "" {
		validate.RequireOneOf(v, path+"/style", f.Style, FooterStyles)
	}
	f.Logo.validate(v, path+"/logo", ctx)

	for i, group := range f.Links {
		groupPath := fmt.Sprintf("%s/links[%d]", path, i)
		validate.RequireString(v, groupPath+"/title", group.Title)
		if !validate.RequireNonEmpty(v, groupPath+"/items", group.Items) {
			continue
		}
		for j, item := range group.Items {
			item.validate(v, fmt.Sprintf("%s/items[%d]", groupPath, j))
		}
	}

	if f.Copyright != "" {
		if _, err := f.RenderCopyright(1970); err != nil {
			validate.Fail(v, path+"/copyright", f.Copyright, err)
		} else {
			validate.LogConfigOK(path+"/copyright", f.Copyright)
		}
	}
}

func (i FooterLinkItem) validate(v *validate.ValidationErrors, path string) {
	if i.HTML != "" {
		if i.Label != "" || i.To != "" || i.Href != "" {
			validate.Fail(v, path+"/html", i.HTML, errors.New("html items cannot carry label, to or href"))
		}
		return
	}
	validate.RequireString(v, path+"/label", i.Label)
	validateTarget(v, path, i.To, i.Href)
}

func (p *PrismConfig) validate(v *validate.ValidationErrors, path string) {
	validate.RequireOneOf(v, path+"/theme", p.Theme, PrismThemes)
	validate.RequireOneOf(v, path+"/darkTheme", p.DarkTheme, PrismThemes)
	for i, lang := range p.AdditionalLanguages {
		validate.RequireString(v, fmt.Sprintf("%s/additionalLanguages[%d]", path, i), lang)
	}
	validate.RequireUnique(v, path+"/additionalLanguages", p.AdditionalLanguages)
}
