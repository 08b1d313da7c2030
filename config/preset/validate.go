package preset

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/unchain-tech/unchain-portal/config/validate"
)

func (ps Presets) Validate(v *validate.ValidationErrors, path string, registry *Registry, dir string) {
	if len(ps) == 0 {
		log.Info().Str("config", path).Msg("no presets defined")
		return
	}

	seen := map[string]int{}
	for i := range ps {
		base := fmt.Sprintf("%s[%d]", path, i)
		p := &ps[i]

		if !validate.RequireString(v, base+"/name", p.Name) {
			continue
		}
		if p.Resolved == "" {
			_, err := registry.Resolve(p.Name, dir)
			validate.Fail(v, base+"/name", p.Name, err)
			continue
		}
		if first, dup := seen[p.Resolved]; dup {
			validate.Fail(v, base+"/name", p.Name,
				fmt.Errorf("module %s already used by %s[%d]", p.Resolved, path, first))
			continue
		}
		seen[p.Resolved] = i
		validate.LogConfigOK(base+"/module", p.Resolved)

		if p.Resolved == ClassicModule {
			p.validateClassic(v, base+"/options")
		}
	}
}

func (p *Preset) validateClassic(v *validate.ValidationErrors, path string) {
	opts, err := p.Classic()
	if err != nil {
		validate.Fail(v, path, p.Options, err)
		return
	}
	if !opts.Docs.Disabled {
		checkEditURL(v, path+"/docs/editUrl", opts.Docs.EditURL)
		validate.RequireString(v, path+"/docs/routeBasePath", opts.Docs.RouteBasePath)
	}
	if !opts.Blog.Disabled {
		checkEditURL(v, path+"/blog/editUrl", opts.Blog.EditURL)
		validate.RequireString(v, path+"/blog/routeBasePath", opts.Blog.RouteBasePath)
	}
	for i, css := range opts.Theme.CustomCSS {
		validate.RequireString(v, fmt.Sprintf("%s/theme/customCss[%d]", path, i), css)
	}
}

func checkEditURL(v *validate.ValidationErrors, path string, raw string) {
	if raw == "" {
		return
	}
	u, err := url.Parse(raw)
	if err != nil {
		validate.Fail(v, path, raw, err)
		return
	}
	if !u.IsAbs() || u.Host == "" {
		validate.Fail(v, path, raw, errors.New("must be an absolute url"))
		return
	}
	validate.LogConfigOK(path, raw)
}
