package preset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
)

// ClassicOptions is the typed view of the classic preset's options bag.
type ClassicOptions struct {
	Docs  *DocsOptions  `json:"docs,omitempty"`
	Blog  *BlogOptions  `json:"blog,omitempty"`
	Pages *PagesOptions `json:"pages,omitempty"`
	Theme ThemeOptions  `json:"theme,omitempty"`
}

type DocsOptions struct {
	Disabled      bool   `json:"-"`
	Path          string `json:"path,omitempty"`
	RouteBasePath string `json:"routeBasePath,omitempty"`
	SidebarPath   string `json:"sidebarPath,omitempty"`
	EditURL       string `json:"editUrl,omitempty"`
}

type BlogOptions struct {
	Disabled        bool   `json:"-"`
	Path            string `json:"path,omitempty"`
	RouteBasePath   string `json:"routeBasePath,omitempty"`
	ShowReadingTime bool   `json:"showReadingTime,omitempty"`
	EditURL         string `json:"editUrl,omitempty"`
}

type PagesOptions struct {
	Disabled      bool   `json:"-"`
	Path          string `json:"path,omitempty"`
	RouteBasePath string `json:"routeBasePath,omitempty"`
}

type ThemeOptions struct {
	CustomCSS StringList `json:"customCss,omitempty"`
}

// StringList decodes either a single string or a list of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

func isFalse(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("false"))
}

func (d *DocsOptions) UnmarshalJSON(data []byte) error {
	if isFalse(data) {
		*d = DocsOptions{Disabled: true}
		return nil
	}
	type plain DocsOptions
	return json.Unmarshal(data, (*plain)(d))
}

func (b *BlogOptions) UnmarshalJSON(data []byte) error {
	if isFalse(data) {
		*b = BlogOptions{Disabled: true}
		return nil
	}
	type plain BlogOptions
	return json.Unmarshal(data, (*plain)(b))
}

func (p *PagesOptions) UnmarshalJSON(data []byte) error {
	if isFalse(data) {
		*p = PagesOptions{Disabled: true}
		return nil
	}
	type plain PagesOptions
	return json.Unmarshal(data, (*plain)(p))
}

func defaultDocs() DocsOptions {
	return DocsOptions{Path: "docs", RouteBasePath: "docs"}
}

func defaultBlog() BlogOptions {
	return BlogOptions{Path: "blog", RouteBasePath: "blog"}
}

func defaultPages() PagesOptions {
	return PagesOptions{Path: "src/pages", RouteBasePath: "/"}
}

// Classic decodes the options bag as classic preset options and fills the
// plugin defaults of every plugin that is not switched off.
func (p Preset) Classic() (ClassicOptions, error) {
	var opts ClassicOptions
	if len(p.Options) > 0 {
		raw, err := json.Marshal(p.Options)
		if err != nil {
			return opts, err
		}
		if err := json.Unmarshal(raw, &opts); err != nil {
			return opts, fmt.Errorf("classic options: %w", err)
		}
	}

	if opts.Docs == nil {
		opts.Docs = &DocsOptions{}
	}
	if opts.Blog == nil {
		opts.Blog = &BlogOptions{}
	}
	if opts.Pages == nil {
		opts.Pages = &PagesOptions{}
	}
	if !opts.Docs.Disabled {
		if err := mergo.Merge(opts.Docs, defaultDocs()); err != nil {
			return opts, err
		}
	}
	if !opts.Blog.Disabled {
		if err := mergo.Merge(opts.Blog, defaultBlog()); err != nil {
			return opts, err
		}
	}
	if !opts.Pages.Disabled {
		if err := mergo.Merge(opts.Pages, defaultPages()); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
