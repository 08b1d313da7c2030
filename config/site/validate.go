package site

import (
	"fmt"
	"path/filepath"

	"github.com/unchain-tech/unchain-portal/config/validate"
)

func (s *SiteConfig) Validate(v *validate.ValidationErrors, path string, assets validate.Assets) {
	validate.RequireString(v, validate.Join(path, "title"), s.Title)
	validate.RequireString(v, validate.Join(path, "tagline"), s.Tagline)

	if validate.RequireString(v, validate.Join(path, "url"), s.URL) {
		if err := checkSiteURL(s.URL); err != nil {
			validate.Fail(v, validate.Join(path, "url"), s.URL, err)
		}
	}
	if validate.RequireString(v, validate.Join(path, "baseUrl"), s.BaseURL) {
		if err := checkBaseURL(s.BaseURL); err != nil {
			validate.Fail(v, validate.Join(path, "baseUrl"), s.BaseURL, err)
		}
	}

	validate.RequireOneOf(v, validate.Join(path, "onBrokenLinks"), s.OnBrokenLinks, BrokenLinkPolicies)
	validate.RequireOneOf(v, validate.Join(path, "onBrokenMarkdownLinks"), s.OnBrokenMarkdownLinks, BrokenLinkPolicies)

	dirsPath := validate.Join(path, "staticDirectories")
	if validate.RequireNonEmpty(v, dirsPath, s.StaticDirectories) {
		validate.RequireUnique(v, dirsPath, s.StaticDirectories)
		for i, dir := range s.StaticDirectories {
			dirPath := fmt.Sprintf("%s[%d]", dirsPath, i)
			if !validate.RequireString(v, dirPath, dir) {
				continue
			}
			validate.CheckDir(v, dirPath, filepath.Join(assets.Root, dir), assets.Strict)
		}
	}

	validate.CheckAsset(v, validate.Join(path, "favicon"), s.Favicon, assets)

	if s.OrganizationName != "" {
		validate.LogConfigOK(validate.Join(path, "organizationName"), s.OrganizationName)
	}
	if s.ProjectName != "" {
		validate.LogConfigOK(validate.Join(path, "projectName"), s.ProjectName)
	}
}
