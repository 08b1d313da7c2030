package site

import (
	"strings"

	"dario.cat/mergo"
)

func (s *SiteConfig) TransformBeforeValidation() error {
	s.Title = strings.TrimSpace(s.Title)
	s.Tagline = strings.TrimSpace(s.Tagline)
	s.URL = strings.TrimSpace(s.URL)
	s.BaseURL = strings.TrimSpace(s.BaseURL)
	return mergo.Merge(s, Defaults())
}

func (s *SiteConfig) TransformAfterValidation() error {
	s.AbsoluteBaseURL = JoinURL(s.URL, s.BaseURL)
	return nil
}
