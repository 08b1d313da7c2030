package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// JoinURL concatenates the site url and baseUrl with exactly one slash
// between them.
func JoinURL(siteURL string, baseURL string) string {
	return strings.TrimRight(siteURL, "/") + "/" + strings.TrimLeft(baseURL, "/")
}

func checkSiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is missing")
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("must not contain a sub-path (%q), put it into baseUrl", u.Path)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return errors.New("must not contain a query or fragment")
	}
	return nil
}

func checkBaseURL(raw string) error {
	if !strings.HasPrefix(raw, "/") {
		return errors.New("must start with a slash")
	}
	if !strings.HasSuffix(raw, "/") {
		return errors.New("must end with a slash")
	}
	if strings.Contains(raw, "//") {
		return errors.New("must not contain empty path segments")
	}
	return nil
}
