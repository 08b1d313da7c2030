package site

type BrokenLinkPolicy string

const (
	PolicyIgnore BrokenLinkPolicy = "ignore"
	PolicyLog    BrokenLinkPolicy = "log"
	PolicyWarn   BrokenLinkPolicy = "warn"
	PolicyThrow  BrokenLinkPolicy = "throw"
)

var BrokenLinkPolicies = []BrokenLinkPolicy{PolicyIgnore, PolicyLog, PolicyWarn, PolicyThrow}

// SiteConfig holds the top level site metadata. Its keys sit directly at the
// document root, next to i18n, presets and themeConfig.
type SiteConfig struct {
	Title                 string           `json:"title"`
	Tagline               string           `json:"tagline"`
	Favicon               string           `json:"favicon,omitempty"`
	URL                   string           `json:"url"`
	BaseURL               string           `json:"baseUrl"`
	TrailingSlash         *bool            `json:"trailingSlash,omitempty"`
	OrganizationName      string           `json:"organizationName,omitempty"`
	ProjectName           string           `json:"projectName,omitempty"`
	DeploymentBranch      string           `json:"deploymentBranch,omitempty"`
	OnBrokenLinks         BrokenLinkPolicy `json:"onBrokenLinks,omitempty"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `json:"onBrokenMarkdownLinks,omitempty"`
	StaticDirectories     []string         `json:"staticDirectories,omitempty"`

	AbsoluteBaseURL string `json:"-"`
}

func Defaults() SiteConfig {
	return SiteConfig{
		BaseURL:               "/",
		DeploymentBranch:      "gh-pages",
		OnBrokenLinks:         PolicyThrow,
		OnBrokenMarkdownLinks: PolicyWarn,
		StaticDirectories:     []string{"static"},
	}
}

// DeploymentRepo returns "organization/project", or "" when either half is unset.
func (s SiteConfig) DeploymentRepo() string {
	if s.OrganizationName == "" || s.ProjectName == "" {
		return ""
	}
	return s.OrganizationName + "/" + s.ProjectName
}
