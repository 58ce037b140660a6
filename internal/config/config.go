package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// UserLink is a labelled link shown in the site footer or sidebar.
type UserLink struct {
	Label         string `mapstructure:"label" yaml:"label" validate:"required"`
	URL           string `mapstructure:"url" yaml:"url" validate:"required,weburl"`
	IconClassName string `mapstructure:"iconClassName" yaml:"iconClassName,omitempty"`
}

// Copyright is the site-wide copyright notice.
type Copyright struct {
	Label string `mapstructure:"label" yaml:"label" validate:"required"`
	Year  int    `mapstructure:"year" yaml:"year,omitempty" validate:"omitempty,gte=1970"`
	URL   string `mapstructure:"url" yaml:"url,omitempty" validate:"omitempty,weburl"`
}

// Config holds every site-wide setting the static-site generator consumes.
// It is loaded once and never mutated afterwards.
type Config struct {
	BlogPostDir   string `mapstructure:"blogPostDir" yaml:"blogPostDir" validate:"required"`
	BlogAuthorDir string `mapstructure:"blogAuthorDir" yaml:"blogAuthorDir" validate:"required"`
	BlogAuthorID  string `mapstructure:"blogAuthorId" yaml:"blogAuthorId" validate:"required"`

	SiteTitle       string `mapstructure:"siteTitle" yaml:"siteTitle" validate:"required"`
	SiteTitleAlt    string `mapstructure:"siteTitleAlt" yaml:"siteTitleAlt,omitempty"`
	SiteLogo        string `mapstructure:"siteLogo" yaml:"siteLogo,omitempty"`
	SiteURL         string `mapstructure:"siteUrl" yaml:"siteUrl" validate:"required,weburl"`
	PathPrefix      string `mapstructure:"pathPrefix" yaml:"pathPrefix,omitempty"`
	SiteDescription string `mapstructure:"siteDescription" yaml:"siteDescription,omitempty"`
	SiteCover       string `mapstructure:"siteCover" yaml:"siteCover,omitempty"`
	SiteNavigation  bool   `mapstructure:"siteNavigation" yaml:"siteNavigation"`

	SiteRSS       string `mapstructure:"siteRss" yaml:"siteRss,omitempty"`
	SiteRSSAuthor string `mapstructure:"siteRssAuthor" yaml:"siteRssAuthor,omitempty"`

	SitePaginationLimit int    `mapstructure:"sitePaginationLimit" yaml:"sitePaginationLimit" validate:"gte=1"`
	GoogleAnalyticsID   string `mapstructure:"googleAnalyticsID" yaml:"googleAnalyticsID,omitempty"`

	SiteSocialURLs []string `mapstructure:"siteSocialUrls" yaml:"siteSocialUrls,omitempty" validate:"dive,weburl"`

	PostDefaultCategoryID string `mapstructure:"postDefaultCategoryID" yaml:"postDefaultCategoryID" validate:"required"`

	UserLinks []UserLink `mapstructure:"userLinks" yaml:"userLinks,omitempty" validate:"dive"`
	Copyright Copyright  `mapstructure:"copyright" yaml:"copyright"`

	ThemeColor      string `mapstructure:"themeColor" yaml:"themeColor,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `mapstructure:"backgroundColor" yaml:"backgroundColor,omitempty" validate:"omitempty,hexcolor"`

	PromoteGatsby bool `mapstructure:"promoteGatsby" yaml:"promoteGatsby"`
}

// MalformedConfigurationError reports a setting whose value is missing or
// has the wrong shape or type. It always aborts the load.
type MalformedConfigurationError struct {
	Field  string
	Reason string
}

func (e *MalformedConfigurationError) Error() string {
	if e.Field == "" {
		return "malformed configuration: " + e.Reason
	}
	return fmt.Sprintf("malformed configuration: %s: %s", e.Field, e.Reason)
}

// SetDefaults registers the static default for every recognized setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("blogPostDir", "content/posts")
	v.SetDefault("blogAuthorDir", "content/authors")
	v.SetDefault("blogAuthorId", "mehdi")
	v.SetDefault("siteTitle", "Mehdi Benadda")
	v.SetDefault("siteTitleAlt", "mbenadda.com")
	v.SetDefault("siteLogo", "/logos/logo-1024.png")
	v.SetDefault("siteUrl", "https://mbenadda.com")
	v.SetDefault("pathPrefix", "/")
	v.SetDefault("siteDescription", "Thoughts on building software, mostly for the web.")
	v.SetDefault("siteCover", "/images/cover.jpg")
	v.SetDefault("siteNavigation", true)
	v.SetDefault("siteRss", "/rss.xml")
	v.SetDefault("siteRssAuthor", "Mehdi Benadda")
	v.SetDefault("sitePaginationLimit", 10)
	v.SetDefault("googleAnalyticsID", "")
	v.SetDefault("siteSocialUrls", []string{
		"https://github.com/mbenadda",
		"https://www.linkedin.com/in/mbenadda",
		"mailto:hello@mbenadda.com",
	})
	v.SetDefault("postDefaultCategoryID", "default")
	v.SetDefault("copyright.label", "Copyright © Mehdi Benadda. All rights reserved.")
	v.SetDefault("themeColor", "#222222")
	v.SetDefault("backgroundColor", "#e0e0e0")
	v.SetDefault("promoteGatsby", false)
}

// Load decodes and validates the settings held by v. The returned Config is
// complete or the error is a *MalformedConfigurationError.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &MalformedConfigurationError{Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag name.
	_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		return isWebURL(fl.Field().String())
	})
	return v
}

// Validate checks every field against the schema rules and reports the
// first violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &MalformedConfigurationError{Field: fieldKey(fe), Reason: violationReason(fe)}
	}
	return &MalformedConfigurationError{Reason: err.Error()}
}

// fieldKey turns a validator namespace like "Config.Copyright.Label" into
// the configuration key a user would recognize.
func fieldKey(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.Namespace(), "Config.")
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		// Preserve index suffixes such as "SiteSocialURLs[2]".
		head := p[:1]
		parts[i] = strings.ToLower(head) + p[1:]
	}
	return strings.Join(parts, ".")
}

func violationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "weburl":
		return fmt.Sprintf("%q is not an http(s), mailto, or tel URL", fe.Value())
	case "gte":
		return "must be at least " + fe.Param()
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex color", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// isWebURL accepts the URL schemes a site, social, or user link may carry.
func isWebURL(raw string) bool {
	val := strings.TrimSpace(raw)
	if val == "" {
		return false
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return true
	default:
		return false
	}
}
