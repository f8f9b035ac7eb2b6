// Package carrier builds links to a carrier's public tracking page.
package carrier

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/glabrego/cargonav/internal/tracking"
)

const (
	DefaultBaseURL = "https://www.ups.com/track"
	DefaultLocale  = "en_US"
)

type Carrier struct {
	Name    string
	BaseURL string
	Locale  string
}

func UPS() Carrier {
	return Carrier{Name: "UPS", BaseURL: DefaultBaseURL, Locale: DefaultLocale}
}

func New(name, baseURL, locale string) (Carrier, error) {
	c := Carrier{Name: name, BaseURL: strings.TrimRight(baseURL, "/"), Locale: locale}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return Carrier{}, fmt.Errorf("parse carrier base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Carrier{}, fmt.Errorf("unsupported carrier URL scheme: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return Carrier{}, fmt.Errorf("invalid carrier URL host")
	}
	return c, nil
}

// TrackingURL returns the page showing the status of q, for example
// https://www.ups.com/track?loc=en_US&tracknum=1Z999AA10123456784.
func (c Carrier) TrackingURL(q tracking.Query) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	locale := c.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	return base + "?loc=" + url.QueryEscape(locale) + "&tracknum=" + url.QueryEscape(q.String())
}
