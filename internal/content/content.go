// Package content holds the presentation copy of the site: hero slides, the
// about panel and the static pages. It is loaded from an embedded YAML file.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type Slide struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	Alt  string `yaml:"alt"`
	CTA  string `yaml:"cta"`
	Path string `yaml:"path"`
}

type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type About struct {
	Heading    string      `yaml:"heading"`
	Body       string      `yaml:"body"`
	Highlights []Highlight `yaml:"highlights"`
}

type Site struct {
	Brand   string            `yaml:"brand"`
	Tagline string            `yaml:"tagline"`
	Slides  []Slide           `yaml:"slides"`
	About   About             `yaml:"about"`
	Pages   map[string]string `yaml:"pages"`
}

// Default returns the embedded site content.
func Default() (Site, error) {
	return Parse(siteYAML)
}

func Parse(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("decode site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s Site) Validate() error {
	if s.Brand == "" {
		return errors.New("site brand is required")
	}
	if len(s.Slides) == 0 {
		return errors.New("site needs at least one slide")
	}
	for i, slide := range s.Slides {
		if slide.Desc == "" {
			return fmt.Errorf("slide %d has no description", i+1)
		}
		if slide.Path != "" && slide.Path[0] != '/' {
			return fmt.Errorf("slide %d path must start with '/': %s", i+1, slide.Path)
		}
	}
	return nil
}

// Page returns the HTML body of a static page.
func (s Site) Page(path string) (string, bool) {
	body, ok := s.Pages[path]
	return body, ok
}
