package pages

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"sitesearch/core/search"

	"gopkg.in/yaml.v3"
)

// Page is a CMS page parsed from its front matter and markup
type Page struct {
	Name        string        `json:"name" yaml:"-"`
	Title       string        `json:"title" yaml:"title"`
	URL         string        `json:"url" yaml:"url"`
	Description string        `json:"description" yaml:"description"`
	Components  ComponentList `json:"components" yaml:"components"`
	Markup      string        `json:"-" yaml:"-"`
	Text        string        `json:"-" yaml:"-"`
	ModifiedAt  time.Time     `json:"modified_at" yaml:"-"`
}

// ComponentList holds the component aliases attached to a page. In front
// matter it may be written as a list or as a map of alias to properties.
type ComponentList map[string]map[string]any

// UnmarshalYAML accepts both `[a, b]` and `{a: {prop: v}}` forms
func (c *ComponentList) UnmarshalYAML(node *yaml.Node) error {
	out := ComponentList{}
	switch node.Kind {
	case yaml.SequenceNode:
		var aliases []string
		if err := node.Decode(&aliases); err != nil {
			return err
		}
		for _, alias := range aliases {
			out[alias] = map[string]any{}
		}
	case yaml.MappingNode:
		var m map[string]map[string]any
		if err := node.Decode(&m); err != nil {
			return err
		}
		for alias, props := range m {
			if props == nil {
				props = map[string]any{}
			}
			out[alias] = props
		}
	case yaml.ScalarNode:
		if node.Value != "" {
			out[node.Value] = map[string]any{}
		}
	default:
		return fmt.Errorf("unsupported components value at line %d", node.Line)
	}
	*c = out
	return nil
}

// Has reports whether the alias is attached
func (c ComponentList) Has(alias string) bool {
	_, ok := c[alias]
	return ok
}

// IncludedInSearch reports whether the page carries the include marker
func (p *Page) IncludedInSearch() bool {
	return p.Components.Has(IncludeComponent)
}

func (p *Page) SearchTitle() string         { return p.Title }
func (p *Page) SearchCreatedAt() time.Time { return p.ModifiedAt }

// SearchText is the description, or an excerpt of the page text
func (p *Page) SearchText() string {
	if p.Description != "" {
		return p.Description
	}
	return search.Excerpt(p.Text, excerptLength)
}

const excerptLength = 200

var errNoFrontMatter = errors.New("missing front matter")

// ParsePage splits a page file into YAML front matter and markup:
//
//	---
//	title: About
//	url: /about
//	components: [siteSearchInclude]
//	---
//	<h1>About</h1>
func ParsePage(name string, content []byte) (*Page, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, fmt.Errorf("%s: %w", name, errNoFrontMatter)
	}

	rest := content[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, fmt.Errorf("%s: missing closing front matter delimiter", name)
	}

	page := &Page{Name: name}
	if err := yaml.Unmarshal(rest[:end], page); err != nil {
		return nil, fmt.Errorf("%s: failed to parse front matter: %w", name, err)
	}

	markup := rest[end+len("\n---"):]
	if i := bytes.IndexByte(markup, '\n'); i >= 0 {
		markup = markup[i+1:]
	} else {
		markup = nil
	}
	page.Markup = string(markup)
	page.Text = search.PlainText(page.Markup)

	if page.URL == "" {
		return nil, fmt.Errorf("%s: page has no url", name)
	}

	return page, nil
}
