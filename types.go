package md2site

import (
	"fmt"
	"strings"
)

// Engine selects the Markdown to HTML implementation.
type Engine string

// Supported engines.
const (
	EngineBasic      Engine = "basic"
	EngineCommonMark Engine = "commonmark"
)

// ParseEngine converts a case-insensitive engine name. An empty name
// selects EngineBasic.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineBasic:
		return EngineBasic, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEngine, name)
}

// Input contains the data for one page conversion.
type Input struct {
	Markdown string // Required: page source

	// Optional: page template overriding the converter's template.
	Template string

	// Optional: source file path. Its base name, without extension, is the
	// title of a page that has no "# " heading.
	SourcePath string
}

// ConvertResult holds a converted page.
type ConvertResult struct {
	HTML    string // Full page: template filled and base path applied
	Content string // Fragment produced by the engine, wrapped in <div>
	Title   string // Extracted or fallback title
}

// converterConfig holds converter options.
type converterConfig struct {
	engine       Engine
	basePath     string
	headingIDs   bool
	template     string
	templateName string
	assetPath    string
}

// Option configures a Converter.
type Option func(*Converter)

// WithEngine selects the Markdown engine. Default: EngineBasic.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithBasePath sets the URL prefix applied to root-relative links and
// images. Must start with "/". Default: "/" (no rewriting).
func WithBasePath(path string) Option {
	return func(c *Converter) {
		c.cfg.basePath = path
	}
}

// WithHeadingIDs adds slug id attributes to headings.
func WithHeadingIDs(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.headingIDs = enabled
	}
}

// WithTemplate sets the page template content. It takes precedence over
// WithTemplateName.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.template = tmpl
	}
}

// WithTemplateName loads a named template, from WithAssetPath first and
// then from the built-in templates. Default: "default".
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a directory holding custom templates under
// templates/{name}.html.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
