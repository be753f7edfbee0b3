package md2site

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.PagePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.BasicConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the Markdown to HTML page pipeline.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Returns an error for an unknown engine, a base path not starting with
// "/", an unusable asset path or an invalid template.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:       EngineBasic,
			basePath:     "/",
			templateName: assets.DefaultTemplateName,
		},
		preprocessor: &pipeline.PagePreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.basePath == "" {
		c.cfg.basePath = "/"
	}
	if !strings.HasPrefix(c.cfg.basePath, "/") {
		return nil, fmt.Errorf("%w: %q must start with \"/\"", ErrInvalidBasePath, c.cfg.basePath)
	}

	if c.cfg.template == "" {
		if c.cfg.template, err = c.loadTemplate(); err != nil {
			return nil, err
		}
	}
	if err := pipeline.ValidateTemplate(c.cfg.template); err != nil {
		return nil, err
	}

	// Tests may inject a converter before this point.
	if c.htmlConverter == nil {
		c.htmlConverter = newHTMLConverter(engine, c.cfg.headingIDs)
	}

	return c, nil
}

func newHTMLConverter(engine Engine, headingIDs bool) pipeline.HTMLConverter {
	if engine == EngineCommonMark {
		return pipeline.NewGoldmarkConverter(headingIDs)
	}
	return pipeline.NewBasicConverter(headingIDs)
}

func (c *Converter) loadTemplate() (string, error) {
	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	tmpl, err := resolver.LoadTemplate(c.cfg.templateName)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
	}
	return tmpl, nil
}

// Engine returns the configured engine.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert runs the full pipeline for one page.
// The context is checked between stages.
// Recovers from internal panics so one bad page cannot crash a build.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	tmpl, err := c.validateInput(input)
	if err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, err := pageTitle(mdContent, input.SourcePath)
	if err != nil {
		return nil, err
	}

	page := pipeline.FillTemplate(tmpl, title, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	page, err = pipeline.RewriteBasePath(page, c.cfg.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &ConvertResult{
		HTML:    page,
		Content: content,
		Title:   title,
	}, nil
}

// validateInput checks the input and returns the template to use.
func (c *Converter) validateInput(input Input) (string, error) {
	if input.Template == "" {
		return c.cfg.template, nil
	}
	if err := pipeline.ValidateTemplate(input.Template); err != nil {
		return "", err
	}
	return input.Template, nil
}

// pageTitle returns the first "# " heading, or the source file name
// without extension when there is none.
func pageTitle(md, sourcePath string) (string, error) {
	if title, ok := markdown.ExtractTitle(md); ok {
		return title, nil
	}
	if sourcePath != "" {
		base := filepath.Base(sourcePath)
		if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
			return stem, nil
		}
	}
	return "", ErrNoTitle
}
