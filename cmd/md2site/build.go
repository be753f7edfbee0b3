package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// ErrPrepareOutput indicates the output directory could not be set up.
var ErrPrepareOutput = errors.New("failed to prepare output directory")

// styleFile is the stylesheet linked by the built-in templates. It is
// written from the embedded style unless the static directory has one.
const styleFile = "index.css"

// runBuild builds the whole site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes at most one content directory, got %d", ErrUsage, len(positional))
	}
	applyLogLevel(env, flags.common)

	cfg, err := loadSiteConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return buildSite(ctx, cfg, flags.progress && !flags.common.quiet, env)
}

// loadSiteConfig resolves the configuration below the flag layer:
// .env file, environment, config file and defaults.
func loadSiteConfig(configFlag string, env *Environment) (*config.Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	warnUnknownEnvVars(env.Stderr)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	source := "defaults"
	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				userDir, _ := os.UserConfigDir()
				hint = hints.ForConfigNotFound(name, userDir)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		source = name
	}
	env.Logger.ConfigLoaded(source)

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags applies CLI flags over cfg. Only flags that were given
// override. A positional content directory wins over --content.
func mergeFlags(flags *buildFlags, positional []string, cfg *config.Config) {
	if flags.dirs.content != "" {
		cfg.Content.Dir = flags.dirs.content
	}
	if len(positional) > 0 {
		cfg.Content.Dir = positional[0]
	}
	if flags.dirs.static != "" {
		cfg.Static.Dir = flags.dirs.static
	}
	if flags.dirs.output != "" {
		cfg.Output.Dir = flags.dirs.output
	}
	if flags.dirs.templateDir != "" {
		cfg.Template.Dir = flags.dirs.templateDir
	}
	if flags.site.template != "" {
		cfg.Template.Name = flags.site.template
	}
	if flags.site.basePath != "" {
		cfg.Site.BasePath = flags.site.basePath
	}
	if flags.site.engine != "" {
		cfg.Site.Engine = flags.site.engine
	}
	if flags.site.headingIDs {
		cfg.Site.HeadingIDs = true
	}
	if flags.workers != 0 {
		cfg.Build.Workers = flags.workers
	}
}

// converterOptions maps the site configuration onto converter options.
func converterOptions(cfg *config.Config) []md2site.Option {
	opts := []md2site.Option{
		md2site.WithEngine(md2site.Engine(cfg.Site.Engine)),
		md2site.WithBasePath(cfg.Site.BasePath),
		md2site.WithHeadingIDs(cfg.Site.HeadingIDs),
		md2site.WithAssetPath(cfg.Template.Dir),
	}
	if cfg.Template.Name != "" {
		opts = append(opts, md2site.WithTemplateName(cfg.Template.Name))
	}
	return opts
}

// buildSite discovers pages, prepares the output directory and converts
// every page. Page failures don't stop the build; they are reported and
// turned into ErrPagesFailed at the end.
func buildSite(ctx context.Context, cfg *config.Config, showProgress bool, env *Environment) error {
	if err := validateOutputDir(cfg.Output.Dir, cfg.Content.Dir, cfg.Static.Dir); err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		if errors.Is(err, ErrNoContent) {
			return fmt.Errorf("%w%s", err, hints.ForContentDir(cfg.Content.Dir))
		}
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}

	workers := md2site.ResolvePoolSize(cfg.Build.Workers)
	converters, err := md2site.NewConverterPool(workers, converterOptions(cfg)...)
	if err != nil {
		hint := ""
		if errors.Is(err, md2site.ErrTemplateNotFound) {
			hint = hints.ForTemplateNotFound(assets.TemplateNames())
		}
		return fmt.Errorf("creating converters: %w%s", err, hint)
	}
	defer converters.Close()

	start := env.Now()
	env.Logger.BuildStarted(cfg.Content.Dir, cfg.Output.Dir, workers)

	if err := prepareOutput(ctx, cfg, env); err != nil {
		return err
	}

	bar := newProgressBar(env.Stderr, len(pages), showProgress)
	results := buildBatch(ctx, &poolAdapter{pool: converters}, pages, func(r PageResult) {
		if r.Err == nil {
			env.Logger.PageRendered(r.InputPath, r.OutputPath, r.Title)
		}
		bar.Increment()
	})
	bar.Finish()

	summary := printResults(results, env)
	env.Logger.BuildCompleted(summary.Succeeded, summary.Failed, env.Now().Sub(start))

	if err := ctx.Err(); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, summary.Failed, len(results))
	}
	return nil
}

// prepareOutput empties the output directory, copies the static tree
// into it and adds the default stylesheet.
func prepareOutput(ctx context.Context, cfg *config.Config, env *Environment) error {
	if err := fileutil.CleanDir(cfg.Output.Dir); err != nil {
		if errors.Is(err, fileutil.ErrUnsafeClean) {
			return err
		}
		return fmt.Errorf("%w: %w%s", ErrPrepareOutput, err, hints.ForOutputDirectory())
	}

	if cfg.Static.Dir != "" && fileutil.DirExists(cfg.Static.Dir) {
		n, err := fileutil.CopyDir(ctx, cfg.Static.Dir, cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("%w: copying static files: %w", ErrPrepareOutput, err)
		}
		env.Logger.StaticCopied(cfg.Static.Dir, n)
	} else {
		env.Logger.StaticSkipped(cfg.Static.Dir)
	}

	return writeDefaultStyle(cfg)
}

// writeDefaultStyle writes index.css unless the static tree provided one.
func writeDefaultStyle(cfg *config.Config) error {
	target := filepath.Join(cfg.Output.Dir, styleFile)
	if fileutil.FileExists(target) {
		return nil
	}

	resolver, err := assets.NewAssetResolver(cfg.Template.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", md2site.ErrInvalidAssetPath, err)
	}
	css, err := resolver.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return fmt.Errorf("loading style: %w", err)
	}

	if err := fileutil.WriteFileAtomic(target, css); err != nil {
		return fmt.Errorf("%w: %w", ErrPrepareOutput, err)
	}
	return nil
}

// printResults logs every failed page and returns the summary. A hint is
// printed once when a page failed on the basic engine's strict syntax.
func printResults(results []PageResult, env *Environment) ResultSummary {
	summary := countResults(results)

	strictSyntax := false
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		env.Logger.PageFailed(r.InputPath, r.Err)
		if errors.Is(r.Err, md2site.ErrUnterminatedDelimiter) {
			strictSyntax = true
		}
	}
	if strictSyntax {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForUnterminatedDelimiter(), "\n"))
	}

	return summary
}
