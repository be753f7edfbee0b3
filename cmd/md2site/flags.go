package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// dirFlags holds the site directory flags.
type dirFlags struct {
	content     string
	static      string
	output      string
	templateDir string
}

// siteFlags holds page rendering flags.
type siteFlags struct {
	template   string
	basePath   string
	engine     string
	headingIDs bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	dirs     dirFlags
	site     siteFlags
	workers  int
	progress bool
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	engine     string
	headingIDs bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every page")
}

// addDirFlags adds directory flags to a FlagSet.
func addDirFlags(fs *flag.FlagSet, f *dirFlags) {
	fs.StringVar(&f.content, "content", "", "content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (wiped on build)")
	fs.StringVar(&f.templateDir, "template-dir", "", "custom asset directory with templates/ and styles/")
}

// addSiteFlags adds rendering flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for root-relative links")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: basic, commonmark")
	fs.BoolVar(&f.headingIDs, "heading-ids", false, "add id attributes to headings")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.progress, "progress", false, "show a progress bar")

	addCommonFlags(fs, &f.common)
	addDirFlags(fs, &f.dirs)
	addSiteFlags(fs, &f.site)

	fs.SetOutput(usage)
	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVar(&f.engine, "engine", "", "markdown engine: basic, commonmark")
	fs.BoolVar(&f.headingIDs, "heading-ids", false, "add id attributes to headings")

	fs.SetOutput(usage)
	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCommonFlags parses commands that only take common flags.
func parseCommonFlags(name string, args []string, usage io.Writer, printUsage func(io.Writer)) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &commonFlags{}

	addCommonFlags(fs, f)

	fs.SetOutput(usage)
	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
