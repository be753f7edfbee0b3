package main

import (
	"context"
	"fmt"
	"os"

	md2site "github.com/alnah/go-md2site"
)

// runRender prints the HTML fragment of one markdown file.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	path, err := singleFileArg("render", positional)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadPage, err)
	}

	conv, err := md2site.NewConverter(
		md2site.WithEngine(md2site.Engine(flags.engine)),
		md2site.WithHeadingIDs(flags.headingIDs),
	)
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, md2site.Input{
		Markdown:   string(content),
		SourcePath: path,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	fmt.Fprintln(env.Stdout, result.Content)
	return nil
}

// runTitle prints the "# " title of one markdown file. A file without a
// level-1 heading is an error.
func runTitle(args []string, env *Environment) error {
	_, positional, err := parseCommonFlags("title", args, env.Stderr, printTitleUsage)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	path, err := singleFileArg("title", positional)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadPage, err)
	}

	title, ok := md2site.ExtractTitle(string(content))
	if !ok {
		return fmt.Errorf("%w: %s", md2site.ErrNoTitle, path)
	}

	fmt.Fprintln(env.Stdout, title)
	return nil
}

// singleFileArg returns the only positional argument of a command.
func singleFileArg(cmd string, positional []string) (string, error) {
	if len(positional) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one markdown file, got %d", ErrUsage, cmd, len(positional))
	}
	if !isMarkdownFile(positional[0]) {
		return "", fmt.Errorf("%w: %s must have .md or .markdown extension", ErrUsage, positional[0])
	}
	return positional[0], nil
}
