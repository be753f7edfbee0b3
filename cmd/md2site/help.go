package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site from a content directory")
	fmt.Fprintln(w, "  render     Print the HTML fragment of a markdown file")
	fmt.Fprintln(w, "  title      Print the title of a markdown file")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site: wipe the output directory, copy static files,")
	fmt.Fprintln(w, "and write one HTML page per markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown directory (default: content.dir or \"content\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Content directory")
	fmt.Fprintln(w, "      --static <dir>        Static files copied as-is")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (wiped on build)")
	fmt.Fprintln(w, "      --template-dir <dir>  Custom assets with templates/ and styles/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --template <name>     Page template name (default: default)")
	fmt.Fprintln(w, "      --base-path <path>    URL prefix for root-relative links")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: basic, commonmark")
	fmt.Fprintln(w, "      --heading-ids         Add id attributes to headings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --progress            Show a progress bar")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_CONTENT_DIR, MD2SITE_STATIC_DIR, MD2SITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2SITE_BASE_PATH, MD2SITE_ENGINE, MD2SITE_WORKERS (a .env file is read first)")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site render <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the HTML fragment of a markdown file, without page template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: basic, commonmark")
	fmt.Fprintln(w, "      --heading-ids         Add id attributes to headings")
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site title <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the first level-1 heading of a markdown file.")
	fmt.Fprintln(w, "Exits with status 1 when the file has none.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration a build would use, after .env,")
	fmt.Fprintln(w, "environment and config file are applied.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
